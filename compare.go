// compare.go — polymorphic comparisons.
//
// Grounded on runtime.cpp's Equal/Less/NotEqual/Greater/LessOrEqual/
// GreaterOrEqual: primitive equality first, then a user __eq__/__lt__ hook,
// then (Equal only) the both-None fallback, then error — in that exact
// order.
package mython

// Equal compares two values, falling back to a user-defined __eq__ hook and
// finally to both-None equality before giving up.
func Equal(l, r Value, ctx Context) (bool, error) {
	if l.Kind == r.Kind {
		switch l.Kind {
		case KindNumber:
			return l.Num == r.Num, nil
		case KindString:
			return l.Str == r.Str, nil
		case KindBool:
			return l.Bool == r.Bool, nil
		}
	}
	if l.Kind == KindInstance && l.Instance.HasMethod(methodEq, 1) {
		v, err := l.Instance.Call(methodEq, []Value{r}, ctx)
		if err != nil {
			return false, err
		}
		return IsTrue(v), nil
	}
	if l.Kind == KindNone && r.Kind == KindNone {
		return true, nil
	}
	return false, newTypeError(TypeErrGeneric, "cannot compare values for equality")
}

// Less orders two values, falling back to a user-defined __lt__ hook for
// class instances. Unlike Equal, there is no both-None special case.
func Less(l, r Value, ctx Context) (bool, error) {
	if l.Kind == r.Kind {
		switch l.Kind {
		case KindNumber:
			return l.Num < r.Num, nil
		case KindString:
			return l.Str < r.Str, nil
		case KindBool:
			return !l.Bool && r.Bool, nil
		}
	}
	if l.Kind == KindInstance && l.Instance.HasMethod(methodLt, 1) {
		v, err := l.Instance.Call(methodLt, []Value{r}, ctx)
		if err != nil {
			return false, err
		}
		return IsTrue(v), nil
	}
	return false, newTypeError(TypeErrGeneric, "cannot compare values for ordering")
}

// NotEqual = !Equal.
func NotEqual(l, r Value, ctx Context) (bool, error) {
	eq, err := Equal(l, r, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// Greater = !(Less or Equal).
func Greater(l, r Value, ctx Context) (bool, error) {
	lt, err := Less(l, r, ctx)
	if err != nil {
		return false, err
	}
	if lt {
		return false, nil
	}
	eq, err := Equal(l, r, ctx)
	if err != nil {
		return false, err
	}
	return !eq, nil
}

// LessOrEqual = !Greater.
func LessOrEqual(l, r Value, ctx Context) (bool, error) {
	gt, err := Greater(l, r, ctx)
	if err != nil {
		return false, err
	}
	return !gt, nil
}

// GreaterOrEqual = !Less.
func GreaterOrEqual(l, r Value, ctx Context) (bool, error) {
	lt, err := Less(l, r, ctx)
	if err != nil {
		return false, err
	}
	return !lt, nil
}
