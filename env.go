// env.go — lexical scope frames used both as top-level/call-frame closures
// and as an instance's field map.
//
// Grounded on the teacher's Env{table} shape (interpreter.go), adapted to
// drop the parent-chain walk: Mython assignment and lookup target the
// *local* closure only, with no walk to outer scopes, so Env here carries no
// parent pointer at all — every scope is either the single top-level frame
// or a fresh per-call frame built by Instance.Call.
package mython

// Env is an identifier-to-value mapping: a closure (top-level scope or a
// method call frame) or a class instance's field map. Insertion order is
// not observable; last write wins.
type Env struct {
	table map[string]Value
}

// NewEnv returns an empty environment.
func NewEnv() *Env {
	return &Env{table: make(map[string]Value)}
}

// Define binds name to v, shadowing any previous binding in this frame.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Get retrieves the binding for name in this frame, or reports it missing.
func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.table[name]
	return v, ok
}

// Has reports whether name is bound in this frame.
func (e *Env) Has(name string) bool {
	_, ok := e.table[name]
	return ok
}
