// env.go — the mutable program state of one run.
package slang

// Env is the single flat environment a program runs against: a mapping
// from name to Value, created empty per run and living exactly as long as
// that run. It is owned by the Interpreter instance, never shared between
// concurrent runs.
type Env struct {
	table map[string]Value
}

// NewEnv creates an empty environment.
func NewEnv() *Env {
	return &Env{table: make(map[string]Value)}
}

// Define binds name to v, creating the name or replacing its value.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Get retrieves a binding.
func (e *Env) Get(name string) (Value, bool) {
	v, ok := e.table[name]
	return v, ok
}

// Registry stores function bodies keyed by name. It is distinct from the
// variable environment and is write-mostly: a function definition inserts
// its body here, but no construct of the language ever dispatches through
// it.
type Registry struct {
	bodies map[string]Stmt
}

// NewRegistry creates an empty function registry.
func NewRegistry() *Registry {
	return &Registry{bodies: make(map[string]Stmt)}
}

// Define records body under name, replacing any previous body.
func (r *Registry) Define(name string, body Stmt) {
	r.bodies[name] = body
}

// Get retrieves a recorded body.
func (r *Registry) Get(name string) (Stmt, bool) {
	b, ok := r.bodies[name]
	return b, ok
}
