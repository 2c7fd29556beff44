package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract the runners program against: a named grid simulation
// that can be reseeded and advanced one generation at a time.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
}

// Factory builds a Sim from flag-style key/value options.
type Factory func(cfg map[string]string) Sim

var registry = map[string]Factory{}

// Register makes a simulation available under name. Registration happens
// from package init functions; later registrations replace earlier ones.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	registry[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := registry[name]
	return f, ok
}

// Names lists the registered simulations in sorted order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
