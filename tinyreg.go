package tinyreg

// This package provides a minimal service registry with lifetime management.
// It maps a service name to a construction strategy and a lifetime policy,
// and produces instances on demand.
// The registry does NOT build dependency graphs: factories take no arguments
// and are expected to capture their own dependencies, usually by closing
// over values resolved earlier.

import "fmt"

// Lifetime controls how often a registered constructor is invoked.
type Lifetime int

const (
	// For a Transient service a new instance is returned on every resolution.
	Transient Lifetime = iota
	// For a Singleton service the first constructed instance is cached and
	// shared for as long as the registry lives.
	Singleton
)

func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "Transient"
	case Singleton:
		return "Singleton"
	default:
		return fmt.Sprintf("Lifetime(%d)", int(l))
	}
}

// Resolver is the read side of a Registry. Code that only looks services up
// should depend on this interface instead of *Registry.
type Resolver interface {
	// Returns an instance registered under name, honoring its lifetime.
	Resolve(name string) (any, error)
	// Reports whether name is currently registered.
	Has(name string) bool
}
