package tinyreg

import "reflect"

// ServiceName returns the canonical registry name for T: the string form of
// its reflect.Type. Works for interfaces and concrete types alike, so
// ServiceName[io.Writer]() is "io.Writer".
func ServiceName[T any]() string {
	return reflect.TypeOf(new(T)).Elem().String()
}

// Add registers constructor under ServiceName[T] with the given lifetime.
func Add[T any](r *Registry, lifetime Lifetime, constructor func() (T, error)) error {
	return r.Register(ServiceName[T](), constructor, lifetime)
}

// AddInstance registers instance under ServiceName[T].
func AddInstance[T any](r *Registry, instance T) error {
	return r.RegisterInstance(ServiceName[T](), instance)
}

// Get resolves the service registered under ServiceName[T].
func Get[T any](r Resolver) (T, error) {
	return GetNamed[T](r, ServiceName[T]())
}

// GetNamed resolves name and asserts the result to T. This is the lookup to
// use when several implementations of one contract are registered under
// distinct names.
func GetNamed[T any](r Resolver, name string) (T, error) {
	var zero T

	service, err := r.Resolve(name)
	if err != nil {
		return zero, err
	}

	typed, ok := service.(T)
	if !ok {
		return zero, newTypeMismatchError(name, reflect.TypeOf(new(T)).Elem(), service)
	}

	return typed, nil
}

// MustGet is like Get but panics on error.
func MustGet[T any](r Resolver) T {
	service, err := Get[T](r)
	if err != nil {
		panic(err)
	}

	return service
}

// MustGetNamed is like GetNamed but panics on error.
func MustGetNamed[T any](r Resolver, name string) T {
	service, err := GetNamed[T](r, name)
	if err != nil {
		panic(err)
	}

	return service
}
