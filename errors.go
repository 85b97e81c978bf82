package tinyreg

import (
	"fmt"
	"reflect"
)

const (
	constructorTypeStr string = "func() T | func() (T, error)"
)

var (
	errorInterface = reflect.TypeOf((*error)(nil)).Elem()

	ErrVariadicConstructor = fmt.Errorf("variadic constructor is not supported")
	ErrEmptyServiceName    = fmt.Errorf("service name cannot be empty")
	ErrNilInstance         = fmt.Errorf("cannot register a nil instance")
)

func newUnregisteredServiceError(serviceName string) error {
	return &UnregisteredServiceError{
		ServiceName: serviceName,
	}
}

type UnregisteredServiceError struct {
	ServiceName string
}

func (err *UnregisteredServiceError) Error() string {
	return fmt.Sprintf("service %s is not registered", err.ServiceName)
}

func newConstructorUnsupportedError(constructorType reflect.Type, lifetime Lifetime) error {
	return newBadConstructorError(
		&ConstructorTemplateError{
			Lifetime:                      lifetime,
			SupportedConstructorTemplates: constructorTypeStr,
		},
		constructorType,
	)
}

type LifetimeUnsupportedError string

func (lifetime LifetimeUnsupportedError) Error() string {
	return fmt.Sprintf("%s Lifetime is unsupported", string(lifetime))
}

func newBadConstructorError(cause error, constructorType reflect.Type) error {
	return &BadConstructorError{
		cause:           cause,
		ConstructorType: constructorType,
	}
}

type BadConstructorError struct {
	cause           error
	ConstructorType reflect.Type
}

func (err *BadConstructorError) Error() string {
	return fmt.Sprintf("bad constructor %s: %s", err.ConstructorType, err.cause)
}

func (err *BadConstructorError) Unwrap() error {
	return err.cause
}

type ConstructorTemplateError struct {
	SupportedConstructorTemplates string
	Lifetime                      Lifetime
}

func (err *ConstructorTemplateError) Error() string {
	return fmt.Sprintf(
		"only %s can be used for %s",
		err.SupportedConstructorTemplates,
		err.Lifetime,
	)
}

func newConstructorPanicError(serviceName string, recovered any) error {
	return &ConstructorPanicError{
		ServiceName: serviceName,
		Recovered:   recovered,
	}
}

type ConstructorPanicError struct {
	Recovered   any
	ServiceName string
}

func (err *ConstructorPanicError) Error() string {
	return fmt.Sprintf("constructor of %s panicked: %v", err.ServiceName, err.Recovered)
}

func newTypeMismatchError(serviceName string, want reflect.Type, got any) error {
	return &TypeMismatchError{
		ServiceName: serviceName,
		Want:        want,
		Got:         reflect.TypeOf(got),
	}
}

type TypeMismatchError struct {
	Want        reflect.Type
	Got         reflect.Type
	ServiceName string
}

func (err *TypeMismatchError) Error() string {
	got := "<nil>"
	if err.Got != nil {
		got = err.Got.String()
	}

	return fmt.Sprintf("service %s is %s, not %s", err.ServiceName, got, err.Want)
}
