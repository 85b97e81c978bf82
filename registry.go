package tinyreg

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"
	"sync"
)

type constructorType int

const (
	onlyService constructorType = iota
	withError
	boundInstance
)

// record keeps everything the registry knows about one registered name.
// Its mutex guards the singleton cache slot so a constructor runs at most
// once even when several goroutines observe the cache empty at the same time.
type record struct {
	name            string
	constructor     reflect.Value
	constructorType constructorType
	lifetime        Lifetime

	mu     sync.Mutex
	cached *any
}

func (rec *record) resolve() (any, error) {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.cached != nil {
		return *rec.cached, nil
	}

	service, err := rec.invoke()
	if err != nil {
		return nil, err
	}

	rec.cached = &service

	return service, nil
}

func (rec *record) invoke() (service any, err error) {
	defer func() {
		if rp := recover(); rp != nil {
			service, err = nil, newConstructorPanicError(rec.name, rp)
		}
	}()

	values := rec.constructor.Call(nil)

	if rec.constructorType == withError {
		if err, ok := (values[1].Interface()).(error); ok && err != nil {
			return nil, err
		}
	}

	return values[0].Interface(), nil
}

// Configuration carries the options a Registry is created with.
type Configuration struct {
	Logger *slog.Logger
}

// Option configures a Registry created by New.
type Option func(*Configuration)

// WithLogger routes the registry's diagnostic output to log instead of the
// package default logger.
func WithLogger(log *slog.Logger) Option {
	return func(conf *Configuration) {
		conf.Logger = log
	}
}

var _ Resolver = new(Registry)

// Registry maps service names to construction strategies and lifetime
// policies. The zero value is not usable, create instances with New.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*record

	log *slog.Logger
}

// New returns an empty Registry.
func New(opts ...Option) *Registry {
	var conf Configuration
	for _, opt := range opts {
		opt(&conf)
	}

	return &Registry{
		records: make(map[string]*record),
		log:     conf.Logger,
	}
}

func (r *Registry) logger() *slog.Logger {
	if r.log != nil {
		return r.log
	}

	return defaultLogger()
}

// Register stores constructor under name with the given lifetime.
// constructor must be a function taking no arguments and returning either
// T or (T, error); the registry never supplies arguments, so constructors
// capture their dependencies themselves.
// Registering a name again replaces the previous registration, including
// any cached singleton instance. Values already handed out are unaffected.
func (r *Registry) Register(name string, constructor any, lifetime Lifetime) error {
	if name == "" {
		return ErrEmptyServiceName
	}

	if lifetime != Transient && lifetime != Singleton {
		return LifetimeUnsupportedError(lifetime.String())
	}

	cType, err := getConstructorType(reflect.TypeOf(constructor), lifetime)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.records[name] = &record{
		name:            name,
		constructor:     reflect.ValueOf(constructor),
		constructorType: cType,
		lifetime:        lifetime,
	}
	r.mu.Unlock()

	r.logger().Debug("registered service", "name", name, "lifetime", lifetime.String())

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(name string, constructor any, lifetime Lifetime) {
	if err := r.Register(name, constructor, lifetime); err != nil {
		panic(err)
	}
}

// RegisterInstance stores a pre-built instance under name. The registration
// behaves like a Singleton whose constructor already ran: Resolve hands back
// instance itself and never invokes anything.
// A nil instance is rejected with ErrNilInstance.
func (r *Registry) RegisterInstance(name string, instance any) error {
	if name == "" {
		return ErrEmptyServiceName
	}

	if instance == nil {
		return ErrNilInstance
	}

	rec := &record{
		name:            name,
		constructorType: boundInstance,
		lifetime:        Singleton,
	}
	rec.cached = &instance

	r.mu.Lock()
	r.records[name] = rec
	r.mu.Unlock()

	r.logger().Debug("registered instance", "name", name)

	return nil
}

// MustRegisterInstance is like RegisterInstance but panics on error.
func (r *Registry) MustRegisterInstance(name string, instance any) {
	if err := r.RegisterInstance(name, instance); err != nil {
		panic(err)
	}
}

// Resolve returns an instance for name according to its registered lifetime.
// An error returned by the constructor is passed through untouched; a failed
// Singleton construction leaves the cache empty, so a later Resolve retries.
func (r *Registry) Resolve(name string) (any, error) {
	r.mu.RLock()
	rec, ok := r.records[name]
	r.mu.RUnlock()

	if !ok {
		r.logger().Debug("service not registered", "name", name)

		return nil, newUnregisteredServiceError(name)
	}

	switch rec.lifetime {
	case Singleton:
		return rec.resolve()
	case Transient:
		return rec.invoke()
	default:
		// unreachable if Register did its job
		panic(fmt.Errorf("broken record %s: %w", rec.name, LifetimeUnsupportedError(rec.lifetime.String())))
	}
}

// MustResolve is like Resolve but panics on error.
func (r *Registry) MustResolve(name string) any {
	service, err := r.Resolve(name)
	if err != nil {
		panic(err)
	}

	return service
}

// Has reports whether name is currently registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.records[name]

	return ok
}

// String lists the registered service names, mostly for debugging.
func (r *Registry) String() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.records))
	for name := range r.records {
		names = append(names, name)
	}

	slices.Sort(names)

	return "services [" + strings.Join(names, ", ") + "]"
}

func getConstructorType(t reflect.Type, lifetime Lifetime) (constructorType, error) {
	cType := onlyService

	if t == nil || t.Kind() != reflect.Func {
		return cType, newConstructorUnsupportedError(t, lifetime)
	}

	if t.IsVariadic() {
		return cType, newBadConstructorError(ErrVariadicConstructor, t)
	}

	if t.NumIn() != 0 {
		return cType, newConstructorUnsupportedError(t, lifetime)
	}

	switch t.NumOut() {
	case 1:
		if t.Out(0).Implements(errorInterface) {
			return cType, newConstructorUnsupportedError(t, lifetime)
		}
	case 2:
		cType = withError

		if !t.Out(1).Implements(errorInterface) {
			return cType, newConstructorUnsupportedError(t, lifetime)
		}

		if t.Out(0).Implements(errorInterface) {
			return cType, newConstructorUnsupportedError(t, lifetime)
		}
	default:
		return cType, newConstructorUnsupportedError(t, lifetime)
	}

	return cType, nil
}
