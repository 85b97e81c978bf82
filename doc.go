/*
This package provides a small service registry with lifetime management.
Its purpose is to decouple services from the construction of their dependencies
while staying explicit: a registry instance is passed around, nothing is global.

To install tinyreg:

	go get -u github.com/tinyreg/tinyreg

How to use:

	type Logger interface {
		Log(message string) bool
	}

	type consoleLogger struct{}

	func (consoleLogger) Log(message string) bool {
		fmt.Println("[LOG]", message)
		return true
	}

	reg := tinyreg.New()

	err := tinyreg.Add(reg, tinyreg.Singleton, func() (Logger, error) {
		return consoleLogger{}, nil
	})
	if err != nil {
		// handle error
	}

	logger, err := tinyreg.Get[Logger](reg)
	if err != nil {
		// handle error
	}

	logger.Log("ready")

Services can also be registered under plain string names, which allows several
implementations of one contract to coexist:

	reg.MustRegister("notifier.email", func() Notifier { return new(EmailNotifier) }, tinyreg.Transient)
	reg.MustRegister("notifier.sms", func() Notifier { return new(SMSNotifier) }, tinyreg.Transient)

	notifier, err := tinyreg.GetNamed[Notifier](reg, "notifier.sms")

The registry never builds a dependency graph: constructors take no arguments
and capture what they need, usually by closing over values resolved earlier:

	reg.MustRegister("users.service", func() *UserService {
		return NewUserService(tinyreg.MustGet[Logger](reg))
	}, tinyreg.Transient)

Functions:
  - tinyreg.New
  - tinyreg.Add
  - tinyreg.AddInstance
  - tinyreg.Get
  - tinyreg.GetNamed
  - tinyreg.MustGet
  - tinyreg.MustGetNamed
  - tinyreg.ServiceName
  - tinyreg.SetDefaultLogger

Lifetime constants:

	tinyreg.Transient
	tinyreg.Singleton

Constructor types that can be used:
  - func() T
  - func() (T, error)
*/
package tinyreg
