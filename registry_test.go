package tinyreg_test

import (
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tinyreg/tinyreg"
)

var _ = Describe("Registry", func() {
	var reg *tinyreg.Registry

	BeforeEach(func() {
		reg = tinyreg.New()
	})

	It("should register Singleton", func() {
		err := reg.Register("name.service", nameServiceConstructor, tinyreg.Singleton)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(reg.Has("name.service")).To(BeTrue())
	})

	It("should register Transient", func() {
		err := reg.Register("name.service", nameServiceConstructor, tinyreg.Transient)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(reg.Has("name.service")).To(BeTrue())
	})

	It("should allow constructor without error", func() {
		err := reg.Register("name.provider", func() NameProvider { return NameProvider("Bob") }, tinyreg.Singleton)
		Expect(err).ShouldNot(HaveOccurred())
	})

	It("should refuse empty service name", func() {
		err := reg.Register("", nameServiceConstructor, tinyreg.Transient)

		Expect(err).Should(HaveOccurred())
		Expect(err).Should(MatchError(tinyreg.ErrEmptyServiceName))
	})

	It("should refuse register variadic constructors", func() {
		variadicConstructor := func(args ...any) (NameService, error) {
			return NameProvider("Bob"), nil
		}
		err := reg.Register("name.service", variadicConstructor, tinyreg.Transient)

		Expect(err).Should(HaveOccurred())
		Expect(err).Should(BeAssignableToTypeOf(new(tinyreg.BadConstructorError)))
		Expect(errors.Unwrap(err)).Should(MatchError(tinyreg.ErrVariadicConstructor))
	})

	It("should refuse constructors taking arguments", func() {
		badConstructor := func(name string) (NameService, error) {
			return NameProvider(name), nil
		}
		err := reg.Register("name.service", badConstructor, tinyreg.Transient)

		Expect(err).Should(HaveOccurred())
		Expect(err).Should(BeAssignableToTypeOf(new(tinyreg.BadConstructorError)))
		Expect(errors.Unwrap(err)).Should(BeAssignableToTypeOf(new(tinyreg.ConstructorTemplateError)))
	})

	It("should return error for wrong constructor type", func() {
		err := reg.Register("name.service", "just random human made mistake", tinyreg.Transient)

		Expect(err).Should(HaveOccurred())
		Expect(err).Should(BeAssignableToTypeOf(new(tinyreg.BadConstructorError)))
		Expect(errors.Unwrap(err)).Should(BeAssignableToTypeOf(new(tinyreg.ConstructorTemplateError)))
	})

	It("should return error for constructor returning wrong type", func() {
		badConstructor1 := func() error {
			return nil
		}

		badConstructor2 := func() (int, bool) {
			return 0, false
		}

		badConstructor3 := func() (int, bool, error) {
			return 0, false, nil
		}

		badConstructor4 := func() {}

		err := reg.Register("bad", badConstructor1, tinyreg.Transient)

		Expect(err).Should(HaveOccurred())
		Expect(err).Should(BeAssignableToTypeOf(new(tinyreg.BadConstructorError)))
		Expect(errors.Unwrap(err)).Should(BeAssignableToTypeOf(new(tinyreg.ConstructorTemplateError)))

		err = reg.Register("bad", badConstructor2, tinyreg.Transient)

		Expect(err).Should(HaveOccurred())
		Expect(err).Should(BeAssignableToTypeOf(new(tinyreg.BadConstructorError)))
		Expect(errors.Unwrap(err)).Should(BeAssignableToTypeOf(new(tinyreg.ConstructorTemplateError)))

		err = reg.Register("bad", badConstructor3, tinyreg.Transient)

		Expect(err).Should(HaveOccurred())
		Expect(err).Should(BeAssignableToTypeOf(new(tinyreg.BadConstructorError)))
		Expect(errors.Unwrap(err)).Should(BeAssignableToTypeOf(new(tinyreg.ConstructorTemplateError)))

		err = reg.Register("bad", badConstructor4, tinyreg.Transient)

		Expect(err).Should(HaveOccurred())
		Expect(err).Should(BeAssignableToTypeOf(new(tinyreg.BadConstructorError)))
		Expect(errors.Unwrap(err)).Should(BeAssignableToTypeOf(new(tinyreg.ConstructorTemplateError)))
	})

	It("should return error for unsupported lifetime", func() {
		err := reg.Register("name.service", nameServiceConstructor, 4)

		Expect(err).Should(HaveOccurred())
		Expect(err).Should(BeAssignableToTypeOf(tinyreg.LifetimeUnsupportedError("")))
	})

	It("should replace a registration made under the same name", func() {
		err := reg.Register("name.service", func() NameService { return NameProvider("Bob") }, tinyreg.Transient)
		Expect(err).ShouldNot(HaveOccurred())

		err = reg.Register("name.service", func() NameService { return NameProvider("Alice") }, tinyreg.Transient)
		Expect(err).ShouldNot(HaveOccurred())

		service, err := reg.Resolve("name.service")

		Expect(err).ShouldNot(HaveOccurred())
		Expect(service.(NameService).Name()).To(Equal("Alice"))
	})

	It("should replace a registration regardless of lifetime", func() {
		err := reg.Register("name.service", func() NameService { return NameProvider("Bob") }, tinyreg.Singleton)
		Expect(err).ShouldNot(HaveOccurred())

		err = reg.Register("name.service", func() NameService { return NameProvider("Alice") }, tinyreg.Transient)
		Expect(err).ShouldNot(HaveOccurred())

		service1, err := reg.Resolve("name.service")
		Expect(err).ShouldNot(HaveOccurred())

		service2, err := reg.Resolve("name.service")
		Expect(err).ShouldNot(HaveOccurred())

		Expect(service1.(NameService).Name()).To(Equal("Alice"))
		Expect(service1).NotTo(BeIdenticalTo(service2))
	})

	It("should drop a cached singleton when its name is re-registered", func() {
		err := reg.Register("hero", func() *Hero { return &Hero{"Bob"} }, tinyreg.Singleton)
		Expect(err).ShouldNot(HaveOccurred())

		hero1, err := reg.Resolve("hero")
		Expect(err).ShouldNot(HaveOccurred())

		err = reg.Register("hero", func() *Hero { return &Hero{"Alice"} }, tinyreg.Singleton)
		Expect(err).ShouldNot(HaveOccurred())

		hero2, err := reg.Resolve("hero")

		Expect(err).ShouldNot(HaveOccurred())
		Expect(hero2).NotTo(BeIdenticalTo(hero1))
		Expect(hero1.(*Hero).Announce()).To(Equal("Bob is our hero!"))
		Expect(hero2.(*Hero).Announce()).To(Equal("Alice is our hero!"))
	})

	It("should register a pre-built instance", func() {
		hero := &Hero{"Bob"}

		err := reg.RegisterInstance("hero", hero)
		Expect(err).ShouldNot(HaveOccurred())

		service1, err := reg.Resolve("hero")
		Expect(err).ShouldNot(HaveOccurred())

		service2, err := reg.Resolve("hero")
		Expect(err).ShouldNot(HaveOccurred())

		Expect(service1).To(BeIdenticalTo(hero))
		Expect(service2).To(BeIdenticalTo(hero))
	})

	It("should refuse register a nil instance", func() {
		err := reg.RegisterInstance("hero", nil)

		Expect(err).Should(HaveOccurred())
		Expect(err).Should(MatchError(tinyreg.ErrNilInstance))
	})

	It("should refuse register an instance under empty name", func() {
		err := reg.RegisterInstance("", &Hero{"Bob"})

		Expect(err).Should(HaveOccurred())
		Expect(err).Should(MatchError(tinyreg.ErrEmptyServiceName))
	})

	It("should let a constructor replace a bound instance", func() {
		hero := &Hero{"Bob"}

		err := reg.RegisterInstance("hero", hero)
		Expect(err).ShouldNot(HaveOccurred())

		err = reg.Register("hero", func() *Hero { return &Hero{"Alice"} }, tinyreg.Transient)
		Expect(err).ShouldNot(HaveOccurred())

		service, err := reg.Resolve("hero")

		Expect(err).ShouldNot(HaveOccurred())
		Expect(service).NotTo(BeIdenticalTo(hero))
		Expect(service.(*Hero).Announce()).To(Equal("Alice is our hero!"))
	})

	It("should report registered names through Has", func() {
		Expect(reg.Has("name.service")).To(BeFalse())

		err := reg.Register("name.service", nameServiceConstructor, tinyreg.Transient)
		Expect(err).ShouldNot(HaveOccurred())

		Expect(reg.Has("name.service")).To(BeTrue())
		Expect(reg.Has("something.else")).To(BeFalse())
	})

	It("should list registered names sorted", func() {
		reg.MustRegister("b.service", nameServiceConstructor, tinyreg.Transient)
		reg.MustRegister("a.service", nameServiceConstructor, tinyreg.Transient)
		reg.MustRegisterInstance("c.instance", &Hero{"Bob"})

		Expect(reg.String()).To(Equal("services [a.service, b.service, c.instance]"))
	})

	It("should panic in MustRegister on bad constructor", func() {
		Expect(func() {
			reg.MustRegister("bad", "not a constructor", tinyreg.Transient)
		}).To(Panic())
	})

	It("should panic in MustRegisterInstance on nil instance", func() {
		Expect(func() {
			reg.MustRegisterInstance("hero", nil)
		}).To(Panic())
	})

	It("should be tread-safe", func() {
		var wg sync.WaitGroup

		wg.Add(1)
		go func() {
			defer GinkgoRecover()

			_ = reg.Register("name.service", nameServiceConstructor, tinyreg.Transient)

			wg.Done()
		}()

		wg.Add(1)
		go func() {
			defer GinkgoRecover()

			_ = reg.Register("name.service", nameServiceConstructor, tinyreg.Transient)

			wg.Done()
		}()

		wg.Wait()

		Expect(reg.Has("name.service")).To(BeTrue())

		_, err := reg.Resolve("name.service")
		Expect(err).ShouldNot(HaveOccurred())
	})
})
