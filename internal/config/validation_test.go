package config

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/appdirs/pkg/appdir"
	"github.com/smykla-skalski/appdirs/pkg/config"
)

// Tests are run as part of the Koanf Suite from koanf_test.go.

var _ = Describe("Validator", func() {
	var validator *Validator

	BeforeEach(func() {
		validator = NewValidator()
	})

	Describe("NewValidator", func() {
		It("should create a new validator", func() {
			v := NewValidator()
			Expect(v).NotTo(BeNil())
		})
	})

	Describe("Validate", func() {
		It("should return error when config is nil", func() {
			err := validator.Validate(nil)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("config is nil"))
		})

		It("should pass validation for empty config", func() {
			cfg := &config.Config{}
			err := validator.Validate(cfg)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should pass validation for the default config", func() {
			cfg := DefaultConfig()
			err := validator.Validate(cfg)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should pass validation for a fully populated config", func() {
			native := true
			cfg := &config.Config{
				Version: config.CurrentConfigVersion,
				App: &config.AppConfig{
					Domain: "com",
					Author: "Weasel Works",
					Name:   "Data Smasher",
				},
				Output: &config.OutputConfig{
					Format: config.FormatJSON,
				},
				Strategy: &config.StrategyConfig{
					Kind:   appdir.KindXDG,
					Native: &native,
					Overrides: []config.Override{
						{Match: "legacy-*", Kind: appdir.KindUnix},
						{Match: "**/Mac*", Kind: appdir.KindApple},
					},
				},
			}

			err := validator.Validate(cfg)
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject an out-of-range output format", func() {
			cfg := &config.Config{
				Output: &config.OutputConfig{
					Format: config.Format(99),
				},
			}

			err := validator.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("validation failed with 1 error(s)"))
		})

		It("should reject an out-of-range strategy kind", func() {
			cfg := &config.Config{
				Strategy: &config.StrategyConfig{
					Kind: appdir.Kind(99),
				},
			}

			err := validator.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
		})

		It("should collect multiple validation errors", func() {
			cfg := &config.Config{
				Output: &config.OutputConfig{
					Format: config.Format(99),
				},
				Strategy: &config.StrategyConfig{
					Kind: appdir.Kind(99),
				},
			}

			err := validator.Validate(cfg)
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("validation failed with 2 error(s)"))
		})
	})

	Describe("validateOutputConfig", func() {
		It("should pass with unset format", func() {
			err := validator.validateOutputConfig(&config.OutputConfig{})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should pass with every known format", func() {
			for _, format := range config.FormatValues() {
				err := validator.validateOutputConfig(&config.OutputConfig{Format: format})
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should reject an out-of-range format", func() {
			err := validator.validateOutputConfig(&config.OutputConfig{
				Format: config.Format(99),
			})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, config.ErrInvalidFormat)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("format must be"))
		})
	})

	Describe("validateStrategyConfig", func() {
		It("should pass with unset kind", func() {
			err := validator.validateStrategyConfig(&config.StrategyConfig{})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should pass with every known kind", func() {
			for _, kind := range appdir.KindValues() {
				err := validator.validateStrategyConfig(&config.StrategyConfig{Kind: kind})
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should reject an out-of-range kind", func() {
			err := validator.validateStrategyConfig(&config.StrategyConfig{
				Kind: appdir.Kind(99),
			})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInvalidStrategyKind)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("strategy.kind must be"))
		})

		It("should wrap override errors with their index", func() {
			err := validator.validateStrategyConfig(&config.StrategyConfig{
				Overrides: []config.Override{
					{Match: "valid-*", Kind: appdir.KindUnix},
					{Match: "", Kind: appdir.KindUnix},
				},
			})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrEmptyValue)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("strategy.overrides[1]"))
		})
	})

	Describe("validateOverride", func() {
		It("should pass with a valid override", func() {
			err := validator.validateOverride(config.Override{
				Match: "legacy-*",
				Kind:  appdir.KindUnix,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject an empty match pattern", func() {
			err := validator.validateOverride(config.Override{
				Kind: appdir.KindUnix,
			})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrEmptyValue)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("match"))
		})

		It("should reject a malformed glob pattern", func() {
			err := validator.validateOverride(config.Override{
				Match: "[",
				Kind:  appdir.KindUnix,
			})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInvalidPattern)).To(BeTrue())
		})

		It("should reject an unset kind", func() {
			err := validator.validateOverride(config.Override{
				Match: "legacy-*",
			})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrInvalidStrategyKind)).To(BeTrue())
		})

		It("should collect both match and kind errors", func() {
			err := validator.validateOverride(config.Override{})
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, ErrEmptyValue)).To(BeTrue())
			Expect(errors.Is(err, ErrInvalidStrategyKind)).To(BeTrue())
		})
	})
})
