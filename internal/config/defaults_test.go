package config

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/appdirs/pkg/appdir"
	"github.com/smykla-skalski/appdirs/pkg/config"
)

// Tests are run as part of the Koanf Suite from koanf_test.go.

var _ = Describe("Defaults", func() {
	Describe("DefaultConfig", func() {
		It("should return a complete config with all defaults", func() {
			cfg := DefaultConfig()
			Expect(cfg).NotTo(BeNil())
			Expect(cfg.Version).To(Equal(config.CurrentConfigVersion))
			Expect(cfg.App).NotTo(BeNil())
			Expect(cfg.Output).NotTo(BeNil())
			Expect(cfg.Strategy).NotTo(BeNil())
		})

		It("should pass validation", func() {
			err := NewValidator().Validate(DefaultConfig())
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("DefaultAppConfig", func() {
		It("should leave the app identity unset", func() {
			cfg := DefaultAppConfig()
			Expect(cfg).NotTo(BeNil())
			Expect(cfg.Domain).To(BeEmpty())
			Expect(cfg.Author).To(BeEmpty())
			Expect(cfg.Name).To(BeEmpty())
		})
	})

	Describe("DefaultOutputConfig", func() {
		It("should default to the table format", func() {
			cfg := DefaultOutputConfig()
			Expect(cfg).NotTo(BeNil())
			Expect(cfg.Format).To(Equal(config.FormatTable))
		})
	})

	Describe("DefaultStrategyConfig", func() {
		It("should leave the kind unset and native off", func() {
			cfg := DefaultStrategyConfig()
			Expect(cfg).NotTo(BeNil())
			Expect(cfg.Kind).To(Equal(appdir.KindUnknown))
			Expect(cfg.Native).NotTo(BeNil())
			Expect(*cfg.Native).To(BeFalse())
			Expect(cfg.Overrides).To(BeEmpty())
		})
	})

	Describe("SelfApp", func() {
		It("should identify the appdirs CLI", func() {
			app := SelfApp()
			Expect(app.BundleID()).To(Equal("com.smykla-skalski.appdirs"))
			Expect(app.UnixyName()).To(Equal("appdirs"))
		})
	})
})
