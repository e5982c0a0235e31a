package config_test

import (
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/appdirs/pkg/config"
)

// Tests are run as part of the Config Suite from config_test.go.

var _ = Describe("Format", func() {
	Describe("ParseFormat", func() {
		It("should parse 'table' correctly", func() {
			format, err := config.ParseFormat("table")
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal(config.FormatTable))
		})

		It("should parse 'plain' correctly", func() {
			format, err := config.ParseFormat("plain")
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal(config.FormatPlain))
		})

		It("should parse 'json' correctly", func() {
			format, err := config.ParseFormat("json")
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal(config.FormatJSON))
		})

		It("should parse 'yaml' correctly", func() {
			format, err := config.ParseFormat("yaml")
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal(config.FormatYAML))
		})

		It("should parse case-insensitively", func() {
			format, err := config.ParseFormat("JSON")
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal(config.FormatJSON))
		})

		It("should return error for invalid format", func() {
			format, err := config.ParseFormat("invalid")
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, config.ErrInvalidFormat)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("must be"))
			Expect(format).To(Equal(config.FormatUnknown))
		})

		It("should return error for empty string", func() {
			format, err := config.ParseFormat("")
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, config.ErrInvalidFormat)).To(BeTrue())
			Expect(format).To(Equal(config.FormatUnknown))
		})
	})

	Describe("String", func() {
		It("should return the lowercase name", func() {
			Expect(config.FormatTable.String()).To(Equal("table"))
			Expect(config.FormatYAML.String()).To(Equal("yaml"))
		})
	})

	Describe("IsAFormat", func() {
		It("should return true for declared values", func() {
			Expect(config.FormatPlain.IsAFormat()).To(BeTrue())
		})

		It("should return false for out-of-range values", func() {
			Expect(config.Format(99).IsAFormat()).To(BeFalse())
		})
	})

	Describe("text marshaling", func() {
		It("should marshal to the lowercase name", func() {
			text, err := config.FormatYAML.MarshalText()
			Expect(err).NotTo(HaveOccurred())
			Expect(string(text)).To(Equal("yaml"))
		})

		It("should unmarshal from the lowercase name", func() {
			var format config.Format
			err := format.UnmarshalText([]byte("plain"))
			Expect(err).NotTo(HaveOccurred())
			Expect(format).To(Equal(config.FormatPlain))
		})

		It("should return error for unrecognized names", func() {
			var format config.Format
			err := format.UnmarshalText([]byte("bogus"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("JSONSchema", func() {
		It("should describe a string enum", func() {
			schema := config.FormatTable.JSONSchema()
			Expect(schema.Type).To(Equal("string"))
			Expect(schema.Enum).To(HaveLen(4))
			Expect(schema.Enum).To(ContainElement("table"))
		})
	})
})
