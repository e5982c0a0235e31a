package appdir_test

import (
	"runtime"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/appdirs/pkg/appdir"
)

var testApp = appdir.App{TopLevelDomain: "io", Author: "Acme", Name: "Gadget"}

var _ = Describe("Default", func() {
	It("picks the platform convention", func() {
		s, err := appdir.Default(testApp)
		Expect(err).NotTo(HaveOccurred())

		if runtime.GOOS == "windows" {
			Expect(s).To(BeAssignableToTypeOf(&appdir.Windows{}))
		} else {
			Expect(s).To(BeAssignableToTypeOf(&appdir.XDG{}))
		}
	})
})

var _ = Describe("Native", func() {
	It("prefers the Library layout on macOS only", func() {
		s, err := appdir.Native(testApp)
		Expect(err).NotTo(HaveOccurred())

		switch runtime.GOOS {
		case "darwin":
			Expect(s).To(BeAssignableToTypeOf(&appdir.Apple{}))
		case "windows":
			Expect(s).To(BeAssignableToTypeOf(&appdir.Windows{}))
		default:
			Expect(s).To(BeAssignableToTypeOf(&appdir.XDG{}))
		}
	})
})

var _ = Describe("New", func() {
	It("builds the requested kind", func() {
		s, err := appdir.New(appdir.KindUnix, testApp)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeAssignableToTypeOf(&appdir.Unix{}))

		s, err = appdir.New(appdir.KindApple, testApp)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeAssignableToTypeOf(&appdir.Apple{}))

		s, err = appdir.New(appdir.KindWindows, testApp)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeAssignableToTypeOf(&appdir.Windows{}))

		s, err = appdir.New(appdir.KindXDG, testApp)
		Expect(err).NotTo(HaveOccurred())
		Expect(s).To(BeAssignableToTypeOf(&appdir.XDG{}))
	})

	It("falls back to the platform default for KindUnknown", func() {
		s, err := appdir.New(appdir.KindUnknown, testApp)
		Expect(err).NotTo(HaveOccurred())

		if runtime.GOOS == "windows" {
			Expect(s).To(BeAssignableToTypeOf(&appdir.Windows{}))
		} else {
			Expect(s).To(BeAssignableToTypeOf(&appdir.XDG{}))
		}
	})
})

var _ = Describe("ParseKind", func() {
	It("parses known kinds", func() {
		kind, err := appdir.ParseKind("xdg")

		Expect(err).NotTo(HaveOccurred())
		Expect(kind).To(Equal(appdir.KindXDG))
	})

	It("is case-insensitive", func() {
		kind, err := appdir.ParseKind("Windows")

		Expect(err).NotTo(HaveOccurred())
		Expect(kind).To(Equal(appdir.KindWindows))
	})

	It("wraps ErrInvalidKind for unknown names", func() {
		_, err := appdir.ParseKind("plan9")

		Expect(err).To(MatchError(appdir.ErrInvalidKind))
	})
})
