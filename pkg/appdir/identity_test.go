package appdir_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/appdirs/pkg/appdir"
)

var _ = Describe("App", func() {
	Describe("BundleID", func() {
		It("joins domain, lowercased author, and name", func() {
			app := appdir.App{TopLevelDomain: "com", Author: "Apple", Name: "Safari"}

			Expect(app.BundleID()).To(Equal("com.apple.Safari"))
		})

		It("keeps the name's casing", func() {
			app := appdir.App{TopLevelDomain: "org", Author: "Mozilla", Name: "Firefox Developer Edition"}

			Expect(app.BundleID()).To(Equal("org.mozilla.Firefox Developer Edition"))
		})

		It("concatenates empty fields verbatim", func() {
			Expect(appdir.App{}.BundleID()).To(Equal(".."))
		})
	})

	Describe("UnixyName", func() {
		It("lowercases the name", func() {
			app := appdir.App{TopLevelDomain: "org", Author: "Bram", Name: "Vim"}

			Expect(app.UnixyName()).To(Equal("vim"))
		})

		It("replaces spaces with hyphens", func() {
			app := appdir.App{TopLevelDomain: "org", Author: "Mozilla", Name: "Firefox Developer Edition"}

			Expect(app.UnixyName()).To(Equal("firefox-developer-edition"))
		})

		It("leaves other punctuation untouched", func() {
			app := appdir.App{TopLevelDomain: "io", Author: "Acme", Name: "Gadget_2.0+beta"}

			Expect(app.UnixyName()).To(Equal("gadget_2.0+beta"))
		})
	})
})
