package appdir_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/appdirs/pkg/appdir"
)

var _ = Describe("Apple", func() {
	var (
		home string
		s    *appdir.Apple
	)

	BeforeEach(func() {
		var err error

		home, err = os.UserHomeDir()
		Expect(err).NotTo(HaveOccurred())

		s, err = appdir.NewApple(appdir.App{TopLevelDomain: "com", Author: "Apple", Name: "Safari"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("nests config under Library/Preferences by bundle id", func() {
		Expect(s.ConfigDir()).To(Equal(filepath.Join(home, "Library", "Preferences", "com.apple.Safari")))
	})

	It("nests data under Library/Application Support by bundle id", func() {
		Expect(s.DataDir()).To(Equal(filepath.Join(home, "Library", "Application Support", "com.apple.Safari")))
	})

	It("nests cache under Library/Caches by bundle id", func() {
		Expect(s.CacheDir()).To(Equal(filepath.Join(home, "Library", "Caches", "com.apple.Safari")))
	})

	It("ignores XDG overrides", func() {
		GinkgoT().Setenv("XDG_CONFIG_HOME", "/custom/config")

		Expect(s.ConfigDir()).To(Equal(filepath.Join(home, "Library", "Preferences", "com.apple.Safari")))
	})

	It("has no state dir", func() {
		_, ok := s.StateDir()

		Expect(ok).To(BeFalse())
	})

	It("has no runtime dir", func() {
		_, ok := s.RuntimeDir()

		Expect(ok).To(BeFalse())
	})

	It("joins relative paths under each dir", func() {
		Expect(s.InConfigDir("prefs.plist")).To(Equal(filepath.Join(s.ConfigDir(), "prefs.plist")))
		Expect(s.InDataDir("Bookmarks")).To(Equal(filepath.Join(s.DataDir(), "Bookmarks")))
		Expect(s.InCacheDir("favicons")).To(Equal(filepath.Join(s.CacheDir(), "favicons")))
	})
})
