package appdir_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/appdirs/pkg/appdir"
)

var _ = Describe("XDG", func() {
	var (
		home string
		s    *appdir.XDG
	)

	BeforeEach(func() {
		GinkgoT().Setenv("XDG_CONFIG_HOME", "")
		GinkgoT().Setenv("XDG_DATA_HOME", "")
		GinkgoT().Setenv("XDG_CACHE_HOME", "")
		GinkgoT().Setenv("XDG_STATE_HOME", "")

		var err error

		home, err = os.UserHomeDir()
		Expect(err).NotTo(HaveOccurred())

		s, err = appdir.NewXDG(appdir.App{TopLevelDomain: "org", Author: "Acme", Name: "Frobnicator Pro"})
		Expect(err).NotTo(HaveOccurred())
	})

	It("nests config under ~/.config by unixy name", func() {
		Expect(s.ConfigDir()).To(Equal(filepath.Join(home, ".config", "frobnicator-pro")))
	})

	It("nests data under ~/.local/share by unixy name", func() {
		Expect(s.DataDir()).To(Equal(filepath.Join(home, ".local", "share", "frobnicator-pro")))
	})

	It("nests cache under ~/.cache by unixy name", func() {
		Expect(s.CacheDir()).To(Equal(filepath.Join(home, ".cache", "frobnicator-pro")))
	})

	It("nests state under ~/.local/state by unixy name", func() {
		state, ok := s.StateDir()

		Expect(ok).To(BeTrue())
		Expect(state).To(Equal(filepath.Join(home, ".local", "state", "frobnicator-pro")))
	})

	It("has no runtime dir", func() {
		_, ok := s.RuntimeDir()

		Expect(ok).To(BeFalse())
	})

	Context("with an absolute override", func() {
		It("resolves config under the override", func() {
			GinkgoT().Setenv("XDG_CONFIG_HOME", "/my_config_location")

			Expect(s.ConfigDir()).To(Equal(filepath.Join("/my_config_location", "frobnicator-pro")))
		})

		It("resolves state under the override", func() {
			GinkgoT().Setenv("XDG_STATE_HOME", "/var/state")

			state, ok := s.StateDir()

			Expect(ok).To(BeTrue())
			Expect(state).To(Equal(filepath.Join("/var/state", "frobnicator-pro")))
		})
	})

	Context("with a relative override", func() {
		It("falls back to the home default", func() {
			GinkgoT().Setenv("XDG_CONFIG_HOME", "relative/config")

			Expect(s.ConfigDir()).To(Equal(filepath.Join(home, ".config", "frobnicator-pro")))
		})
	})

	It("rereads overrides on each call", func() {
		GinkgoT().Setenv("XDG_CACHE_HOME", "/first")
		Expect(s.CacheDir()).To(Equal(filepath.Join("/first", "frobnicator-pro")))

		GinkgoT().Setenv("XDG_CACHE_HOME", "/second")
		Expect(s.CacheDir()).To(Equal(filepath.Join("/second", "frobnicator-pro")))
	})

	It("joins relative paths under each dir", func() {
		Expect(s.InConfigDir("config.toml")).To(Equal(filepath.Join(s.ConfigDir(), "config.toml")))
		Expect(s.InDataDir("db/main.sqlite")).To(Equal(filepath.Join(s.DataDir(), "db", "main.sqlite")))
		Expect(s.InCacheDir("thumbs")).To(Equal(filepath.Join(s.CacheDir(), "thumbs")))
	})
})
