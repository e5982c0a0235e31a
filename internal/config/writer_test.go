package config_test

import (
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/appdirs/internal/config"
	"github.com/smykla-skalski/appdirs/pkg/appdir"
	pkgConfig "github.com/smykla-skalski/appdirs/pkg/config"
)

var _ = Describe("Writer", func() {
	var (
		tmpDir    string
		globalDir string
		workDir   string
		writer    *config.Writer
	)

	BeforeEach(func() {
		// Create temporary directories
		var err error
		tmpDir, err = os.MkdirTemp("", "writer-test-*")
		Expect(err).ToNot(HaveOccurred())

		globalDir = filepath.Join(tmpDir, "global")
		workDir = filepath.Join(tmpDir, "work")

		Expect(os.MkdirAll(globalDir, 0o700)).To(Succeed())
		Expect(os.MkdirAll(workDir, 0o700)).To(Succeed())

		writer = config.NewWriterWithDirs(globalDir, workDir)
	})

	AfterEach(func() {
		if tmpDir != "" {
			os.RemoveAll(tmpDir)
		}
	})

	Describe("WriteGlobal", func() {
		It("should write the global config file", func() {
			cfg := config.DefaultConfig()

			err := writer.WriteGlobal(cfg)
			Expect(err).ToNot(HaveOccurred())
			Expect(writer.GlobalConfigPath()).To(BeAnExistingFile())
		})

		It("should write with secure file permissions", func() {
			err := writer.WriteGlobal(config.DefaultConfig())
			Expect(err).ToNot(HaveOccurred())

			info, err := os.Stat(writer.GlobalConfigPath())
			Expect(err).ToNot(HaveOccurred())
			Expect(info.Mode().Perm()).To(Equal(os.FileMode(0o600)))
		})

		It("should prepend the schema directive", func() {
			err := writer.WriteGlobal(config.DefaultConfig())
			Expect(err).ToNot(HaveOccurred())

			content, err := os.ReadFile(writer.GlobalConfigPath())
			Expect(err).ToNot(HaveOccurred())

			lines := strings.Split(string(content), "\n")
			Expect(lines[0]).To(HavePrefix("#:schema "))
		})
	})

	Describe("WriteProject", func() {
		It("should write the project config file", func() {
			err := writer.WriteProject(config.DefaultConfig())
			Expect(err).ToNot(HaveOccurred())

			Expect(writer.ProjectConfigPath()).To(
				Equal(filepath.Join(workDir, config.ProjectConfigFile)),
			)
			Expect(writer.ProjectConfigPath()).To(BeAnExistingFile())
		})
	})

	Describe("WriteFile", func() {
		It("should return error for nil config", func() {
			err := writer.WriteFile(filepath.Join(tmpDir, "out.toml"), nil)
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("config is nil"))
		})

		It("should create intermediate directories", func() {
			path := filepath.Join(tmpDir, "nested", "deep", "config.toml")

			err := writer.WriteFile(path, config.DefaultConfig())
			Expect(err).ToNot(HaveOccurred())
			Expect(path).To(BeAnExistingFile())
		})
	})

	Describe("Encode", func() {
		It("should return error for nil config", func() {
			_, err := config.Encode(nil)
			Expect(err).To(HaveOccurred())
		})

		It("should render indented TOML with the schema directive first", func() {
			native := true
			cfg := &pkgConfig.Config{
				Version: pkgConfig.CurrentConfigVersion,
				App: &pkgConfig.AppConfig{
					Domain: "com",
					Author: "Weasel Works",
					Name:   "Data Smasher",
				},
				Output: &pkgConfig.OutputConfig{
					Format: pkgConfig.FormatJSON,
				},
				Strategy: &pkgConfig.StrategyConfig{
					Kind:   appdir.KindXDG,
					Native: &native,
				},
			}

			encoded, err := config.Encode(cfg)
			Expect(err).ToNot(HaveOccurred())

			content := string(encoded)
			Expect(content).To(HavePrefix("#:schema "))
			Expect(content).To(ContainSubstring("[app]"))
			Expect(content).To(ContainSubstring(`author = 'Weasel Works'`))
			Expect(content).To(ContainSubstring("[output]"))
			Expect(content).To(ContainSubstring(`format = 'json'`))
			Expect(content).To(ContainSubstring("[strategy]"))
			Expect(content).To(ContainSubstring(`kind = 'xdg'`))
		})
	})

	Describe("round-trip with loader", func() {
		It("should load back what the writer wrote", func() {
			native := true
			cfg := &pkgConfig.Config{
				Version: pkgConfig.CurrentConfigVersion,
				App: &pkgConfig.AppConfig{
					Domain: "com",
					Author: "Weasel Works",
					Name:   "Data Smasher",
				},
				Output: &pkgConfig.OutputConfig{
					Format: pkgConfig.FormatYAML,
				},
				Strategy: &pkgConfig.StrategyConfig{
					Kind:   appdir.KindApple,
					Native: &native,
					Overrides: []pkgConfig.Override{
						{Match: "legacy-*", Kind: appdir.KindUnix},
					},
				},
			}

			Expect(writer.WriteGlobal(cfg)).To(Succeed())

			loader, err := config.NewKoanfLoaderWithDirs(globalDir, workDir)
			Expect(err).ToNot(HaveOccurred())

			loaded, err := loader.Load(nil)
			Expect(err).ToNot(HaveOccurred())
			Expect(loaded.App.Domain).To(Equal("com"))
			Expect(loaded.App.Author).To(Equal("Weasel Works"))
			Expect(loaded.App.Name).To(Equal("Data Smasher"))
			Expect(loaded.Output.FormatValue()).To(Equal(pkgConfig.FormatYAML))
			Expect(loaded.Strategy.KindValue()).To(Equal(appdir.KindApple))
			Expect(loaded.Strategy.IsNative()).To(BeTrue())
			Expect(loaded.Strategy.Overrides).To(HaveLen(1))
			Expect(loaded.Strategy.Overrides[0].Match).To(Equal("legacy-*"))
			Expect(loaded.Strategy.Overrides[0].Kind).To(Equal(appdir.KindUnix))
		})
	})

	Describe("existence checks", func() {
		It("should report global config existence", func() {
			Expect(writer.IsGlobalConfigExists()).To(BeFalse())

			Expect(writer.WriteGlobal(config.DefaultConfig())).To(Succeed())
			Expect(writer.IsGlobalConfigExists()).To(BeTrue())
		})

		It("should report project config existence", func() {
			Expect(writer.IsProjectConfigExists()).To(BeFalse())

			Expect(writer.WriteProject(config.DefaultConfig())).To(Succeed())
			Expect(writer.IsProjectConfigExists()).To(BeTrue())
		})
	})
})
