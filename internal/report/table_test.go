package report_test

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/appdirs/internal/color"
	"github.com/smykla-skalski/appdirs/internal/report"
)

// Tests are run as part of the Report Suite from report_test.go.

var _ = Describe("padToWidth", func() {
	It("should pad short strings to the target width", func() {
		Expect(report.PadToWidth("ab", 5)).To(Equal("ab   "))
	})

	It("should leave strings at or over the target width alone", func() {
		Expect(report.PadToWidth("abcde", 5)).To(Equal("abcde"))
		Expect(report.PadToWidth("abcdef", 5)).To(Equal("abcdef"))
	})

	It("should exclude ANSI escape codes from width calculation", func() {
		styled := "\x1b[31mab\x1b[0m"
		padded := report.PadToWidth(styled, 5)
		Expect(padded).To(Equal(styled + "   "))
	})
})

var _ = Describe("calcColumnWidthsFor", func() {
	It("should return nil when not a terminal", func() {
		Expect(report.CalcColumnWidthsFor(0)).To(BeNil())
	})

	It("should return nil for terminals below the minimum width", func() {
		Expect(report.CalcColumnWidthsFor(39)).To(BeNil())
	})

	It("should give the path column the remaining width", func() {
		widths := report.CalcColumnWidthsFor(80)
		Expect(widths).To(HaveKeyWithValue(0, 7))
		Expect(widths).To(HaveKeyWithValue(1, 66))
	})

	It("should keep the minimum path width at the narrow edge", func() {
		widths := report.CalcColumnWidthsFor(40)
		Expect(widths).To(HaveKeyWithValue(1, 26))
	})
})

var _ = Describe("toCellWidths", func() {
	It("should add cell padding to content widths", func() {
		cells := report.ToCellWidths(map[int]int{0: 7, 1: 20})
		Expect(cells[0]).To(Equal(9))
		Expect(cells[1]).To(Equal(22))
	})
})

var _ = Describe("shortenPath", func() {
	BeforeEach(func() {
		report.SetHomeDir("/opt/home")

		DeferCleanup(func() {
			home, _ := os.UserHomeDir()
			report.SetHomeDir(home)
		})
	})

	It("should replace the home prefix with ~", func() {
		Expect(report.ShortenPath("/opt/home/.config/app")).To(Equal("~/.config/app"))
	})

	It("should leave paths outside home alone", func() {
		Expect(report.ShortenPath("/etc/app")).To(Equal("/etc/app"))
	})

	It("should pass everything through when home is unknown", func() {
		report.SetHomeDir("")
		Expect(report.ShortenPath("/opt/home/.config/app")).To(Equal("/opt/home/.config/app"))
	})
})

var _ = Describe("kindTitle", func() {
	It("should map known kinds to display names", func() {
		Expect(report.KindTitle("xdg")).To(Equal("XDG"))
		Expect(report.KindTitle("apple")).To(Equal("Apple"))
		Expect(report.KindTitle("windows")).To(Equal("Windows"))
		Expect(report.KindTitle("unix")).To(Equal("Unix"))
	})

	It("should capitalize unknown kinds", func() {
		Expect(report.KindTitle("custom")).To(Equal("Custom"))
	})

	It("should fall back for empty kinds", func() {
		Expect(report.KindTitle("")).To(Equal("Unknown"))
	})
})

var _ = Describe("dimBorders", func() {
	It("should leave output unchanged with an empty theme", func() {
		theme := color.NewTheme(false)
		input := "╭───╮\n│ x │\n╰───╯"
		Expect(report.DimBorders(input, theme)).To(Equal(input))
	})
})
