package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Names accepted by For.
const (
	Light = "light"
	Dark  = "dark"
)

// Theme centralizes Lip Gloss styles for the dashboard.
type Theme struct {
	Name   string
	Header HeaderTheme
	Panel  PanelTheme
	Task   TaskTheme
	Footer FooterTheme

	// The progress bar blends from ProgressLow at 0% to ProgressHigh at 100%.
	ProgressLow  string
	ProgressHigh string
}

// HeaderTheme styles the greeting line.
type HeaderTheme struct {
	Greeting lipgloss.Style
	Date     lipgloss.Style
	Badge    lipgloss.Style
}

// PanelTheme styles framed panels and headings.
type PanelTheme struct {
	Frame lipgloss.Style
	Title lipgloss.Style
	Body  lipgloss.Style
	Empty lipgloss.Style
}

// TaskTheme colors rows by urgency.
type TaskTheme struct {
	High    lipgloss.Style
	Overdue lipgloss.Style
	Closing lipgloss.Style
	Muted   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Alert  lipgloss.Style
	Error  lipgloss.Style
}

func build(name string, fg, muted, accent, warn, danger, border lipgloss.Color, low, high string) Theme {
	return Theme{
		Name: name,
		Header: HeaderTheme{
			Greeting: lipgloss.NewStyle().Foreground(fg).Bold(true),
			Date:     lipgloss.NewStyle().Foreground(muted),
			Badge:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Background(danger).Bold(true).Padding(0, 1),
		},
		Panel: PanelTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(border).
				Padding(0, 1),
			Title: lipgloss.NewStyle().Foreground(accent).Bold(true),
			Body:  lipgloss.NewStyle().Foreground(fg),
			Empty: lipgloss.NewStyle().Foreground(muted).Italic(true),
		},
		Task: TaskTheme{
			High:    lipgloss.NewStyle().Foreground(warn).Bold(true),
			Overdue: lipgloss.NewStyle().Foreground(danger),
			Closing: lipgloss.NewStyle().Foreground(accent),
			Muted:   lipgloss.NewStyle().Foreground(muted),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(muted),
			Status: lipgloss.NewStyle().Foreground(muted),
			Alert:  lipgloss.NewStyle().Foreground(warn),
			Error:  lipgloss.NewStyle().Foreground(danger).Bold(true),
		},
		ProgressLow:  low,
		ProgressHigh: high,
	}
}

// LightTheme suits terminals with a light background.
func LightTheme() Theme {
	return build(Light,
		lipgloss.Color("235"), lipgloss.Color("245"), lipgloss.Color("25"),
		lipgloss.Color("130"), lipgloss.Color("160"), lipgloss.Color("250"),
		"#D7263D", "#1B998B")
}

// DarkTheme suits terminals with a dark background.
func DarkTheme() Theme {
	return build(Dark,
		lipgloss.Color("252"), lipgloss.Color("242"), lipgloss.Color("81"),
		lipgloss.Color("214"), lipgloss.Color("203"), lipgloss.Color("238"),
		"#FF5F87", "#5FFFAF")
}

// For returns the named theme. Any other name, including empty, picks by the
// terminal background as reported by dark.
func For(name string, dark func() bool) Theme {
	switch name {
	case Light:
		return LightTheme()
	case Dark:
		return DarkTheme()
	}
	if dark != nil && dark() {
		return DarkTheme()
	}
	return LightTheme()
}

// ProgressColor blends the progress colors for a 0..100 percentage.
func (t Theme) ProgressColor(percent int) string {
	lo, err := colorful.Hex(t.ProgressLow)
	if err != nil {
		return t.ProgressHigh
	}
	hi, err := colorful.Hex(t.ProgressHigh)
	if err != nil {
		return t.ProgressHigh
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return lo.BlendLab(hi, float64(percent)/100).Clamped().Hex()
}
