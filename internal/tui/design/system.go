package design

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Spacing follows a 4px base unit.
const (
	SpaceNone = 0
	SpaceXS   = 1
	SpaceSM   = 2
	SpaceMD   = 3
	SpaceLG   = 4

	MinPanelHeight = 8
	MinPanelWidth  = 20
)

// Color Palette - Semantic colors with consistent light/dark mode support
var (
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorSuccess = lipgloss.AdaptiveColor{
		Light: "#059669",
		Dark:  "#10B981",
	}
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	ColorBackground = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#0F0F0F",
	}
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1A1A1A",
	}
	ColorSurfaceAlt = lipgloss.AdaptiveColor{
		Light: "#F3F4F6",
		Dark:  "#262626",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}
	ColorBorderFocus = lipgloss.AdaptiveColor{
		Light: "#5A56E0",
		Dark:  "#7571F9",
	}

	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}
	ColorTextTertiary = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}
	ColorTextMuted = lipgloss.AdaptiveColor{
		Light: "#9CA3AF",
		Dark:  "#6B7280",
	}

	ColorHighlight = lipgloss.AdaptiveColor{
		Light: "#EEF2FF",
		Dark:  "#312E81",
	}
	ColorBackgroundOverlay = lipgloss.AdaptiveColor{
		Light: "#FFFFFF",
		Dark:  "#1E1E1E",
	}
	ColorErrorBackground = lipgloss.AdaptiveColor{
		Light: "#FEE2E2",
		Dark:  "#3B1212",
	}
)

// Base Styles
var (
	TextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	TextSecondaryStyle = lipgloss.NewStyle().
				Foreground(ColorTextSecondary)

	TextSuccessStyle = lipgloss.NewStyle().
				Foreground(ColorSuccess)

	TextErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	SurfaceStyle = lipgloss.NewStyle().
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(SpaceNone, SpaceXS)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	BorderFocusStyle = lipgloss.NewStyle().
				Border(lipgloss.ThickBorder()).
				BorderForeground(ColorBorderFocus)
)

// Component Styles
var (
	PanelStyle = SurfaceStyle.
			Inherit(BorderStyle).
			Margin(0)

	PanelFocusedStyle = PanelStyle.
				Inherit(BorderFocusStyle)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(0, SpaceSM)

	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorSurfaceAlt).
			Foreground(ColorText).
			Padding(0, SpaceSM).
			Height(1)

	StatusBarSuccessStyle = StatusBarStyle.
				Background(ColorSuccess).
				Foreground(ColorBackground)

	StatusBarErrorStyle = StatusBarStyle.
				Background(ColorError).
				Foreground(ColorBackground)

	StatusBarWarningStyle = StatusBarStyle.
				Background(ColorWarning).
				Foreground(ColorBackground)

	StatusBarInfoStyle = StatusBarStyle.
				Background(ColorInfo).
				Foreground(ColorBackground)

	// Tabs
	TabStyle = lipgloss.NewStyle().
			Padding(0, SpaceSM).
			Foreground(ColorTextSecondary)

	TabActiveStyle = TabStyle.
			Foreground(ColorPrimary).
			Bold(true).
			Underline(true)

	// Error banner
	ErrorBannerStyle = lipgloss.NewStyle().
				Background(ColorErrorBackground).
				Foreground(ColorError).
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(ColorError).
				Padding(0, SpaceXS)

	// Buttons
	ButtonStyle = lipgloss.NewStyle().
			Padding(0, SpaceSM).
			Background(ColorPrimary).
			Foreground(ColorBackground).
			Bold(true)

	ButtonSecondaryStyle = ButtonStyle.
				Background(ColorSurfaceAlt).
				Foreground(ColorText).
				Bold(false)

	ButtonDisabledStyle = ButtonStyle.
				Background(ColorTextTertiary).
				Foreground(ColorSurfaceAlt).
				Bold(false)

	// Form fields
	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Width(14)

	LabelFocusedStyle = LabelStyle.
				Foreground(ColorPrimary).
				Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	CodeStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Overlay styles
var (
	HelpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1).
			Align(lipgloss.Center).
			Foreground(ColorText)

	CenteredOverlayContainerStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(ColorBorder).
					Background(ColorBackgroundOverlay).
					Foreground(ColorText).
					Padding(1, 2)

	LogOverlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Background(ColorBackgroundOverlay).
			Foreground(ColorText).
			Padding(1, 2)

	LogPanelTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				MarginBottom(1).
				Foreground(ColorText)
)

// Log level styles
var (
	LogInfoStyle  = lipgloss.NewStyle().Foreground(ColorText)
	LogWarnStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	LogErrorStyle = lipgloss.NewStyle().Foreground(ColorError)
	LogDebugStyle = lipgloss.NewStyle().Foreground(ColorTextMuted).Italic(true)
)

// TableStyles returns the record table styles, with the selected row
// highlighted only while the table has focus.
func TableStyles(focused bool) table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorTextSecondary)
	if focused {
		s.Selected = s.Selected.
			Foreground(ColorBackground).
			Background(ColorPrimary).
			Bold(false)
	} else {
		s.Selected = s.Selected.
			Foreground(ColorText).
			Bold(false)
	}
	return s
}

// CenterHorizontal pads content to sit in the middle of width columns.
func CenterHorizontal(width int, content string) string {
	contentWidth := lipgloss.Width(content)
	if contentWidth >= width {
		return content
	}
	padding := (width - contentWidth) / 2
	return lipgloss.NewStyle().
		PaddingLeft(padding).
		Width(width).
		Render(content)
}

// CenterVertical pads content to sit in the middle of height rows.
func CenterVertical(height int, content string) string {
	contentHeight := lipgloss.Height(content)
	if contentHeight >= height {
		return content
	}
	padding := (height - contentHeight) / 2
	return lipgloss.NewStyle().
		PaddingTop(padding).
		Height(height).
		Render(content)
}

// Initialize sets up the design system
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}
