package components

import (
	"strings"

	"coursectl/internal/tui/design"
	"coursectl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeError
	PanelTypeInfo
)

// Panel is a bordered section with a title line.
type Panel struct {
	Title   string
	Content string
	Width   int
	// Height of zero sizes the panel to its content.
	Height  int
	Focused bool
	Type    PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title: title,
		Width: design.MinPanelWidth,
		Type:  PanelTypeDefault,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithDimensions sets the panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// SetFocused updates the focus state
func (p *Panel) SetFocused(focused bool) *Panel {
	p.Focused = focused
	return p
}

// Render returns the styled panel
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}

	style := p.getStyle()
	innerWidth := p.Width - style.GetHorizontalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}

	var lines []string
	if p.Title != "" {
		lines = append(lines, p.renderTitle(innerWidth))
	}
	if p.Content != "" {
		for _, line := range strings.Split(p.Content, "\n") {
			if lipgloss.Width(line) > innerWidth {
				line = lipgloss.NewStyle().MaxWidth(innerWidth).Render(line)
			}
			lines = append(lines, line)
		}
	}

	if p.Height > 0 {
		innerHeight := p.Height - style.GetVerticalFrameSize()
		if innerHeight < 1 {
			innerHeight = 1
		}
		if len(lines) > innerHeight {
			lines = append(lines[:innerHeight-1], design.DimStyle.Render("..."))
		}
		for len(lines) < innerHeight {
			lines = append(lines, "")
		}
	}

	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

// getStyle returns the appropriate style based on panel state
func (p *Panel) getStyle() lipgloss.Style {
	baseStyle := design.PanelStyle
	if p.Focused {
		baseStyle = design.PanelFocusedStyle
	}

	switch p.Type {
	case PanelTypeError:
		return baseStyle.BorderForeground(design.ColorError)
	case PanelTypeInfo:
		return baseStyle.BorderForeground(design.ColorInfo)
	default:
		return baseStyle
	}
}

func (p *Panel) renderTitle(width int) string {
	titleStyle := design.TitleStyle
	if p.Focused {
		titleStyle = titleStyle.Foreground(design.ColorPrimary)
	}
	return titleStyle.Render(utils.Ellipsize(p.Title, width))
}
