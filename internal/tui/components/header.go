package components

import (
	"strings"

	"coursectl/internal/tui/design"
	"coursectl/internal/tui/utils"

	"github.com/charmbracelet/lipgloss"
)

// Header represents the application header
type Header struct {
	Title        string
	Subtitle     string
	Width        int
	RightContent string
}

// NewHeader creates a new header
func NewHeader(title string) *Header {
	return &Header{
		Title: title,
		Width: 80,
	}
}

// WithSubtitle adds a subtitle
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.Subtitle = subtitle
	return h
}

// WithRightContent adds content to the right side
func (h *Header) WithRightContent(content string) *Header {
	h.RightContent = content
	return h
}

// WithWidth sets the header width
func (h *Header) WithWidth(width int) *Header {
	h.Width = width
	return h
}

// Render returns the styled header
func (h *Header) Render() string {
	leftParts := []string{h.Title}
	if h.Subtitle != "" {
		leftParts = append(leftParts, design.TextSecondaryStyle.Render(h.Subtitle))
	}
	leftContent := strings.Join(leftParts, "  ")

	availableWidth := h.Width - design.SpaceSM*2
	content := leftContent
	if h.RightContent != "" {
		leftWidth := lipgloss.Width(leftContent)
		rightWidth := lipgloss.Width(h.RightContent)
		if leftWidth+rightWidth+2 <= availableWidth {
			content = leftContent + strings.Repeat(" ", availableWidth-leftWidth-rightWidth) + h.RightContent
		}
	}
	if lipgloss.Width(content) > availableWidth && availableWidth > 0 {
		content = lipgloss.NewStyle().MaxWidth(availableWidth).Render(content)
	}

	return design.HeaderStyle.
		Width(h.Width).
		MaxWidth(h.Width).
		Render(content)
}

// FormatBackend renders the backend line shown in the header.
func FormatBackend(baseURL string, width int) string {
	label := "Backend: " + baseURL
	if width > 0 {
		label = utils.Ellipsize(label, width)
	}
	return label
}
