package view

import (
	"strings"

	"coursectl/internal/tui/components"
	"coursectl/internal/tui/design"
	"coursectl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	switch m.CurrentAppMode {
	case model.ModeQuitting:
		msg := design.TextSecondaryStyle.Render(m.QuittingMessage)
		if m.Width == 0 || m.Height == 0 {
			return msg
		}
		return design.CenterVertical(m.Height, design.CenterHorizontal(m.Width, msg))
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m)
	case model.ModeLogOverlay:
		return renderLogOverlay(m)
	}
	if m.Width == 0 || m.Height == 0 {
		return design.TextSecondaryStyle.Render("Initializing... (waiting for window size)")
	}
	return renderMain(m)
}

// renderMain stacks the shell chrome around the mounted panel.
func renderMain(m *model.Model) string {
	width := m.Width

	rows := []string{
		renderHeader(m, width),
		renderTabs(m),
		"",
		design.TitleStyle.Render(m.Panel.Title()),
	}
	if m.ErrorMessage != "" {
		rows = append(rows, renderErrorBanner(m.ErrorMessage, width), "")
	}
	rows = append(rows, renderPanelBody(m.Panel, width))

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	footer := design.FooterStyle.Render(model.FooterText)
	statusBar := renderStatusBar(m, width)

	// Pad so the footer and status bar sit on the last two rows.
	gap := m.Height - lipgloss.Height(body) - 2
	if gap > 0 {
		body += strings.Repeat("\n", gap)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, footer, statusBar)
}

func renderHeader(m *model.Model, width int) string {
	backend := components.FormatBackend(m.APIBase, width/2)
	return components.NewHeader(model.AppTitle).
		WithRightContent(design.CodeStyle.Render(backend)).
		WithWidth(width).
		Render()
}

func renderTabs(m *model.Model) string {
	tabs := make([]string, 0, len(model.Tabs))
	for i, t := range model.Tabs {
		label := string(rune('1'+i)) + " " + t.Title()
		if t == m.ActiveTab {
			tabs = append(tabs, design.TabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, design.TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func renderErrorBanner(message string, width int) string {
	text := lipgloss.NewStyle().Bold(true).Render("Error:") + " " + message +
		design.DimStyle.Render("  (esc to dismiss)")
	style := design.ErrorBannerStyle
	return style.Width(width - style.GetHorizontalBorderSize()).Render(text)
}
