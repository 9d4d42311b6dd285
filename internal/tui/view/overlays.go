package view

import (
	"coursectl/internal/tui/design"
	"coursectl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// renderHelpOverlay renders the key bindings centered on screen.
func renderHelpOverlay(m *model.Model) string {
	titleView := design.HelpTitleStyle.Render("KEYBOARD SHORTCUTS")
	helpView := m.Help.FullHelpView(m.Keys.FullHelp())

	container := design.CenteredOverlayContainerStyle.Render(titleView + "\n" + helpView)
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, container)
}

// renderLogOverlay renders the activity log in a scrollable viewport. The
// viewport is sized here since it depends on the terminal size.
func renderLogOverlay(m *model.Model) string {
	titleView := design.LogPanelTitleStyle.Render(SafeIcon(IconScroll) + " Activity Log  (↑/↓ scroll  •  y copy  •  Esc close)")
	titleHeight := lipgloss.Height(titleView)

	overlayTotalWidth := int(float64(m.Width) * 0.8)
	overlayTotalHeight := int(float64(m.Height) * 0.7)

	newViewportWidth := overlayTotalWidth - design.LogOverlayStyle.GetHorizontalFrameSize()
	newViewportHeight := overlayTotalHeight - design.LogOverlayStyle.GetVerticalFrameSize() - titleHeight
	if newViewportWidth < 0 {
		newViewportWidth = 0
	}
	if newViewportHeight < 0 {
		newViewportHeight = 0
	}

	dimensionsChanged := m.LogViewport.Width != newViewportWidth || m.LogViewport.Height != newViewportHeight
	m.LogViewport.Width = newViewportWidth
	m.LogViewport.Height = newViewportHeight

	if m.ActivityLogDirty || dimensionsChanged {
		m.LogViewport.SetContent(PrepareLogContent(m.ActivityLog, m.LogViewport.Width))
		m.LogViewportLastWidth = m.LogViewport.Width
	}

	content := lipgloss.JoinVertical(lipgloss.Left, titleView, m.LogViewport.View())
	overlay := design.LogOverlayStyle.
		Width(overlayTotalWidth - design.LogOverlayStyle.GetHorizontalBorderSize()).
		Height(overlayTotalHeight - design.LogOverlayStyle.GetVerticalBorderSize()).
		Render(content)

	overlayCanvas := lipgloss.Place(m.Width, m.Height-1, lipgloss.Center, lipgloss.Center, overlay)
	return lipgloss.JoinVertical(lipgloss.Left, overlayCanvas, renderStatusBar(m, m.Width))
}
