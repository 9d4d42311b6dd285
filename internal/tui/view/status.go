package view

import (
	"coursectl/internal/tui/components"
	"coursectl/internal/tui/model"
)

func renderStatusBar(m *model.Model, width int) string {
	left := SafeIcon(IconInfo) + m.ActiveTab.Title()
	if m.Panel != nil && m.Panel.Loading() {
		left = m.Spinner.View() + " Loading..."
	}

	message := m.StatusBarMessage
	if message != "" {
		switch m.StatusBarMessageType {
		case model.StatusBarSuccess:
			message = IconText(IconSparkles, message)
		case model.StatusBarError:
			message = IconText(IconCross, message)
		case model.StatusBarWarning:
			message = IconText(IconLightbulb, message)
		default:
			message = IconText(IconInfo, message)
		}
	}

	return components.NewStatusBar(width).
		WithLeftText(left).
		WithMessage(message, m.StatusBarMessageType).
		WithRightText("? help • L log • q quit").
		Render()
}
