package view

import (
	"strings"

	"coursectl/internal/tui/components"
	"coursectl/internal/tui/design"
	"coursectl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

// renderPanelBody draws the create, lookup and list sections of a panel.
func renderPanelBody(p model.ResourcePanel, width int) string {
	sections := []string{renderCreateSection(p, width)}
	if p.SupportsLookup() {
		sections = append(sections, renderLookupSection(p, width))
	}
	sections = append(sections, renderListSection(p, width))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func renderCreateSection(p model.ResourcePanel, width int) string {
	var lines []string
	for i, f := range p.Fields() {
		label := design.LabelStyle.Render(f.Label)
		if p.FieldFocused(i) {
			label = design.LabelFocusedStyle.Render(f.Label)
		}
		lines = append(lines, label+p.InputView(i))
	}
	lines = append(lines, "", renderButtons(
		button("Create", "enter", p.CanCreate(), true),
		button("Refresh", "r", p.CanRefresh(), false),
	))

	focused := false
	for i := range p.Fields() {
		focused = focused || p.FieldFocused(i)
	}
	return components.NewPanel("Create "+p.Singular()).
		WithContent(strings.Join(lines, "\n")).
		WithDimensions(width, 0).
		SetFocused(focused).
		Render()
}

func renderLookupSection(p model.ResourcePanel, width int) string {
	label := design.LabelStyle.Width(0).Render(p.LookupLabel() + "  ")
	if p.LookupFocused() {
		label = design.LabelFocusedStyle.Width(0).Render(p.LookupLabel() + "  ")
	}

	lines := []string{
		label + p.LookupInputView(),
		"",
		renderButtons(
			button("Lookup", "enter", p.CanLookup(), true),
			button("Clear", "c", true, false),
		),
		"",
	}
	if js, ok := p.LookupJSON(); ok {
		lines = append(lines, design.CodeStyle.Render(js))
	} else {
		lines = append(lines, design.DimStyle.Render(p.LookupHint()))
	}

	return components.NewPanel("Find "+p.Singular()+" by id").
		WithContent(strings.Join(lines, "\n")).
		WithDimensions(width, 0).
		SetFocused(p.LookupFocused()).
		WithType(components.PanelTypeInfo).
		Render()
}

func renderListSection(p model.ResourcePanel, width int) string {
	status := ""
	if p.Loading() {
		status = design.DimStyle.Render("Loading...")
	}

	var body string
	if p.Len() == 0 {
		body = design.DimStyle.Render(p.EmptyText())
	} else {
		body = p.TableView()
	}

	title := p.Title()
	if p.Len() > 0 {
		hint := "d delete • y copy id"
		if !p.CanRemove() {
			hint = "y copy id"
		}
		title += "  " + design.DimStyle.Render(hint)
	}

	return components.NewPanel(title).
		WithContent(status+"\n"+body).
		WithDimensions(width, 0).
		SetFocused(p.TableFocused()).
		Render()
}

type buttonSpec struct {
	label   string
	key     string
	enabled bool
	primary bool
}

func button(label, key string, enabled, primary bool) buttonSpec {
	return buttonSpec{label: label, key: key, enabled: enabled, primary: primary}
}

// renderButtons draws a row of buttons. Disabled buttons are greyed out
// and their key hint is dropped.
func renderButtons(buttons ...buttonSpec) string {
	parts := make([]string, 0, len(buttons)*2)
	for i, b := range buttons {
		if i > 0 {
			parts = append(parts, " ")
		}
		switch {
		case !b.enabled:
			parts = append(parts, design.ButtonDisabledStyle.Render(b.label))
		case b.primary:
			parts = append(parts, design.ButtonStyle.Render(b.label+" ["+b.key+"]"))
		default:
			parts = append(parts, design.ButtonSecondaryStyle.Render(b.label+" ["+b.key+"]"))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}
