package components

import (
	"strings"
	"testing"

	"coursectl/internal/tui/design"
	"coursectl/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestPanel_Render_EdgeCases(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		title   string
		content string
	}{
		{
			name:    "zero dimensions",
			width:   0,
			height:  0,
			title:   "Test Panel",
			content: "This is test content",
		},
		{
			name:    "negative dimensions",
			width:   -10,
			height:  -5,
			title:   "Test Panel",
			content: "This is test content",
		},
		{
			name:    "empty content",
			width:   40,
			height:  10,
			title:   "Test Panel",
			content: "",
		},
		{
			name:    "very long content",
			width:   20,
			height:  5,
			title:   "Test Panel",
			content: strings.Repeat("This is a very long line that should be truncated. ", 10),
		},
		{
			name:    "multiline content exceeding height",
			width:   30,
			height:  5,
			title:   "Test Panel",
			content: "Line 1\nLine 2\nLine 3\nLine 4\nLine 5\nLine 6\nLine 7\nLine 8\nLine 9\nLine 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel := NewPanel(tt.title).
				WithContent(tt.content).
				WithDimensions(tt.width, tt.height)

			output := panel.Render()

			assert.NotEmpty(t, output, "Panel should produce output even with edge case dimensions")
			assert.True(t, panel.Width >= design.MinPanelWidth, "Panel width should be at least MinPanelWidth")
			assert.LessOrEqual(t, lipgloss.Width(output), panel.Width)
		})
	}
}

func TestPanel_FixedHeight(t *testing.T) {
	output := NewPanel("Rows").
		WithContent("1\n2\n3\n4\n5\n6\n7\n8").
		WithDimensions(30, 6).
		Render()

	assert.Equal(t, 6, lipgloss.Height(output))
	assert.Contains(t, output, "...")
}

func TestPanel_FitsContent(t *testing.T) {
	output := NewPanel("Create course").
		WithContent("one\ntwo").
		WithDimensions(40, 0).
		Render()

	// border + title + two content lines
	assert.Equal(t, 5, lipgloss.Height(output))
	assert.Contains(t, output, "Create course")
}

func TestPanel_Types(t *testing.T) {
	for _, pt := range []PanelType{PanelTypeDefault, PanelTypeError, PanelTypeInfo} {
		output := NewPanel("Test Panel").
			WithType(pt).
			SetFocused(pt == PanelTypeInfo).
			WithDimensions(40, 0).
			WithContent("Test content").
			Render()
		assert.NotEmpty(t, output, "Panel should render with any type")
	}
}

func TestHeader_Render(t *testing.T) {
	out := NewHeader("coursectl").
		WithRightContent(FormatBackend("http://localhost:5000", 0)).
		WithWidth(80).
		Render()

	assert.Contains(t, out, "coursectl")
	assert.Contains(t, out, "Backend: http://localhost:5000")
	assert.LessOrEqual(t, lipgloss.Width(out), 80)
}

func TestFormatBackend_Truncates(t *testing.T) {
	got := FormatBackend("http://a-very-long-hostname.example.com:5000", 20)
	assert.Equal(t, 20, lipgloss.Width(got))
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestStatusBar_Render(t *testing.T) {
	plain := NewStatusBar(60).WithLeftText("Courses").WithRightText("? help").Render()
	assert.Contains(t, plain, "Courses")
	assert.Contains(t, plain, "? help")

	withMsg := NewStatusBar(60).
		WithLeftText("Courses").
		WithMessage("Course created", model.StatusBarSuccess).
		Render()
	assert.Contains(t, withMsg, "Course created")
	assert.NotContains(t, withMsg, "Courses")
}
