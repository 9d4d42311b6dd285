// Package cli renders backend records for the non-interactive commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"coursectl/internal/api"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format for CLI commands
type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

const maxDescriptionWidth = 50

// ParseOutputFormat validates a --output value.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(s); f {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported output format: %s (expected table, json or yaml)", s)
	}
}

// Printer writes records in one output format.
type Printer struct {
	format OutputFormat
	out    io.Writer
}

// NewPrinter creates a printer writing to out.
func NewPrinter(format OutputFormat, out io.Writer) *Printer {
	return &Printer{format: format, out: out}
}

// Courses prints a course collection.
func (p *Printer) Courses(courses []api.Course) error {
	rows := make([]table.Row, 0, len(courses))
	for _, c := range courses {
		rows = append(rows, table.Row{c.ID, c.Title, formatDescription(c.Description), c.Credits})
	}
	return p.list(courses, len(courses), table.Row{"ID", "TITLE", "DESCRIPTION", "CREDITS"}, rows)
}

// Course prints a single course.
func (p *Printer) Course(c api.Course) error {
	return p.single(c, [][2]string{
		{"id", c.ID},
		{"title", c.Title},
		{"description", c.Description},
		{"credits", strconv.Itoa(c.Credits)},
	})
}

// Participants prints a participant collection.
func (p *Printer) Participants(participants []api.Participant) error {
	rows := make([]table.Row, 0, len(participants))
	for _, pt := range participants {
		rows = append(rows, table.Row{pt.ID, pt.FirstName, pt.LastName, pt.Email})
	}
	return p.list(participants, len(participants), table.Row{"ID", "FIRST NAME", "LAST NAME", "EMAIL"}, rows)
}

// Participant prints a single participant.
func (p *Printer) Participant(pt api.Participant) error {
	return p.single(pt, [][2]string{
		{"id", pt.ID},
		{"firstName", pt.FirstName},
		{"lastName", pt.LastName},
		{"email", pt.Email},
	})
}

// Deleted confirms a removal. Structured formats get a small status object.
func (p *Printer) Deleted(kind, id string) error {
	switch p.format {
	case OutputFormatTable:
		_, err := fmt.Fprintf(p.out, "%s %s %s\n", text.FgGreen.Sprint("Deleted"), kind, id)
		return err
	default:
		return p.structured(map[string]string{"deleted": id, "kind": kind})
	}
}

func (p *Printer) list(raw interface{}, n int, header table.Row, rows []table.Row) error {
	if p.format != OutputFormatTable {
		return p.structured(raw)
	}
	if n == 0 {
		_, err := fmt.Fprintln(p.out, text.FgYellow.Sprint("No items found"))
		return err
	}

	t := p.newTable()
	headers := make(table.Row, len(header))
	for i, h := range header {
		headers[i] = text.FgHiCyan.Sprint(h)
	}
	t.AppendHeader(headers)
	t.AppendRows(rows)
	t.Render()

	_, err := fmt.Fprintf(p.out, "\n%s %s\n", text.FgHiBlue.Sprint("Total:"), text.FgHiWhite.Sprint(n))
	return err
}

func (p *Printer) single(raw interface{}, pairs [][2]string) error {
	if p.format != OutputFormatTable {
		return p.structured(raw)
	}

	t := p.newTable()
	t.AppendHeader(table.Row{
		text.FgHiCyan.Sprint("PROPERTY"),
		text.FgHiCyan.Sprint("VALUE"),
	})
	for _, kv := range pairs {
		value := kv[1]
		if value == "" {
			value = text.FgHiBlack.Sprint("-")
		}
		t.AppendRow(table.Row{text.FgYellow.Sprint(kv[0]), value})
	}
	t.Render()
	return nil
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.out)
	t.SetStyle(table.StyleRounded)
	return t
}

func (p *Printer) structured(v interface{}) error {
	switch p.format {
	case OutputFormatJSON:
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case OutputFormatYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to convert to YAML: %w", err)
		}
		_, err = p.out.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

// formatDescription truncates long descriptions appropriately
func formatDescription(desc string) interface{} {
	if desc == "" {
		return text.FgHiBlack.Sprint("-")
	}
	if runewidth.StringWidth(desc) <= maxDescriptionWidth {
		return desc
	}
	return runewidth.Truncate(desc, maxDescriptionWidth-3, "") + text.FgHiBlack.Sprint("...")
}
