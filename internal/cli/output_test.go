package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"coursectl/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var sampleCourses = []api.Course{
	{ID: "c-1", Title: "SQL 101", Description: "Intro", Credits: 5},
	{ID: "c-2", Title: "Go", Description: strings.Repeat("long ", 20), Credits: 3},
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"table", OutputFormatTable, false},
		{"json", OutputFormatJSON, false},
		{"yaml", OutputFormatYAML, false},
		{"xml", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrinter_CoursesTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(OutputFormatTable, &buf).Courses(sampleCourses))

	out := buf.String()
	assert.Contains(t, out, "TITLE")
	assert.Contains(t, out, "SQL 101")
	assert.Contains(t, out, "c-2")
	assert.Contains(t, out, "...")
	assert.Contains(t, out, "Total:")
}

func TestPrinter_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(OutputFormatTable, &buf).Participants(nil))
	assert.Contains(t, buf.String(), "No items found")
}

func TestPrinter_CoursesJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(OutputFormatJSON, &buf).Courses(sampleCourses))

	var decoded []api.Course
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleCourses, decoded)
}

func TestPrinter_ParticipantYAML(t *testing.T) {
	pt := api.Participant{ID: "p-1", FirstName: "Ada", LastName: "Lovelace", Email: "a@b.com"}

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(OutputFormatYAML, &buf).Participant(pt))

	var decoded map[string]string
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "a@b.com", decoded["email"])
	assert.Equal(t, "Ada", decoded["firstName"])
}

func TestPrinter_CourseKeyValue(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(OutputFormatTable, &buf).Course(api.Course{ID: "c-1", Title: "SQL 101", Credits: 5}))

	out := buf.String()
	assert.Contains(t, out, "PROPERTY")
	assert.Contains(t, out, "credits")
	assert.Contains(t, out, "5")
}

func TestPrinter_Deleted(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewPrinter(OutputFormatTable, &buf).Deleted("course", "c-1"))
	assert.Contains(t, buf.String(), "course c-1")

	buf.Reset()
	require.NoError(t, NewPrinter(OutputFormatJSON, &buf).Deleted("course", "c-1"))
	assert.JSONEq(t, `{"deleted":"c-1","kind":"course"}`, buf.String())
}
