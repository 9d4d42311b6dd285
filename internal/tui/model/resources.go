package model

import (
	"fmt"
	"strconv"
	"strings"

	"coursectl/internal/api"
)

const defaultCredits = "5"

// CourseResource describes the courses tab.
func CourseResource() Resource[api.Course] {
	return Resource[api.Course]{
		Name:      "courses",
		Title:     "Courses",
		Singular:  "course",
		Subsystem: "Courses",
		Fields: []Field{
			{Key: "title", Label: "Title", Placeholder: "e.g. SQL 101"},
			{Key: "description", Label: "Description", Placeholder: "Short description"},
			{Key: "credits", Label: "Credits", Default: defaultCredits, Numeric: true},
		},
		Required: "title",
		Columns: []Column[api.Course]{
			{Title: "Title", Value: func(c api.Course) string { return c.Title }},
			{Title: "Credits", Width: 7, Value: func(c api.Course) string { return strconv.Itoa(c.Credits) }},
			{Title: "ID", Width: 36, Value: func(c api.Course) string { return c.ID }},
		},
		Payload:     coursePayload,
		Label:       func(c api.Course) string { return c.Title },
		EmptyText:   "No courses yet. Create one above.",
		Lookup:      true,
		LookupLabel: "Course id (GUID)",
		LookupHint:  "Demonstrates GET /api/courses/{id}",
	}
}

func coursePayload(d Draft) (interface{}, error) {
	credits := 0
	if raw := strings.TrimSpace(d["credits"]); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("credits must be a whole number: %w", err)
		}
		credits = n
	}
	return api.CoursePayload{
		Title:       d["title"],
		Description: d["description"],
		Credits:     credits,
	}, nil
}

// ParticipantResource describes the participants tab.
func ParticipantResource() Resource[api.Participant] {
	return Resource[api.Participant]{
		Name:      "participants",
		Title:     "Participants",
		Singular:  "participant",
		Subsystem: "Participants",
		Fields: []Field{
			{Key: "firstName", Label: "First name"},
			{Key: "lastName", Label: "Last name"},
			{Key: "email", Label: "Email", Placeholder: "name@example.com"},
		},
		Required: "email",
		Columns: []Column[api.Participant]{
			{Title: "Name", Value: func(p api.Participant) string { return strings.TrimSpace(p.FirstName + " " + p.LastName) }},
			{Title: "Email", Value: func(p api.Participant) string { return p.Email }},
			{Title: "ID", Width: 36, Value: func(p api.Participant) string { return p.ID }},
		},
		Payload: func(d Draft) (interface{}, error) {
			return api.ParticipantPayload{
				FirstName: d["firstName"],
				LastName:  d["lastName"],
				Email:     d["email"],
			}, nil
		},
		Label:     func(p api.Participant) string { return p.Email },
		EmptyText: "No participants yet. Create one above.",
	}
}

// NewCoursePanel mounts a courses panel against client.
func NewCoursePanel(client *api.Client, epoch int, report func(string)) *Panel[api.Course] {
	return NewPanel[api.Course](CourseResource(), api.NewCourseEndpoint(client), epoch, report)
}

// NewParticipantPanel mounts a participants panel against client.
func NewParticipantPanel(client *api.Client, epoch int, report func(string)) *Panel[api.Participant] {
	return NewPanel[api.Participant](ParticipantResource(), api.NewParticipantEndpoint(client), epoch, report)
}
