package api

// Record is implemented by every resource returned by the backend.
// The identifier is owned by the backend and treated as opaque.
type Record interface {
	RecordID() string
}

// Course is a course as returned by the backend.
type Course struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Credits     int    `json:"credits" yaml:"credits"`
}

// RecordID implements Record.
func (c Course) RecordID() string { return c.ID }

// CoursePayload is the body of POST /api/courses.
type CoursePayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Credits     int    `json:"credits"`
}

// Participant is a participant as returned by the backend.
type Participant struct {
	ID        string `json:"id" yaml:"id"`
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	Email     string `json:"email" yaml:"email"`
}

// RecordID implements Record.
func (p Participant) RecordID() string { return p.ID }

// ParticipantPayload is the body of POST /api/participants.
type ParticipantPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// Collection paths on the backend.
const (
	CoursesPath      = "/api/courses"
	ParticipantsPath = "/api/participants"
)
