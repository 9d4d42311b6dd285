package model

import (
	"coursectl/internal/api"
	"coursectl/pkg/logging"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeMain AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeMain:
		return "Main"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Tab identifies which resource panel is mounted.
type Tab int

const (
	TabCourses Tab = iota
	TabParticipants
)

// Tabs lists the tabs in display order.
var Tabs = []Tab{TabCourses, TabParticipants}

func (t Tab) String() string {
	switch t {
	case TabCourses:
		return "courses"
	case TabParticipants:
		return "participants"
	default:
		return "unknown"
	}
}

// Title is the label shown in the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabCourses:
		return "Courses"
	case TabParticipants:
		return "Participants"
	default:
		return "Unknown"
	}
}

// ParseTab maps a config value to a Tab. Unknown names fall back to courses.
func ParseTab(s string) Tab {
	if s == TabParticipants.String() {
		return TabParticipants
	}
	return TabCourses
}

// MessageType represents the type of status bar message
type MessageType int

const (
	StatusBarInfo MessageType = iota
	StatusBarSuccess
	StatusBarError
	StatusBarWarning
)

// Constants for UI
const (
	MaxActivityLogLines = 1000
	AppTitle            = "Databasteknik – Frontend"
	FooterText          = "Minimal UI for testing API. Design is not graded."
)

// TUIConfig carries everything the model needs from the application layer.
type TUIConfig struct {
	APIBase    string
	DefaultTab Tab
	DebugMode  bool
	// Client is built from APIBase when nil.
	Client *api.Client
}

// Model is the Shell: it owns the active tab, the single error slot and
// the currently mounted resource panel.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode  AppMode
	DebugMode       bool
	QuittingMessage string

	// Shell state
	ActiveTab    Tab
	ErrorMessage string
	Panel        ResourcePanel

	// Backend
	APIBase string
	Client  *api.Client

	// UI State & Output
	ActivityLog          []string
	ActivityLogDirty     bool
	LogViewportLastWidth int
	LogViewport          viewport.Model
	Spinner              spinner.Model
	Keys                 KeyMap
	Help                 help.Model
	StatusBarMessage     string
	StatusBarMessageType MessageType
	StatusBarClearCancel chan struct{}

	// Logging
	LogChannel <-chan logging.LogEntry

	epoch int
	// newPanel is swapped in tests to mount panels over fake stores.
	newPanel func(tab Tab, epoch int, report func(string)) ResourcePanel
}
