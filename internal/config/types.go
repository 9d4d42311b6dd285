package config

// Config is the top-level coursectl configuration.
type Config struct {
	// APIBase is the backend base URL. Paths such as /api/courses are
	// appended to it.
	APIBase string   `yaml:"apiBase"`
	UI      UIConfig `yaml:"ui"`
}

// UIConfig holds settings for the interactive terminal UI.
type UIConfig struct {
	// DefaultTab is the tab selected at startup: "courses" or "participants".
	DefaultTab string `yaml:"defaultTab"`
	Debug      bool   `yaml:"debug"`
}

const (
	TabCourses      = "courses"
	TabParticipants = "participants"
)
