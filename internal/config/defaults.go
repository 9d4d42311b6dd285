package config

// DefaultAPIBase is used when no layer sets apiBase.
const DefaultAPIBase = "http://localhost:5000"

// APIBaseEnvVar names the environment variable that overrides apiBase.
const APIBaseEnvVar = "COURSECTL_API_BASE"

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() Config {
	return Config{
		APIBase: DefaultAPIBase,
		UI: UIConfig{
			DefaultTab: TabCourses,
		},
	}
}
