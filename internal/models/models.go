package models

// Constants for default values
const (
	// DefaultVersion is the document version used when none is configured
	DefaultVersion = "0.0.1"

	// DefaultLogLevel keeps the generator quiet unless asked otherwise
	DefaultLogLevel = "error"

	// ManSection is the manual section every generated page belongs to
	ManSection = "1"
)

// Command represents a subcommand discovered in the commands section of the
// target utility's help output
type Command struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// Option represents a single option block from the options section: the
// flag line and the description lines that followed it
type Option struct {
	Flags       string   `yaml:"flags" json:"flags"`
	Description []string `yaml:"description,omitempty" json:"description,omitempty"`
}

// EnvVar represents an environment variable documented in the ENVIRONMENT
// section of the generated page
type EnvVar struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// FileEntry represents one entry of the user supplied files list
type FileEntry struct {
	Path        string `yaml:"path" json:"path"`
	Description string `yaml:"description" json:"description"`
}

// Config represents the application configuration
type Config struct {
	LogLevel    string   `yaml:"log_level" json:"log_level"`
	Version     string   `yaml:"version" json:"version"`
	Title       string   `yaml:"title" json:"title"`
	Environment []EnvVar `yaml:"environment,omitempty" json:"environment,omitempty"`
	Also        []string `yaml:"also,omitempty" json:"also,omitempty"`
}
