package model

// Window represents a visible application window.
type Window struct {
	PID   int    `yaml:"pid"`
	App   string `yaml:"app"`
	Title string `yaml:"title"`
	ID    int    `yaml:"id,omitempty"`
}
