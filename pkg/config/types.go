package config

// Config is the application configuration.
type Config struct {
	Metadata    Metadata    `yaml:"metadata"`
	Interaction Interaction `yaml:"interaction"`
	Output      Output      `yaml:"output"`
	Logging     Logging     `yaml:"logging"`
	// Commands maps command names to the service ids the command loader
	// looks them up under.
	Commands map[string]string `yaml:"commands,omitempty"`
}

// Metadata describes the application.
type Metadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// Interaction controls whether and how questions are asked.
type Interaction struct {
	// NoInteraction disables questions as if --no-interaction were given.
	NoInteraction *bool `yaml:"no_interaction,omitempty"`
	// MaxAttempts bounds how many invalid answers a question accepts; zero
	// means no bound.
	MaxAttempts int `yaml:"max_attempts,omitempty"`
}

// Output controls terminal rendering.
type Output struct {
	// Color is one of auto, always or never.
	Color string `yaml:"color,omitempty"`
	// Format is the default result format: text, json or yaml.
	Format string `yaml:"format,omitempty"`
}

// Logging controls diagnostic output.
type Logging struct {
	// Level is one of debug, info, warn or error.
	Level string `yaml:"level,omitempty"`
}

// Interactive reports whether the configuration allows questions.
func (c *Config) Interactive() bool {
	return c.Interaction.NoInteraction == nil || !*c.Interaction.NoInteraction
}

// ColorDisabled reports whether colored output is turned off.
func (c *Config) ColorDisabled() bool {
	return c.Output.Color == "never"
}

// Default returns the built-in configuration for an application.
func Default(name string) *Config {
	return &Config{
		Metadata: Metadata{
			Name:    name,
			Version: "dev",
		},
		Output: Output{
			Color:  "auto",
			Format: "text",
		},
		Logging: Logging{
			Level: "warn",
		},
		Commands: map[string]string{},
	}
}
