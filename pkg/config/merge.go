package config

// mergeConfigs returns base with every field set in override applied on
// top. Command mappings are merged by name.
func mergeConfigs(base, override *Config) *Config {
	merged := copyConfig(base)
	if override == nil {
		return merged
	}

	if override.Metadata.Name != "" {
		merged.Metadata.Name = override.Metadata.Name
	}
	if override.Metadata.Version != "" {
		merged.Metadata.Version = override.Metadata.Version
	}
	if override.Metadata.Description != "" {
		merged.Metadata.Description = override.Metadata.Description
	}

	if override.Interaction.NoInteraction != nil {
		b := *override.Interaction.NoInteraction
		merged.Interaction.NoInteraction = &b
	}
	if override.Interaction.MaxAttempts != 0 {
		merged.Interaction.MaxAttempts = override.Interaction.MaxAttempts
	}

	if override.Output.Color != "" {
		merged.Output.Color = override.Output.Color
	}
	if override.Output.Format != "" {
		merged.Output.Format = override.Output.Format
	}
	if override.Logging.Level != "" {
		merged.Logging.Level = override.Logging.Level
	}

	for name, id := range override.Commands {
		merged.Commands[name] = id
	}

	return merged
}

// copyConfig creates a deep copy of a configuration.
func copyConfig(src *Config) *Config {
	if src == nil {
		return &Config{Commands: map[string]string{}}
	}

	dst := *src
	if src.Interaction.NoInteraction != nil {
		b := *src.Interaction.NoInteraction
		dst.Interaction.NoInteraction = &b
	}

	dst.Commands = make(map[string]string, len(src.Commands))
	for name, id := range src.Commands {
		dst.Commands[name] = id
	}

	return &dst
}
