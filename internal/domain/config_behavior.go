package domain

// CatalogSourceOrDefault returns the configured catalog source, falling back
// to the embedded catalog when unset.
func (c *Config) CatalogSourceOrDefault() string {
	if c.Catalog.Source == "" {
		return CatalogSourceEmbedded
	}
	return c.Catalog.Source
}

// PrimaryCommandOrDefault returns the configured primary command name.
func (c *Config) PrimaryCommandOrDefault() string {
	if c.PrimaryCommand == "" {
		return DefaultPrimaryCommand
	}
	return c.PrimaryCommand
}

// VersionOrDefault returns the configured version string.
func (c *Config) VersionOrDefault() string {
	if c.Version == "" {
		return DefaultVersion
	}
	return c.Version
}

// PromptOrDefault returns the configured prompt label.
func (c *Config) PromptOrDefault() string {
	if c.Prompt == "" {
		return "-(" + c.PrimaryCommandOrDefault() + ")"
	}
	return c.Prompt
}
