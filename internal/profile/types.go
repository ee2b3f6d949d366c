package profile

// Profile is the on-disk YAML form of a generation template. Optional
// fields fall back to user configuration or built-in defaults when the
// profile is converted to a scaffold.Template.
type Profile struct {
	Dir        string            `yaml:"dir,omitempty" json:"dir,omitempty"`
	Host       string            `yaml:"host,omitempty" json:"host,omitempty"`
	User       string            `yaml:"user" json:"user"`
	License    string            `yaml:"license,omitempty" json:"license,omitempty"`
	Years      string            `yaml:"years,omitempty" json:"years,omitempty"`
	Authors    []string          `yaml:"authors,omitempty" json:"authors,omitempty"`
	Julia      string            `yaml:"julia,omitempty" json:"julia,omitempty"`
	Precompile *bool             `yaml:"precompile,omitempty" json:"precompile,omitempty"`
	Requires   []string          `yaml:"requires,omitempty" json:"requires,omitempty"`
	GitConfig  map[string]string `yaml:"gitconfig,omitempty" json:"gitconfig,omitempty"`
	Plugins    []string          `yaml:"plugins,omitempty" json:"plugins,omitempty"`
}
