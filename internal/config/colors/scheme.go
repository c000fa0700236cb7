package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	// Field border and submit button
	Accent string `yaml:"accent"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // placeholder, pending label, hints
	Normal string `yaml:"normal"`

	// Status line colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values from the named preset
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	fill(&c.Accent, preset.Accent)
	fill(&c.Title, preset.Title)
	fill(&c.Subtle, preset.Subtle)
	fill(&c.Normal, preset.Normal)
	fill(&c.InfoFg, preset.InfoFg)
	fill(&c.InfoBg, preset.InfoBg)
	fill(&c.ErrorFg, preset.ErrorFg)
	fill(&c.ErrorBg, preset.ErrorBg)
}

// MergeFrom overrides colors with the non-empty values of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	override(&c.Preset, other.Preset)
	override(&c.Accent, other.Accent)
	override(&c.Title, other.Title)
	override(&c.Subtle, other.Subtle)
	override(&c.Normal, other.Normal)
	override(&c.InfoFg, other.InfoFg)
	override(&c.InfoBg, other.InfoBg)
	override(&c.ErrorFg, other.ErrorFg)
	override(&c.ErrorBg, other.ErrorBg)
}

func fill(dst *string, value string) {
	if *dst == "" {
		*dst = value
	}
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
