package config

// KeyMappings defines the configurable key bindings of the form screen.
// Submitting is always enter.
type KeyMappings struct {
	Quit      string `yaml:"quit"`
	ForceQuit string `yaml:"force_quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		Quit:      "esc",
		ForceQuit: "ctrl+c",
	}
}

func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
	if k.ForceQuit == "" {
		k.ForceQuit = defaults.ForceQuit
	}
}
