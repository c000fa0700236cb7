package colors

// Default returns the default color scheme (tomato red)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#E0533D",

		Title:  "#F2A541",
		Subtle: "#6C6C6C",
		Normal: "#D0D0D0",

		InfoFg:  "#A8E6A1",
		InfoBg:  "#1E3A1E",
		ErrorFg: "#FF5F5F",
		ErrorBg: "#5F0000",
	}
}
