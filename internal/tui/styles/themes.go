package styles

import "image/color"

// itemGradients mirrors the blue/red/green item themes plus a neutral default.
func itemGradients() map[string][2]color.Color {
	return map[string][2]color.Color{
		"":      {ParseHex("#cccccc"), ParseHex("#ffffff")},
		"blue":  {ParseHex("#0000ff"), ParseHex("#00ffff")},
		"red":   {ParseHex("#ff0000"), ParseHex("#ff00ff")},
		"green": {ParseHex("#00ff00"), ParseHex("#ffff00")},
	}
}

// NewLocoTheme creates the default theme with a fire gradient
func NewLocoTheme() *Theme {
	return &Theme{
		Name:   "loco",
		IsDark: true,

		// Brand colors - fire gradient
		Primary:   ParseHex("#C0392B"), // Fire red
		Secondary: ParseHex("#F4D03F"), // Bright yellow
		Tertiary:  ParseHex("#E67E22"), // Orange
		Accent:    ParseHex("#F39C12"), // Golden orange

		// Background colors - slate gray theme
		BgBase:   ParseHex("#2C3E50"),
		BgSubtle: ParseHex("#3D566E"),

		// Foreground colors
		FgBase:     ParseHex("#f5f6fa"), // Lynx white
		FgMuted:    ParseHex("#a0a0a0"),
		FgSubtle:   ParseHex("#6F6F70"),
		FgInverted: ParseHex("#1e1e1e"), // For light backgrounds

		// Border colors
		Border:      ParseHex("#5D6D7E"),
		BorderFocus: ParseHex("#F39C12"),

		ItemGradients: itemGradients(),
	}
}

// NewDarkTheme creates a professional dark theme
func NewDarkTheme() *Theme {
	return &Theme{
		Name:   "dark",
		IsDark: true,

		// Brand colors
		Primary:   ParseHex("#60a5fa"), // Sky blue
		Secondary: ParseHex("#a78bfa"), // Violet
		Tertiary:  ParseHex("#f472b6"), // Pink
		Accent:    ParseHex("#34d399"), // Emerald

		// Background colors
		BgBase:   ParseHex("#0f172a"), // Slate 900
		BgSubtle: ParseHex("#334155"), // Slate 700

		// Foreground colors
		FgBase:     ParseHex("#f8fafc"), // Slate 50
		FgMuted:    ParseHex("#cbd5e1"), // Slate 300
		FgSubtle:   ParseHex("#94a3b8"), // Slate 400
		FgInverted: ParseHex("#0f172a"), // Slate 900

		// Border colors
		Border:      ParseHex("#334155"), // Slate 700
		BorderFocus: ParseHex("#60a5fa"), // Sky 400

		ItemGradients: itemGradients(),
	}
}
