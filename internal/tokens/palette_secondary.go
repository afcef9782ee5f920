package tokens

// secondaryPalette is Deep Blue. The darkest shade is pure black.
func secondaryPalette() Palette {
	return Palette{
		"50":  "#edf2f7",
		"100": "#e2e8f0",
		"200": "#cbd5e0",
		"300": "#a0aec0",
		"400": "#718096",
		"500": "#4a5568",
		"600": "#2d3748",
		"700": "#1a202c",
		"800": "#171923",
		"900": "#0d1117",
		"950": "#000000",
	}
}
