package tokens

// primaryPalette is Ink Blue, the brand color. 600 is the main accent.
func primaryPalette() Palette {
	return Palette{
		"50":  "#f0f4f8",
		"100": "#d9e2ec",
		"200": "#bcccdc",
		"300": "#9fb3c8",
		"400": "#829ab1",
		"500": "#627d98",
		"600": "#486581",
		"700": "#334e68",
		"800": "#243b53",
		"900": "#102a43",
		"950": "#061726",
	}
}
