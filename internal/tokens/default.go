package tokens

// DefaultContent is the glob the toolchain scans for class usage.
const DefaultContent = "./src/**/*.{astro,html,js,jsx,md,mdx,svelte,ts,tsx,vue}"

// Default returns the Ink Blue record. Every call builds new maps, so callers
// may mutate the result freely.
func Default() *Config {
	return &Config{
		Content: []string{DefaultContent},
		Theme: Theme{
			Extend: Extension{
				Colors: map[string]Palette{
					"primary":   primaryPalette(),
					"secondary": secondaryPalette(),
					"slate":     slatePalette(),
				},
				FontFamily: map[string][]string{
					"sans": {
						"Plus Jakarta Sans",
						"system-ui",
						"-apple-system",
						"BlinkMacSystemFont",
						"Segoe UI",
						"Roboto",
						"sans-serif",
					},
				},
				FontSize: map[string]FontSize{
					"xs":   {Size: "0.75rem", LineHeight: "1rem"},
					"sm":   {Size: "0.875rem", LineHeight: "1.25rem"},
					"base": {Size: "1rem", LineHeight: "1.5rem"},
					"lg":   {Size: "1.125rem", LineHeight: "1.75rem"},
					"xl":   {Size: "1.25rem", LineHeight: "1.75rem"},
					"2xl":  {Size: "1.5rem", LineHeight: "2rem"},
					"3xl":  {Size: "1.875rem", LineHeight: "2.25rem"},
					"4xl":  {Size: "2.25rem", LineHeight: "2.5rem"},
					"5xl":  {Size: "3rem", LineHeight: "1"},
					"6xl":  {Size: "3.75rem", LineHeight: "1.1"},
					"7xl":  {Size: "4.5rem", LineHeight: "1.1"},
					"8xl":  {Size: "6rem", LineHeight: "1"},
					"9xl":  {Size: "8rem", LineHeight: "1"},
				},
				BoxShadow: map[string]string{
					// Tinted with primary-600.
					"soft":    "0 4px 20px -2px rgba(72, 101, 129, 0.1)",
					"soft-lg": "0 10px 25px -5px rgba(72, 101, 129, 0.15), 0 8px 10px -6px rgba(72, 101, 129, 0.1)",
					"glow":    "0 0 20px rgba(72, 101, 129, 0.5)",
					"button":  "0 4px 14px 0 rgba(72, 101, 129, 0.3)",
					"colored": "0 10px 40px -10px rgba(72, 101, 129, 0.3)",
				},
				BackgroundImage: map[string]string{
					"gradient-primary": "linear-gradient(135deg, #486581 0%, #2d3748 100%)",
					"gradient-hero":    "linear-gradient(135deg, #f0f4f8 0%, #edf2f7 100%)",
					"gradient-dark":    "linear-gradient(135deg, #102a43 0%, #0d1117 100%)",
				},
				Animation: map[string]string{
					"fade-in-up": "fadeInUp 0.6s ease-out",
					"float":      "float 6s ease-in-out infinite",
					"pulse-slow": "pulse 4s cubic-bezier(0.4, 0, 0.6, 1) infinite",
				},
				Keyframes: map[string]Keyframes{
					"fadeInUp": {
						"0%":   {"opacity": "0", "transform": "translateY(30px)"},
						"100%": {"opacity": "1", "transform": "translateY(0)"},
					},
					"float": {
						"0%, 100%": {"transform": "translateY(0px)"},
						"50%":      {"transform": "translateY(-20px)"},
					},
				},
				Spacing: map[string]string{
					"128": "32rem",
					"144": "36rem",
				},
				// xl is card rounding (12px); 2xl 16px; 3xl 24px.
				BorderRadius: map[string]string{
					"xl":  "0.75rem",
					"2xl": "1rem",
					"3xl": "1.5rem",
				},
			},
		},
		Plugins: []string{},
	}
}

// Base returns the slice of the toolchain's built-in defaults the record is
// merged into: the stock keyframes and animations, font stacks, and the
// spacing and radius scales.
func Base() Extension {
	return Extension{
		FontFamily: map[string][]string{
			"sans":  {"ui-sans-serif", "system-ui", "sans-serif", "Apple Color Emoji", "Segoe UI Emoji", "Segoe UI Symbol", "Noto Color Emoji"},
			"serif": {"ui-serif", "Georgia", "Cambria", "Times New Roman", "Times", "serif"},
			"mono":  {"ui-monospace", "SFMono-Regular", "Menlo", "Monaco", "Consolas", "Liberation Mono", "Courier New", "monospace"},
		},
		Animation: map[string]string{
			"none":   "none",
			"spin":   "spin 1s linear infinite",
			"ping":   "ping 1s cubic-bezier(0, 0, 0.2, 1) infinite",
			"pulse":  "pulse 2s cubic-bezier(0.4, 0, 0.6, 1) infinite",
			"bounce": "bounce 1s infinite",
		},
		Keyframes: BaseKeyframes(),
		Spacing: map[string]string{
			"px": "1px", "0": "0px", "0.5": "0.125rem", "1": "0.25rem", "1.5": "0.375rem",
			"2": "0.5rem", "2.5": "0.625rem", "3": "0.75rem", "3.5": "0.875rem", "4": "1rem",
			"5": "1.25rem", "6": "1.5rem", "7": "1.75rem", "8": "2rem", "9": "2.25rem",
			"10": "2.5rem", "11": "2.75rem", "12": "3rem", "14": "3.5rem", "16": "4rem",
			"20": "5rem", "24": "6rem", "28": "7rem", "32": "8rem", "36": "9rem",
			"40": "10rem", "44": "11rem", "48": "12rem", "52": "13rem", "56": "14rem",
			"60": "15rem", "64": "16rem", "72": "18rem", "80": "20rem", "96": "24rem",
		},
		BorderRadius: map[string]string{
			"none":    "0px",
			"sm":      "0.125rem",
			"DEFAULT": "0.25rem",
			"md":      "0.375rem",
			"lg":      "0.5rem",
			"xl":      "0.75rem",
			"2xl":     "1rem",
			"3xl":     "1.5rem",
			"full":    "9999px",
		},
	}
}

// BaseKeyframes returns the keyframes the toolchain declares on its own.
// Animations may reference these without redeclaring them.
func BaseKeyframes() map[string]Keyframes {
	return map[string]Keyframes{
		"spin": {
			"to": {"transform": "rotate(360deg)"},
		},
		"ping": {
			"75%, 100%": {"transform": "scale(2)", "opacity": "0"},
		},
		"pulse": {
			"50%": {"opacity": ".5"},
		},
		"bounce": {
			"0%, 100%": {"transform": "translateY(-25%)", "animationTimingFunction": "cubic-bezier(0.8,0,1,1)"},
			"50%":      {"transform": "none", "animationTimingFunction": "cubic-bezier(0,0,0.2,1)"},
		},
	}
}
