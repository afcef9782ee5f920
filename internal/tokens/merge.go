package tokens

// Merge returns base with overlay applied: overlay entries win on key
// collision and base entries the overlay does not name are kept. Palettes
// merge per shade and keyframes per stop; every other entry is replaced
// whole. Content and plugins are replaced when the overlay sets them.
// Neither input is modified.
func Merge(base, overlay *Config) *Config {
	if base == nil {
		base = &Config{}
	}
	out := base.Clone()
	if overlay == nil {
		return out
	}

	if overlay.Content != nil {
		out.Content = append([]string(nil), overlay.Content...)
	}
	if overlay.Plugins != nil {
		out.Plugins = append([]string{}, overlay.Plugins...)
	}
	out.Theme.Extend = MergeExtension(out.Theme.Extend, overlay.Theme.Extend)
	return out
}

// MergeExtension merges two extension records with the same rules as Merge.
func MergeExtension(base, overlay Extension) Extension {
	out := base.Clone()

	for name, palette := range overlay.Colors {
		if out.Colors == nil {
			out.Colors = make(map[string]Palette)
		}
		merged := out.Colors[name].clone()
		if merged == nil {
			merged = make(Palette, len(palette))
		}
		for shade, hex := range palette {
			merged[shade] = hex
		}
		out.Colors[name] = merged
	}

	for name, kf := range overlay.Keyframes {
		if out.Keyframes == nil {
			out.Keyframes = make(map[string]Keyframes)
		}
		merged := out.Keyframes[name].clone()
		if merged == nil {
			merged = make(Keyframes, len(kf))
		}
		for stop, decls := range kf {
			merged[stop] = cloneStrings(decls)
		}
		out.Keyframes[name] = merged
	}

	for alias, stack := range overlay.FontFamily {
		if out.FontFamily == nil {
			out.FontFamily = make(map[string][]string)
		}
		out.FontFamily[alias] = append([]string(nil), stack...)
	}
	for key, size := range overlay.FontSize {
		if out.FontSize == nil {
			out.FontSize = make(map[string]FontSize)
		}
		out.FontSize[key] = size
	}

	out.BoxShadow = overlayStrings(out.BoxShadow, overlay.BoxShadow)
	out.BackgroundImage = overlayStrings(out.BackgroundImage, overlay.BackgroundImage)
	out.Animation = overlayStrings(out.Animation, overlay.Animation)
	out.Spacing = overlayStrings(out.Spacing, overlay.Spacing)
	out.BorderRadius = overlayStrings(out.BorderRadius, overlay.BorderRadius)
	return out
}

// Resolve returns what the toolchain works with after merging the record's
// extension into its base defaults.
func Resolve(cfg *Config) Extension {
	if cfg == nil {
		return Base()
	}
	return MergeExtension(Base(), cfg.Theme.Extend)
}

func overlayStrings(dst, src map[string]string) map[string]string {
	if len(src) == 0 {
		return dst
	}
	if dst == nil {
		dst = make(map[string]string, len(src))
	}
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// Clone returns a deep copy of the config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	out := &Config{
		Theme: Theme{Extend: c.Theme.Extend.Clone()},
	}
	if c.Content != nil {
		out.Content = append([]string(nil), c.Content...)
	}
	if c.Plugins != nil {
		out.Plugins = append([]string{}, c.Plugins...)
	}
	return out
}

// Clone returns a deep copy of the extension record.
func (e Extension) Clone() Extension {
	out := Extension{
		BoxShadow:       cloneStrings(e.BoxShadow),
		BackgroundImage: cloneStrings(e.BackgroundImage),
		Animation:       cloneStrings(e.Animation),
		Spacing:         cloneStrings(e.Spacing),
		BorderRadius:    cloneStrings(e.BorderRadius),
	}
	if e.Colors != nil {
		out.Colors = make(map[string]Palette, len(e.Colors))
		for name, palette := range e.Colors {
			out.Colors[name] = palette.clone()
		}
	}
	if e.FontFamily != nil {
		out.FontFamily = make(map[string][]string, len(e.FontFamily))
		for alias, stack := range e.FontFamily {
			out.FontFamily[alias] = append([]string(nil), stack...)
		}
	}
	if e.FontSize != nil {
		out.FontSize = make(map[string]FontSize, len(e.FontSize))
		for key, size := range e.FontSize {
			out.FontSize[key] = size
		}
	}
	if e.Keyframes != nil {
		out.Keyframes = make(map[string]Keyframes, len(e.Keyframes))
		for name, kf := range e.Keyframes {
			out.Keyframes[name] = kf.clone()
		}
	}
	return out
}

func (p Palette) clone() Palette {
	if p == nil {
		return nil
	}
	return Palette(cloneStrings(p))
}

func (k Keyframes) clone() Keyframes {
	if k == nil {
		return nil
	}
	out := make(Keyframes, len(k))
	for stop, decls := range k {
		out[stop] = cloneStrings(decls)
	}
	return out
}

func cloneStrings(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
