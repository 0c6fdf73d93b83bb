package output

// ansi16RGB approximates the standard palette in RGB space, used to
// down-sample a true-color Style to ANSI16 when the configured depth can't
// carry it directly.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
	{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
	{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
	{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
}

func distance(a, b [3]uint8) int {
	dr := int(a[0]) - int(b[0])
	dg := int(a[1]) - int(b[1])
	db := int(a[2]) - int(b[2])
	return dr*dr + dg*dg + db*db
}

func nearestANSI16(rgb [3]uint8) uint8 {
	best, bestDist := uint8(0), -1
	for i, c := range ansi16RGB {
		d := distance(rgb, c)
		if bestDist < 0 || d < bestDist {
			best, bestDist = uint8(i), d
		}
	}
	return best
}

// nearestIndexed256 maps an RGB triple onto the 6x6x6 color cube (indices
// 16-231) xterm's 256-color palette defines.
func nearestIndexed256(rgb [3]uint8) uint8 {
	toCube := func(v uint8) int {
		steps := [6]int{0, 95, 135, 175, 215, 255}
		best, bestDist := 0, -1
		for i, s := range steps {
			d := int(v) - s
			if d < 0 {
				d = -d
			}
			if bestDist < 0 || d < bestDist {
				best, bestDist = i, d
			}
		}
		return best
	}
	r, g, b := toCube(rgb[0]), toCube(rgb[1]), toCube(rgb[2])
	return uint8(16 + 36*r + 6*g + b)
}

func (c Color) rgb() ([3]uint8, bool) {
	switch c.kind {
	case colorRGB:
		return [3]uint8{c.r, c.g, c.b}, true
	case colorIndexed:
		return indexed256RGB(c.index), true
	case colorANSI:
		return ansi16RGB[c.index], true
	default:
		return [3]uint8{}, false
	}
}

// downsample projects c onto depth, never raising fidelity: a named ANSI-16
// color stays itself at any depth >= ANSI16; a true color degrades to the
// nearest representable value as depth drops.
func (c Color) downsample(depth ColorDepth) Color {
	if c.kind == colorDefault || depth == TrueColor {
		return c
	}
	switch c.kind {
	case colorANSI:
		return c // already the lowest common denominator
	case colorIndexed:
		if depth == Indexed256 {
			return c
		}
		return ANSIColor(nearestANSI16(indexed256RGB(c.index)))
	case colorRGB:
		rgb := [3]uint8{c.r, c.g, c.b}
		switch depth {
		case Indexed256:
			return Indexed256Color(nearestIndexed256(rgb))
		default:
			return ANSIColor(nearestANSI16(rgb))
		}
	}
	return c
}

// Downsample projects every color in s onto depth; Monochrome drops colors
// entirely (attributes like reverse/underline/bold still render), matching
// spec's "renderer down-samples styles to the configured depth".
func (s Style) Downsample(depth ColorDepth) Style {
	if depth == Monochrome {
		return Style{Foreground: ColorDefault, Background: ColorDefault, Attrs: s.Attrs}
	}
	return Style{
		Foreground: s.Foreground.downsample(depth),
		Background: s.Background.downsample(depth),
		Attrs:      s.Attrs,
	}
}

// indexed256RGB approximates a 256-palette index back to RGB for
// cross-depth down-sampling (e.g. Indexed256 -> ANSI16).
func indexed256RGB(index uint8) [3]uint8 {
	if index < 16 {
		return ansi16RGB[index]
	}
	if index >= 232 {
		level := uint8(8 + (index-232)*10)
		return [3]uint8{level, level, level}
	}
	i := index - 16
	steps := [6]uint8{0, 95, 135, 175, 215, 255}
	r := steps[(i/36)%6]
	g := steps[(i/6)%6]
	b := steps[i%6]
	return [3]uint8{r, g, b}
}
