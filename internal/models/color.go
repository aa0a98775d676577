package models

// ColorTag is a cosmetic player marker. It carries no scoring meaning.
type ColorTag string

const (
	ColorAmber   ColorTag = "amber"
	ColorEmerald ColorTag = "emerald"
	ColorBlue    ColorTag = "blue"
	ColorPurple  ColorTag = "purple"
)

var palette = [...]ColorTag{ColorAmber, ColorEmerald, ColorBlue, ColorPurple}

var colorValues = map[ColorTag]int{
	ColorAmber:   0xf59e0b,
	ColorEmerald: 0x10b981,
	ColorBlue:    0x3b82f6,
	ColorPurple:  0xa855f7,
}

// Palette returns the fixed color palette in assignment order
func Palette() []ColorTag {
	out := make([]ColorTag, len(palette))
	copy(out, palette[:])
	return out
}

// PaletteSize is the number of colors in the palette
func PaletteSize() int {
	return len(palette)
}

// ColorForIndex picks a palette color round-robin
func ColorForIndex(i int) ColorTag {
	if i < 0 {
		i = -i
	}
	return palette[i%len(palette)]
}

// RGB returns the 0xRRGGBB value renderers use for the tag
func (c ColorTag) RGB() int {
	return colorValues[c]
}
