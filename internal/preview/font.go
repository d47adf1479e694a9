package preview

import (
	"image"
	"image/color"
)

// Simple 3x5 pixel font covering the digits; enough for segment
// numbers and scores without pulling in a font library.
var glyphs = map[rune][5]string{
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
}

const (
	glyphWidth   = 3
	glyphHeight  = 5
	glyphAdvance = 4
)

// textSize returns the pixel extent of text at the given scale.
func textSize(text string, scale int) (w, h int) {
	if scale < 1 {
		scale = 1
	}
	n := len([]rune(text))
	if n == 0 {
		return 0, 0
	}
	return (n*glyphAdvance - 1) * scale, glyphHeight * scale
}

// drawText draws text with its top-left corner at (x, y). Unknown
// runes advance the cursor without drawing.
func drawText(img *image.RGBA, x, y int, text string, scale int, c color.RGBA) {
	if scale < 1 {
		scale = 1
	}
	bounds := img.Bounds()

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if ok {
			for row, line := range glyph {
				for col := 0; col < glyphWidth; col++ {
					if line[col] != '1' {
						continue
					}
					for dy := 0; dy < scale; dy++ {
						for dx := 0; dx < scale; dx++ {
							setInBounds(img, bounds, cx+col*scale+dx, y+row*scale+dy, c)
						}
					}
				}
			}
		}
		cx += glyphAdvance * scale
	}
}
