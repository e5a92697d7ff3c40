package bitmap

import "unicode"

// blockHeight is the row count of every glyph in the block font.
const blockHeight = 5

// glyph is one block font character. Each Mask entry is a row; bit
// Width-1 is the leftmost column.
type glyph struct {
	Width int
	Mask  [blockHeight]uint32
}

func (g glyph) grid() PixelGrid {
	out := make(PixelGrid, blockHeight)
	for r, bits := range g.Mask {
		row := make([]bool, g.Width)
		for c := 0; c < g.Width; c++ {
			row[c] = bits>>(g.Width-1-c)&1 == 1
		}
		out[r] = row
	}
	return out
}

// blockGlyphs is a 5-row pixel font covering A-Z, 0-9 and common
// punctuation. Lowercase letters use the uppercase shapes.
var blockGlyphs = map[rune]glyph{
	'A': {5, [5]uint32{0b01110, 0b10001, 0b11111, 0b10001, 0b10001}},
	'B': {5, [5]uint32{0b11110, 0b10001, 0b11110, 0b10001, 0b11110}},
	'C': {5, [5]uint32{0b01111, 0b10000, 0b10000, 0b10000, 0b01111}},
	'D': {5, [5]uint32{0b11110, 0b10001, 0b10001, 0b10001, 0b11110}},
	'E': {5, [5]uint32{0b11111, 0b10000, 0b11110, 0b10000, 0b11111}},
	'F': {5, [5]uint32{0b11111, 0b10000, 0b11110, 0b10000, 0b10000}},
	'G': {5, [5]uint32{0b01111, 0b10000, 0b10011, 0b10001, 0b01111}},
	'H': {5, [5]uint32{0b10001, 0b10001, 0b11111, 0b10001, 0b10001}},
	'I': {5, [5]uint32{0b11111, 0b00100, 0b00100, 0b00100, 0b11111}},
	'J': {5, [5]uint32{0b00111, 0b00010, 0b00010, 0b10010, 0b01100}},
	'K': {5, [5]uint32{0b10010, 0b10100, 0b11000, 0b10100, 0b10010}},
	'L': {5, [5]uint32{0b10000, 0b10000, 0b10000, 0b10000, 0b11111}},
	'M': {5, [5]uint32{0b10001, 0b11011, 0b10101, 0b10001, 0b10001}},
	'N': {5, [5]uint32{0b10001, 0b11001, 0b10101, 0b10011, 0b10001}},
	'O': {5, [5]uint32{0b01110, 0b10001, 0b10001, 0b10001, 0b01110}},
	'P': {5, [5]uint32{0b11110, 0b10001, 0b11110, 0b10000, 0b10000}},
	'Q': {5, [5]uint32{0b01110, 0b10001, 0b10101, 0b10010, 0b01101}},
	'R': {5, [5]uint32{0b11110, 0b10001, 0b11110, 0b10010, 0b10001}},
	'S': {5, [5]uint32{0b01111, 0b10000, 0b01110, 0b00001, 0b11110}},
	'T': {5, [5]uint32{0b11111, 0b00100, 0b00100, 0b00100, 0b00100}},
	'U': {5, [5]uint32{0b10001, 0b10001, 0b10001, 0b10001, 0b01110}},
	'V': {5, [5]uint32{0b10001, 0b10001, 0b10001, 0b01010, 0b00100}},
	'W': {5, [5]uint32{0b10001, 0b10001, 0b10101, 0b11011, 0b10001}},
	'X': {5, [5]uint32{0b10001, 0b01010, 0b00100, 0b01010, 0b10001}},
	'Y': {5, [5]uint32{0b10001, 0b01010, 0b00100, 0b00100, 0b00100}},
	'Z': {5, [5]uint32{0b11111, 0b00010, 0b00100, 0b01000, 0b11111}},

	'0': {5, [5]uint32{0b01110, 0b10011, 0b10101, 0b11001, 0b01110}},
	'1': {5, [5]uint32{0b00100, 0b01100, 0b00100, 0b00100, 0b01110}},
	'2': {5, [5]uint32{0b11110, 0b00001, 0b01110, 0b10000, 0b11111}},
	'3': {5, [5]uint32{0b11110, 0b00001, 0b00110, 0b00001, 0b11110}},
	'4': {5, [5]uint32{0b10010, 0b10010, 0b11111, 0b00010, 0b00010}},
	'5': {5, [5]uint32{0b11111, 0b10000, 0b11110, 0b00001, 0b11110}},
	'6': {5, [5]uint32{0b01110, 0b10000, 0b11110, 0b10001, 0b01110}},
	'7': {5, [5]uint32{0b11111, 0b00001, 0b00010, 0b00100, 0b00100}},
	'8': {5, [5]uint32{0b01110, 0b10001, 0b01110, 0b10001, 0b01110}},
	'9': {5, [5]uint32{0b01110, 0b10001, 0b01111, 0b00001, 0b01110}},

	' ':  {3, [5]uint32{0, 0, 0, 0, 0}},
	'!':  {1, [5]uint32{1, 1, 1, 0, 1}},
	'?':  {5, [5]uint32{0b01110, 0b10001, 0b00110, 0b00000, 0b00100}},
	'.':  {1, [5]uint32{0, 0, 0, 0, 1}},
	',':  {2, [5]uint32{0, 0, 0, 0b01, 0b10}},
	':':  {1, [5]uint32{0, 1, 0, 1, 0}},
	'\'': {1, [5]uint32{1, 1, 0, 0, 0}},
	'-':  {3, [5]uint32{0, 0, 0b111, 0, 0}},
	'+':  {3, [5]uint32{0, 0b010, 0b111, 0b010, 0}},
	'=':  {3, [5]uint32{0, 0b111, 0, 0b111, 0}},
	'*':  {3, [5]uint32{0, 0b101, 0b010, 0b101, 0}},
	'/':  {5, [5]uint32{0b00001, 0b00010, 0b00100, 0b01000, 0b10000}},
	'#':  {5, [5]uint32{0b01010, 0b11111, 0b01010, 0b11111, 0b01010}},
	'_':  {5, [5]uint32{0, 0, 0, 0, 0b11111}},
	'(':  {2, [5]uint32{0b01, 0b10, 0b10, 0b10, 0b01}},
	')':  {2, [5]uint32{0b10, 0b01, 0b01, 0b01, 0b10}},
	'<':  {3, [5]uint32{0b001, 0b010, 0b100, 0b010, 0b001}},
	'>':  {3, [5]uint32{0b100, 0b010, 0b001, 0b010, 0b100}},
	'♥':  {5, [5]uint32{0b01010, 0b11111, 0b11111, 0b01110, 0b00100}},
}

// blockFont is the built-in 5x5 font.
type blockFont struct{}

func (blockFont) Name() string { return "block" }

func (blockFont) Rasterize(text string) (PixelGrid, error) {
	parts := make([]PixelGrid, 0, len(text))
	for _, r := range text {
		g, ok := blockGlyphs[unicode.ToUpper(r)]
		if !ok {
			g = blockGlyphs['?']
		}
		parts = append(parts, g.grid())
	}
	return hconcat(parts, blockHeight, 1), nil
}
