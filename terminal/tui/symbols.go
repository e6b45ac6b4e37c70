package tui

// Block element glyphs, lower eighths of a cell
const (
	BlockEmpty        = " "
	BlockOneEighth    = "▁"
	BlockOneQuarter   = "▂"
	BlockThreeEighths = "▃"
	BlockHalf         = "▄"
	BlockFiveEighths  = "▅"
	BlockThreeQuarter = "▆"
	BlockSevenEighths = "▇"
	BlockFull         = "█"
)

// blockEighths is indexed by the number of filled eighths
var blockEighths = [...]string{
	BlockEmpty,
	BlockOneEighth,
	BlockOneQuarter,
	BlockThreeEighths,
	BlockHalf,
	BlockFiveEighths,
	BlockThreeQuarter,
	BlockSevenEighths,
	BlockFull,
}

// BlockGlyph returns the glyph filling eighths/8 of a cell from the bottom
// Indices below 0 clamp to empty, above 8 to full
func BlockGlyph(eighths int) string {
	if eighths <= 0 {
		return BlockEmpty
	}
	if eighths >= len(blockEighths) {
		return BlockFull
	}
	return blockEighths[eighths]
}

// LineType specifies box drawing character style
type LineType uint8

const (
	LineSingle  LineType = iota // ┌─┐│└┘
	LineDouble                  // ╔═╗║╚╝
	LineRounded                 // ╭─╮│╰╯
	LineHeavy                   // ┏━┓┃┗┛
	LineNone                    // spaces (invisible border with padding)
)

// boxChars contains box drawing character sets indexed by LineType
var boxChars = [...][6]string{
	LineSingle:  {"┌", "─", "┐", "│", "└", "┘"},
	LineDouble:  {"╔", "═", "╗", "║", "╚", "╝"},
	LineRounded: {"╭", "─", "╮", "│", "╰", "╯"},
	LineHeavy:   {"┏", "━", "┓", "┃", "┗", "┛"},
	LineNone:    {" ", " ", " ", " ", " ", " "},
}

const (
	boxTL = 0 // top-left
	boxH  = 1 // horizontal
	boxTR = 2 // top-right
	boxV  = 3 // vertical
	boxBL = 4 // bottom-left
	boxBR = 5 // bottom-right
)
