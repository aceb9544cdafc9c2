package box

import "fmt"

type FontWeight string

const (
	FontWeightNormal FontWeight = ""
	FontWeightBold   FontWeight = "bold"
)

type LineStyle string

const (
	LineSolid  LineStyle = "solid"
	LineDouble LineStyle = "double"
)

type Color string

const (
	ColorBlue Color = "blue"
	ColorRed  Color = "red"
)

// Border describes a box outline.
type Border struct {
	Width int
	Line  LineStyle
	Color Color
}

// String renders the border the way a stylesheet would, e.g. "1px solid blue".
func (b Border) String() string {
	return fmt.Sprintf("%dpx %s %s", b.Width, b.Line, b.Color)
}

// Style holds the presentation keys shared by labels and containers.
// A nil Border means no outline.
type Style struct {
	FontWeight FontWeight
	Border     *Border
}

// Bordered returns a style with a solid one pixel border of the given color.
func Bordered(c Color) Style {
	return Style{Border: &Border{Width: 1, Line: LineSolid, Color: c}}
}

// Bold returns a bold style without a border.
func Bold() Style {
	return Style{FontWeight: FontWeightBold}
}
