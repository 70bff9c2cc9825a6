// Package renderer prints run results and draws walked paths over the board.
package renderer

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/gookit/color"

	"cubewalk/pkg/engine/world"
	"cubewalk/pkg/game/walker"
	"cubewalk/pkg/game/wrap"
)

// Icon constants
const (
	IconWalker = "@"
	IconVoid   = " "
)

var (
	ColorOpen     color.Style
	ColorWall     color.Style
	ColorPath     color.Style
	ColorWalker   color.Style
	ColorLabel    color.Style
	ColorPassword color.Style
	ColorDenied   color.Style
	ColorSubtle   color.Style

	regexpStringFunctions = regexp.MustCompile(`([A-Z_]*){([^{}]+)}`)
)

// InitColors initializes the color styles and turns ANSI output on or off.
func InitColors(enabled bool) {
	color.Enable = enabled

	ColorOpen = color.Style{color.FgGray}
	ColorWall = color.Style{color.FgBlue, color.OpBold}
	ColorPath = color.Style{color.FgMagenta}
	ColorWalker = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	ColorLabel = color.Style{color.FgCyan}
	ColorPassword = color.Style{color.FgGreen, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
}

// FormatString formats a string and expands markup such as GT{KEY},
// LABEL{text} and VALUE{text}.
func FormatString(msg string, a ...any) string {
	ret := fmt.Sprintf(msg, a...)

	for _, match := range regexpStringFunctions.FindAllStringSubmatch(ret, -1) {
		function, operand := match[1], match[2]

		var val string
		switch function {
		case "GT":
			val = T(operand)
		case "LABEL":
			val = ColorLabel.Sprint(T(operand))
		case "VALUE":
			val = ColorPassword.Sprint(operand)
		case "ERROR":
			val = ColorDenied.Sprint(operand)
		default:
			val = operand
		}

		ret = strings.Replace(ret, match[0], val, 1)
	}

	return ret
}

// PrintString writes a formatted markup string to w
func PrintString(w io.Writer, msg string, a ...any) {
	fmt.Fprint(w, FormatString(msg, a...))
}

// resultKey returns the message key naming a strategy's result line
func resultKey(s wrap.Strategy) string {
	if s == wrap.Cube {
		return "RESULT_CUBE"
	}
	return "RESULT_FLAT"
}

// PrintResult writes one result line: label, password and final state.
func PrintResult(w io.Writer, s wrap.Strategy, pos world.Point, facing world.Direction, password int) {
	state := fmt.Sprintf(T("FINAL_STATE"), pos.Y+1, pos.X+1, facing.String())
	PrintString(w, "LABEL{%s}: VALUE{%d} %s\n", resultKey(s), password, ColorSubtle.Sprint("("+state+")"))
}

// RenderCell returns the string representation of a board cell
func RenderCell(grid *world.Grid, track walker.Track, current world.Point, p world.Point) string {
	if p == current {
		return ColorWalker.Sprint(IconWalker)
	}
	if facing, ok := track[p]; ok {
		return ColorPath.Sprint(string(facing.Glyph()))
	}
	switch grid.FieldAt(p) {
	case world.Open:
		return ColorOpen.Sprint(".")
	case world.Wall:
		return ColorWall.Sprint("#")
	default:
		return IconVoid
	}
}

// RenderTrace draws the board with the walked path. Rows are cropped to
// maxCols columns when maxCols is positive; it reports whether any row was
// cropped.
func RenderTrace(w io.Writer, grid *world.Grid, track walker.Track, current world.Point, maxCols int) bool {
	cols := grid.Cols()
	cropped := false
	if maxCols > 0 && cols > maxCols {
		cols = maxCols
		cropped = true
	}
	for y := 0; y < grid.Rows(); y++ {
		var b strings.Builder
		width := grid.RowLen(y)
		if width > cols {
			width = cols
		}
		for x := 0; x < width; x++ {
			b.WriteString(RenderCell(grid, track, current, world.Pt(x, y)))
		}
		fmt.Fprintln(w, b.String())
	}
	return cropped
}
