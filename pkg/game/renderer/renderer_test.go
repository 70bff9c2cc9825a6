package renderer

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"cubewalk/pkg/engine/world"
	"cubewalk/pkg/game/walker"
	"cubewalk/pkg/game/wrap"
)

func init() {
	InitColors(false)
}

func TestTranslate(t *testing.T) {
	if got := T("RESULT_CUBE"); got != "Cube wrap password" {
		t.Errorf("T(RESULT_CUBE) = %q", got)
	}
	if got := fmt.Sprintf(T("TRACE_HEADER"), "flat"); got != "Walked path (flat wrap)" {
		t.Errorf("T(TRACE_HEADER) = %q", got)
	}
	if got := T("NO_SUCH_KEY"); got != "NO_SUCH_KEY" {
		t.Errorf("T(NO_SUCH_KEY) = %q, want key back", got)
	}
}

func TestFormatStringMarkup(t *testing.T) {
	got := FormatString("LABEL{RESULT_FLAT}: VALUE{%d}", 6032)
	if got != "Flat wrap password: 6032" {
		t.Errorf("FormatString = %q", got)
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	PrintResult(&buf, wrap.Cube, world.Pt(6, 4), world.Up, 5031)
	want := "Cube wrap password: 5031 (ended at row 5, column 7 facing Up)\n"
	if buf.String() != want {
		t.Errorf("PrintResult = %q, want %q", buf.String(), want)
	}
}

func TestRenderTrace(t *testing.T) {
	grid, err := world.ParseGrid([]string{"  ...#", "  ...."})
	if err != nil {
		t.Fatal(err)
	}
	track := walker.Track{
		world.Pt(2, 0): world.Right,
		world.Pt(3, 0): world.Down,
		world.Pt(3, 1): world.Down,
	}
	var buf bytes.Buffer
	if cropped := RenderTrace(&buf, grid, track, world.Pt(3, 1), 0); cropped {
		t.Error("RenderTrace cropped = true, want false")
	}
	want := "  >v.#\n  .@..\n"
	if buf.String() != want {
		t.Errorf("RenderTrace =\n%s\nwant\n%s", buf.String(), want)
	}

	buf.Reset()
	if cropped := RenderTrace(&buf, grid, track, world.Pt(3, 1), 4); !cropped {
		t.Error("RenderTrace cropped = false, want true")
	}
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		if len(line) != 4 {
			t.Errorf("cropped line %q has length %d, want 4", line, len(line))
		}
	}
}
