package render

import (
	"bytes"
	"image/color"
	"strings"
	"testing"
	"time"

	"territory-ca/internal/core"
	"territory-ca/internal/sims/territory"
)

func testSnapshot(tick int) territory.Snapshot {
	return territory.Snapshot{
		Size:  2,
		Tick:  tick,
		Years: tick / 12,
		Cells: []uint8{0, 1, 2, 9},
		Factions: []territory.FactionCensus{
			{Faction: 1, Owned: 1, Frontier: 1, Capital: core.Point{X: 1, Y: 0}, HasCapital: true},
			{Faction: 2, Owned: 1, Frontier: 1},
		},
		Palette: []color.RGBA{{A: 255}, {R: 255, A: 255}, {G: 128, B: 7, A: 255}},
	}
}

func TestTerminalRenderFrame(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, ModeSequential)
	if err := term.Render(testSnapshot(5000)); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"Tick: 5,000",
		"Year: 416",
		"Factions: 2/2",
		". \x1b[38;2;255;0;0m██\x1b[0m\n",
		"\x1b[38;2;0;128;7m██\x1b[0m? \n",
		"\x1b[5;1H",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("frame missing %q:\n%q", want, got)
		}
	}
	if !strings.HasPrefix(got, escClear+escHome) {
		t.Fatalf("first sequential frame should clear the screen: %q", got[:8])
	}

	out.Reset()
	if err := term.Render(testSnapshot(10000)); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out.String(), escClear) {
		t.Fatal("later sequential frames must redraw in place")
	}
}

func TestTerminalClearMode(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, ModeClear)
	for tick := 1; tick <= 3; tick++ {
		if err := term.Render(testSnapshot(tick)); err != nil {
			t.Fatal(err)
		}
	}
	if n := strings.Count(out.String(), escClear); n != 3 {
		t.Fatalf("expected a clear per frame, got %d", n)
	}
}

func TestTerminalSummaryAndCursor(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(&out, ModeSequential)
	if err := term.Begin(); err != nil {
		t.Fatal(err)
	}
	if err := term.Summary(testSnapshot(12), 1500*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	if err := term.Close(); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{escHideCursor, "faction 1: 1 tiles (25%)", "capital (1,0)", "capital none", "TOTAL RUNTIME: 1,500ms", escShowCursor} {
		if !strings.Contains(got, want) {
			t.Fatalf("summary missing %q:\n%q", want, got)
		}
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("Clear"); err != nil || m != ModeClear {
		t.Fatalf("got %q, %v", m, err)
	}
	if _, err := ParseMode("spiral"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 10, G: 20, B: 30, A: 255}}
	cells := []uint8{0, 1, 7}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, palette)
	want := []byte{1, 2, 3, 4, 10, 20, 30, 255, 10, 20, 30, 255}
	if !bytes.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}
	fillPaletteRGBA(buf, cells, nil)
	if !bytes.Equal(buf, make([]byte, len(buf))) {
		t.Fatalf("empty palette should clear buffer, got %v", buf)
	}
}
