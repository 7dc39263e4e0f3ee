package render

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"territory-ca/internal/sims/territory"
)

const (
	escHome       = "\x1b[H"
	escClear      = "\x1b[2J"
	escHideCursor = "\x1b[?25l"
	escShowCursor = "\x1b[?25h"
	escReset      = "\x1b[0m"

	emptyGlyph   = ". "
	unknownGlyph = "? "
	factionGlyph = "██"
)

// Mode selects how successive frames are laid out on the terminal.
type Mode string

const (
	// ModeSequential clears once and then redraws in place.
	ModeSequential Mode = "sequential"
	// ModeClear clears the screen before every frame.
	ModeClear Mode = "clear"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case ModeSequential:
		return ModeSequential, nil
	case ModeClear:
		return ModeClear, nil
	}
	return "", fmt.Errorf("unknown render mode %q (want %q or %q)", s, ModeSequential, ModeClear)
}

// Terminal draws snapshots as 24-bit ANSI coloured blocks, two columns per
// cell.
type Terminal struct {
	out    *bufio.Writer
	mode   Mode
	frames int
}

// NewTerminal returns a renderer writing to w.
func NewTerminal(w io.Writer, mode Mode) *Terminal {
	if mode == "" {
		mode = ModeSequential
	}
	return &Terminal{out: bufio.NewWriterSize(w, 64*1024), mode: mode}
}

// Begin hides the cursor for the duration of the run.
func (t *Terminal) Begin() error {
	t.out.WriteString(escHideCursor)
	return t.out.Flush()
}

// Render writes one frame.
func (t *Terminal) Render(s territory.Snapshot) error {
	switch {
	case t.mode == ModeClear:
		t.out.WriteString(escHome + escClear)
	case t.frames == 0:
		t.out.WriteString(escClear + escHome)
	default:
		t.out.WriteString(escHome)
	}
	t.frames++

	fmt.Fprintf(t.out, "Tick: %s  Year: %s  Factions: %d/%d\n",
		humanize.Comma(int64(s.Tick)), humanize.Comma(int64(s.Years)), s.Alive(), len(s.Factions))

	glyphs := glyphTable(s.Palette)
	for y := 0; y < s.Size; y++ {
		row := s.Cells[y*s.Size : (y+1)*s.Size]
		for _, v := range row {
			switch {
			case v == 0:
				t.out.WriteString(emptyGlyph)
			case int(v) < len(glyphs):
				t.out.WriteString(glyphs[v])
			default:
				t.out.WriteString(unknownGlyph)
			}
		}
		t.out.WriteByte('\n')
	}
	if t.mode == ModeSequential {
		fmt.Fprintf(t.out, "\x1b[%d;1H", s.Size+3)
	}
	return t.out.Flush()
}

// Summary prints the final standings, largest faction first.
func (t *Terminal) Summary(s territory.Snapshot, elapsed time.Duration) error {
	area := s.Size * s.Size
	standings := append([]territory.FactionCensus(nil), s.Factions...)
	sort.SliceStable(standings, func(i, j int) bool { return standings[i].Owned > standings[j].Owned })

	glyphs := glyphTable(s.Palette)
	for _, fc := range standings {
		glyph := unknownGlyph
		if int(fc.Faction) < len(glyphs) {
			glyph = glyphs[fc.Faction]
		}
		share := 0.0
		if area > 0 {
			share = 100 * float64(fc.Owned) / float64(area)
		}
		capital := "none"
		if fc.HasCapital {
			capital = fmt.Sprintf("(%d,%d)", fc.Capital.X, fc.Capital.Y)
		}
		fmt.Fprintf(t.out, "%s faction %d: %s tiles (%s%%), frontier %s, capital %s\n",
			glyph, fc.Faction, humanize.Comma(int64(fc.Owned)), humanize.FtoaWithDigits(share, 1),
			humanize.Comma(int64(fc.Frontier)), capital)
	}
	fmt.Fprintf(t.out, "TOTAL RUNTIME: %sms\n", humanize.Comma(elapsed.Milliseconds()))
	return t.out.Flush()
}

// Close restores the cursor.
func (t *Terminal) Close() error {
	t.out.WriteString(escShowCursor)
	return t.out.Flush()
}

func glyphTable(palette []color.RGBA) []string {
	glyphs := make([]string, len(palette))
	for i, c := range palette {
		if i == 0 {
			glyphs[i] = emptyGlyph
			continue
		}
		glyphs[i] = fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s%s", c.R, c.G, c.B, factionGlyph, escReset)
	}
	return glyphs
}
