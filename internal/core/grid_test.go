package core

import "testing"

func TestChunkGridLocateRoundTrip(t *testing.T) {
	for _, tc := range []struct{ size, chunk int }{{50, 10}, {23, 10}, {7, 3}, {10, 10}} {
		g := NewChunkGrid(tc.size, tc.chunk)
		for y := 0; y < tc.size; y++ {
			for x := 0; x < tc.size; x++ {
				c := g.Locate(x, y)
				if c.LocalX < 0 || c.LocalX >= tc.chunk || c.LocalY < 0 || c.LocalY >= tc.chunk {
					t.Fatalf("size %d: local index out of chunk for (%d,%d): %+v", tc.size, x, y, c)
				}
				if c.ChunkX >= g.ChunkCount() || c.ChunkY >= g.ChunkCount() {
					t.Fatalf("size %d: chunk index out of range for (%d,%d): %+v", tc.size, x, y, c)
				}
				gx, gy := c.Global()
				if gx != x || gy != y {
					t.Fatalf("size %d: round trip (%d,%d) -> %+v -> (%d,%d)", tc.size, x, y, c, gx, gy)
				}
			}
		}
	}
}

func TestChunkGridSetGetIndependentCells(t *testing.T) {
	g := NewChunkGrid(23, 10)
	for y := 0; y < 23; y++ {
		for x := 0; x < 23; x++ {
			g.Set(x, y, uint8((x*31+y*7)%251))
		}
	}
	for y := 0; y < 23; y++ {
		for x := 0; x < 23; x++ {
			if got, want := g.Get(x, y), uint8((x*31+y*7)%251); got != want {
				t.Fatalf("cell (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}

	flat := g.Flatten(nil)
	if len(flat) != 23*23 {
		t.Fatalf("flatten length %d, want %d", len(flat), 23*23)
	}
	if flat[5*23+9] != g.Get(9, 5) {
		t.Fatalf("flatten is not row-major: got %d want %d", flat[5*23+9], g.Get(9, 5))
	}

	g.Clear()
	if g.Get(22, 22) != 0 {
		t.Fatal("clear left a non-zero cell")
	}
}

func TestChunkGridOutOfBoundsPanics(t *testing.T) {
	g := NewChunkGrid(10, 5)
	for _, p := range []Point{{-1, 0}, {0, -1}, {10, 0}, {0, 10}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic accessing %+v", p)
				}
			}()
			g.Get(p.X, p.Y)
		}()
	}
}
