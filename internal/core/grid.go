package core

import "fmt"

// ChunkCoord addresses a single cell as a (chunk, local) pair.
type ChunkCoord struct {
	ChunkX, ChunkY int
	LocalX, LocalY int
	chunkSize      int
}

// Global converts the chunk/local pair back to board coordinates.
func (c ChunkCoord) Global() (int, int) {
	return c.ChunkX*c.chunkSize + c.LocalX, c.ChunkY*c.chunkSize + c.LocalY
}

// ChunkGrid stores a square board of byte-sized cells partitioned into square
// chunks. Chunking only affects storage layout; all access is by global
// coordinates.
type ChunkGrid struct {
	size      int
	chunkSize int
	chunks    int
	data      [][]uint8
}

// NewChunkGrid allocates a size*size grid split into chunkSize*chunkSize chunks.
// The last row and column of chunks may extend past the board edge when size is
// not a multiple of chunkSize; those cells are never addressable.
func NewChunkGrid(size, chunkSize int) *ChunkGrid {
	if size <= 0 {
		size = 1
	}
	if chunkSize <= 0 {
		chunkSize = size
	}
	chunks := (size + chunkSize - 1) / chunkSize
	data := make([][]uint8, chunks*chunks)
	for i := range data {
		data[i] = make([]uint8, chunkSize*chunkSize)
	}
	return &ChunkGrid{size: size, chunkSize: chunkSize, chunks: chunks, data: data}
}

// Size returns the board edge length in cells.
func (g *ChunkGrid) Size() int { return g.size }

// ChunkCount returns the number of chunks along one board edge.
func (g *ChunkGrid) ChunkCount() int { return g.chunks }

// InBounds reports whether (x, y) lies on the board.
func (g *ChunkGrid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Locate translates global coordinates into their chunk/local pair. It does
// not validate bounds.
func (g *ChunkGrid) Locate(x, y int) ChunkCoord {
	return ChunkCoord{
		ChunkX:    x / g.chunkSize,
		ChunkY:    y / g.chunkSize,
		LocalX:    x % g.chunkSize,
		LocalY:    y % g.chunkSize,
		chunkSize: g.chunkSize,
	}
}

// Get returns the value stored at (x, y). It panics when the coordinates are
// off the board.
func (g *ChunkGrid) Get(x, y int) uint8 {
	g.mustInBounds(x, y)
	c := g.Locate(x, y)
	return g.data[c.ChunkY*g.chunks+c.ChunkX][c.LocalY*g.chunkSize+c.LocalX]
}

// Set stores v at (x, y). It panics when the coordinates are off the board.
func (g *ChunkGrid) Set(x, y int, v uint8) {
	g.mustInBounds(x, y)
	c := g.Locate(x, y)
	g.data[c.ChunkY*g.chunks+c.ChunkX][c.LocalY*g.chunkSize+c.LocalX] = v
}

// Clear resets every cell to zero.
func (g *ChunkGrid) Clear() {
	for _, chunk := range g.data {
		for i := range chunk {
			chunk[i] = 0
		}
	}
}

// Flatten copies the board into dst in row-major order (index y*size+x),
// growing dst when it is too small, and returns the filled slice.
func (g *ChunkGrid) Flatten(dst []uint8) []uint8 {
	total := g.size * g.size
	if cap(dst) < total {
		dst = make([]uint8, total)
	}
	dst = dst[:total]
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			c := g.Locate(x, y)
			dst[y*g.size+x] = g.data[c.ChunkY*g.chunks+c.ChunkX][c.LocalY*g.chunkSize+c.LocalX]
		}
	}
	return dst
}

func (g *ChunkGrid) mustInBounds(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: OutOfBounds access at (%d,%d) on %dx%d grid", x, y, g.size, g.size))
	}
}
