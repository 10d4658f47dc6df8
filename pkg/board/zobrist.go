package board

import "math/rand"

// ZobristTable holds random bitstrings for incremental position hashing,
// used only by Game's history log — never by the decision path, which
// has no transposition table (spec Non-goals), nor by the persisted
// store, which keys records by match id.
type ZobristTable struct {
	table [Size][Size][4]uint64 // indexed by [row][col][Occupant]
}

// NewZobristTable builds a table from the given seed. Seed zero is the
// default, deterministic table.
func NewZobristTable(seed int64) *ZobristTable {
	rnd := rand.New(rand.NewSource(seed))

	t := &ZobristTable{}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			for o := 0; o < 4; o++ {
				t.table[r][c][o] = rnd.Uint64()
			}
		}
	}
	return t
}

// Hash computes the Zobrist hash of a position from scratch.
func (t *ZobristTable) Hash(p *Position) uint64 {
	var h uint64
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			o := p.cells[r][c]
			if o != Empty {
				h ^= t.table[r][c][o]
			}
		}
	}
	return h
}
