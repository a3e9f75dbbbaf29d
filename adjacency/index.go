package adjacency

import (
	"gonum.org/v1/gonum/mat"
)

// State is the external 1-based identifier of a discrete spatial region.
// It carries no attributes beyond identity.
type State int

// wordBits is the width of one bitset word.
const wordBits = 64

// Index is an immutable, symmetric membership index over state pairs.
// A pair (a, b) is present iff a direct transition between a and b is legal;
// presence is always mirrored, so IsAdjacent(a,b) == IsAdjacent(b,a).
// The zero value is an empty index over zero states.
type Index struct {
	n     int      // number of states; valid ids are 1..n
	bits  []uint64 // n*n bit matrix, row-major over 0-based pairs
	pairs int      // number of ordered pairs set (mirrored pairs count twice)
}

// New constructs an Index from a square 0/1 matrix.
// Stage 1 (Validate): every row length must equal the row count.
// Stage 2 (Prepare): allocate the n×n bitset.
// Stage 3 (Execute): for each cell equal to 1, set both (i+1,j+1) and
// (j+1,i+1); any other value is ignored.
// Returns ErrNonSquare for ragged or non-square input.
// Complexity: O(n²) time, O(n²) bits memory.
func New(matrix [][]int) (*Index, error) {
	n := len(matrix)
	for _, row := range matrix {
		if len(row) != n {
			return nil, ErrNonSquare
		}
	}

	idx := newIndex(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if matrix[i][j] == 1 {
				idx.set(i, j)
				idx.set(j, i)
			}
		}
	}

	return idx, nil
}

// FromDense constructs an Index from a gonum matrix, typically the result of
// CSV ingestion. A cell is adjacent iff its value is exactly 1; everything
// else (0, NaN, stray values) is non-adjacent.
// Returns ErrNilMatrix for a nil matrix and ErrNonSquare when rows != cols.
// Complexity: O(n²).
func FromDense(m mat.Matrix) (*Index, error) {
	if m == nil {
		return nil, ErrNilMatrix
	}
	r, c := m.Dims()
	if r != c {
		return nil, ErrNonSquare
	}

	idx := newIndex(r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if m.At(i, j) == 1 {
				idx.set(i, j)
				idx.set(j, i)
			}
		}
	}

	return idx, nil
}

// newIndex allocates an empty index over n states.
func newIndex(n int) *Index {
	words := (n*n + wordBits - 1) / wordBits
	return &Index{n: n, bits: make([]uint64, words)}
}

// set marks the 0-based ordered pair (i, j) as adjacent. Idempotent.
func (x *Index) set(i, j int) {
	pos := i*x.n + j
	word, bit := pos/wordBits, uint(pos%wordBits)
	if x.bits[word]&(1<<bit) == 0 {
		x.bits[word] |= 1 << bit
		x.pairs++
	}
}

// IsAdjacent reports whether a direct transition between states a and b is
// legal. Out-of-range ids (including 0 and negatives) report false rather
// than failing; the index is a pure membership test.
// Symmetry holds for all inputs: IsAdjacent(a,b) == IsAdjacent(b,a).
// Complexity: O(1).
func (x *Index) IsAdjacent(a, b State) bool {
	if a < 1 || b < 1 || int(a) > x.n || int(b) > x.n {
		return false
	}
	pos := (int(a)-1)*x.n + (int(b) - 1)
	return x.bits[pos/wordBits]&(1<<uint(pos%wordBits)) != 0
}

// States returns the number of states covered by the index; valid external
// ids are 1..States().
func (x *Index) States() int { return x.n }

// PairCount returns the number of ordered pairs present in the index.
// Mirrored pairs count twice; a self-loop (a,a) counts once.
func (x *Index) PairCount() int { return x.pairs }
