package adjacency

import "errors"

// Sentinel errors for adjacency index construction.
var (
	// ErrNonSquare indicates the input matrix is ragged or its row count
	// differs from its column count.
	ErrNonSquare = errors.New("adjacency: matrix must be square")

	// ErrNilMatrix indicates a nil gonum matrix was passed to FromDense.
	ErrNilMatrix = errors.New("adjacency: matrix is nil")
)
