package sliceutils

import "errors"

var ErrInvalidChunkSize = errors.New("chunk size must be greater than 0")

// Chunks collects seq into chunks of at most maxSize elements.
// The last chunk may be shorter than maxSize. Chunks share the
// backing array of seq.
func Chunks[T any](seq []T, maxSize int) ([][]T, error) {
	if maxSize < 1 {
		return nil, ErrInvalidChunkSize
	}

	result := make([][]T, 0, (len(seq)+maxSize-1)/maxSize)
	for maxSize < len(seq) {
		result = append(result, seq[:maxSize:maxSize])
		seq = seq[maxSize:]
	}
	if len(seq) > 0 {
		result = append(result, seq)
	}

	return result, nil
}
