package oscommand

import (
	"errors"
	"fmt"
	"io"
	"slices"
)

// drain reads r in chunkSize pieces until io.EOF and returns everything read.
//
// The accumulation buffer always holds the bytes copied so far followed by a
// single zero terminator. Each chunk grows it by exactly n+1 bytes of logical
// length before the copy, so the buffer is valid after every step.
//
// On any error the partial buffer is dropped and nil is returned.
func drain(r io.Reader, chunkSize, limit int) ([]byte, error) {
	chunk := make([]byte, chunkSize)
	var acc []byte
	total := 0

	for {
		n, err := r.Read(chunk)
		if n > 0 {
			grown, growErr := grow(acc, total, n, limit)
			if growErr != nil {
				return nil, growErr
			}
			acc = grown
			copy(acc[total:], chunk[:n])
			total += n
			acc[total] = 0
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrRead, err)
		}
	}

	if acc == nil {
		return []byte{}, nil
	}
	return acc[:total], nil
}

// grow returns acc resized to hold total+n bytes plus the terminator.
// Capacity is managed by slices.Grow, much like realloc may extend in place.
func grow(acc []byte, total, n, limit int) ([]byte, error) {
	if limit > 0 && total+n > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrOutputTooLarge, limit)
	}
	if acc == nil {
		return make([]byte, n+1), nil
	}
	return slices.Grow(acc[:total], n+1)[:total+n+1], nil
}
