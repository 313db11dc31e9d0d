package composer

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is matched (via errors.Is) by every IndexError.
var ErrIndexOutOfRange = errors.New("composer: index out of range")

// IndexError is returned by Insert, Replace and RemoveAt when the index is
// outside the valid bound. The sequence is left unchanged.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("composer: %s: index %d out of range (len %d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }
