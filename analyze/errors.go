package analyze

import "errors"

// ErrEmptySample is returned when a sample grid has no filled cells at
// all; there is nothing to observe a frequency or adjacency rule from.
var ErrEmptySample = errors.New("analyze: sample grid has no filled cells")
