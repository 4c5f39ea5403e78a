package repositories

import (
	"github.com/pkg/errors"
)

// Storage error kinds. Handlers map these to precise status codes instead
// of collapsing every failure into a 500.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("record conflicts with an existing one")
)
