// Package output renders command results as text, JSON or YAML.
package output

import (
	"io"
)

// Formatter writes command results in one format.
type Formatter interface {
	// Format writes data to w.
	Format(w io.Writer, data interface{}) error

	// Name returns the name the formatter is selected by (e.g., "json").
	Name() string
}

// Texter is implemented by results that have a human-readable rendering.
type Texter interface {
	Text() string
}
