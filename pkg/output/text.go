package output

import (
	"fmt"
	"io"
	"strings"
)

// TextFormatter writes the human-readable rendering of a result.
type TextFormatter struct{}

// NewTextFormatter creates a new text formatter.
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Name returns the formatter name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format writes data.Text() when data implements Texter and fmt.Sprint(data)
// otherwise, ending with exactly one newline.
func (f *TextFormatter) Format(w io.Writer, data interface{}) error {
	var text string
	switch v := data.(type) {
	case nil:
		return nil
	case Texter:
		text = v.Text()
	default:
		text = fmt.Sprint(v)
	}

	_, err := io.WriteString(w, strings.TrimRight(text, "\n")+"\n")
	return err
}
