package img2ascii

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Art is ASCII art as an ordered list of lines. The last line may be
// empty when the text ended with a newline.
type Art struct {
	Lines []string
}

// newlines folds "\r\n" and a lone "\r" into "\n".
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// ParseArt splits text into lines. "\n", "\r\n" and a lone "\r" all end a
// line. A trailing line break yields a trailing empty line, and the empty
// string yields a single empty line.
func ParseArt(text string) Art {
	return Art{Lines: strings.Split(newlines.Replace(text), "\n")}
}

// Width is the length in characters of the longest line.
func (a Art) Width() int {
	w := 0
	for _, line := range a.Lines {
		if n := utf8.RuneCountInString(line); n > w {
			w = n
		}
	}
	return w
}

// Height is the number of lines.
func (a Art) Height() int {
	return len(a.Lines)
}

// String joins the lines with "\n", the inverse of ParseArt for
// "\n"-separated text.
func (a Art) String() string {
	return strings.Join(a.Lines, "\n")
}

// WriteTo writes the text form of a to w.
func (a Art) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.String())
	return int64(n), err
}
