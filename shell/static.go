package shell

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Static picks fixed paths. An empty path counts as a cancel.
type Static struct {
	Input  string
	Output string
	Notifier
}

// PickInput returns s.Input.
func (s *Static) PickInput(ctx context.Context, d Direction) (string, error) {
	if s.Input == "" {
		return "", ErrCanceled
	}
	return s.Input, nil
}

// PickOutput returns s.Output, or the default output path for input when
// Output is empty.
func (s *Static) PickOutput(ctx context.Context, d Direction, input string) (string, error) {
	if s.Output == "" {
		return d.DefaultOutputPath(input), nil
	}
	return s.Output, nil
}

// TextNotifier prints results as styled lines.
type TextNotifier struct {
	w       io.Writer
	ok      lipgloss.Style
	failed  lipgloss.Style
	message lipgloss.Style
}

// NewTextNotifier creates a TextNotifier writing to w. Styling follows
// the color support detected for w, so plain files get plain text.
func NewTextNotifier(w io.Writer) *TextNotifier {
	r := lipgloss.NewRenderer(w)
	return &TextNotifier{
		w:       w,
		ok:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failed:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		message: r.NewStyle(),
	}
}

// Notify writes "Title: message".
func (n *TextNotifier) Notify(res Result) {
	title := n.ok
	if res.Err != nil {
		title = n.failed
	}
	fmt.Fprintf(n.w, "%s %s\n", title.Render(res.Title()+":"), n.message.Render(res.Message()))
}
