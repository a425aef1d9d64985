// Package shell drives conversions from a user-facing front end. A front
// end supplies a Prompter that picks paths and shows results; Runner
// sequences one conversion through it.
package shell

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrCanceled is returned by a Picker when the user backs out. The
// Runner treats it as a silent no-op.
var ErrCanceled = errors.New("canceled")

// Direction is one of the two conversions.
type Direction int

const (
	ImageToASCII Direction = iota
	ASCIIToImage
)

// Label is the button text for d.
func (d Direction) Label() string {
	switch d {
	case ImageToASCII:
		return "Convert Image to ASCII Art"
	case ASCIIToImage:
		return "Convert ASCII Art to Image"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

func (d Direction) String() string {
	switch d {
	case ImageToASCII:
		return "image-to-ascii"
	case ASCIIToImage:
		return "ascii-to-image"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// OutputExt is the extension given to outputs that have none.
func (d Direction) OutputExt() string {
	if d == ImageToASCII {
		return ".txt"
	}
	return ".png"
}

// InputPatterns lists the file patterns offered when picking a source.
func (d Direction) InputPatterns() []string {
	if d == ImageToASCII {
		return []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.tif", "*.tiff", "*.webp"}
	}
	return []string{"*.txt", "*.txt.zst"}
}

// DefaultOutputPath suggests a destination next to input. Standard input
// ("-") maps to standard output.
func (d Direction) DefaultOutputPath(input string) string {
	if input == "-" {
		return input
	}
	base := strings.TrimSuffix(input, ".zst")
	return strings.TrimSuffix(base, filepath.Ext(base)) + d.OutputExt()
}

// WithDefaultExt appends the direction's extension to path when it has
// none.
func (d Direction) WithDefaultExt(path string) string {
	if path == "" || path == "-" || filepath.Ext(path) != "" {
		return path
	}
	return path + d.OutputExt()
}

// Converter performs the conversions.
type Converter interface {
	ImageToASCII(ctx context.Context, src, dst string) error
	ASCIIToImage(ctx context.Context, src, dst string) error
}

// Picker chooses source and destination paths.
type Picker interface {
	PickInput(ctx context.Context, d Direction) (string, error)
	PickOutput(ctx context.Context, d Direction, input string) (string, error)
}

// Notifier reports the outcome of a conversion.
type Notifier interface {
	Notify(r Result)
}

// Prompter is a complete front end.
type Prompter interface {
	Picker
	Notifier
}

// Result is the outcome of one Run.
type Result struct {
	Direction Direction
	Input     string
	Output    string
	Err       error
}

// Canceled reports whether the user backed out before converting.
func (r Result) Canceled() bool {
	return errors.Is(r.Err, ErrCanceled)
}

// Title is a one-word heading for r.
func (r Result) Title() string {
	if r.Err != nil {
		return "Error"
	}
	return "Success"
}

// Message is the text shown to the user.
func (r Result) Message() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	if r.Direction == ImageToASCII {
		return "ASCII art saved to " + r.Output
	}
	return "Image saved to " + r.Output
}

// Runner runs one conversion at a time through a Prompter.
type Runner struct {
	Converter Converter
	Prompter  Prompter
}

// NewRunner creates a Runner.
func NewRunner(c Converter, p Prompter) *Runner {
	return &Runner{Converter: c, Prompter: p}
}

// Run picks an input, picks an output, converts and notifies. A canceled
// pick ends the run without a notification.
func (r *Runner) Run(ctx context.Context, d Direction) Result {
	res := Result{Direction: d}

	input, err := r.Prompter.PickInput(ctx, d)
	if err != nil {
		res.Err = err
		return r.finish(res)
	}
	res.Input = input

	output, err := r.Prompter.PickOutput(ctx, d, input)
	if err != nil {
		res.Err = err
		return r.finish(res)
	}
	res.Output = d.WithDefaultExt(output)

	switch d {
	case ImageToASCII:
		res.Err = r.Converter.ImageToASCII(ctx, res.Input, res.Output)
	case ASCIIToImage:
		res.Err = r.Converter.ASCIIToImage(ctx, res.Input, res.Output)
	default:
		res.Err = fmt.Errorf("unknown direction %v", d)
	}
	return r.finish(res)
}

func (r *Runner) finish(res Result) Result {
	if !res.Canceled() {
		r.Prompter.Notify(res)
	}
	return res
}
