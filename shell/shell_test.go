package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

type call struct {
	method   string
	src, dst string
}

type fakeConverter struct {
	calls []call
	err   error
}

func (f *fakeConverter) ImageToASCII(ctx context.Context, src, dst string) error {
	f.calls = append(f.calls, call{"ImageToASCII", src, dst})
	return f.err
}

func (f *fakeConverter) ASCIIToImage(ctx context.Context, src, dst string) error {
	f.calls = append(f.calls, call{"ASCIIToImage", src, dst})
	return f.err
}

type recordingNotifier struct {
	results []Result
}

func (n *recordingNotifier) Notify(r Result) {
	n.results = append(n.results, r)
}

func TestRunnerImageToASCII(t *testing.T) {
	conv := &fakeConverter{}
	notes := &recordingNotifier{}
	r := NewRunner(conv, &Static{Input: "cat.png", Output: "cat", Notifier: notes})

	res := r.Run(context.Background(), ImageToASCII)
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if len(conv.calls) != 1 || conv.calls[0] != (call{"ImageToASCII", "cat.png", "cat.txt"}) {
		t.Errorf("unexpected calls %+v", conv.calls)
	}
	if len(notes.results) != 1 {
		t.Fatalf("expected one notification, got %d", len(notes.results))
	}
	if msg := notes.results[0].Message(); msg != "ASCII art saved to cat.txt" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestRunnerASCIIToImageDefaultOutput(t *testing.T) {
	conv := &fakeConverter{}
	notes := &recordingNotifier{}
	r := NewRunner(conv, &Static{Input: "art/cat.txt", Notifier: notes})

	res := r.Run(context.Background(), ASCIIToImage)
	if res.Output != "art/cat.png" {
		t.Errorf("expected default output art/cat.png, got %q", res.Output)
	}
	if msg := res.Message(); msg != "Image saved to art/cat.png" {
		t.Errorf("unexpected message %q", msg)
	}
	if res.Title() != "Success" {
		t.Errorf("expected Success, got %q", res.Title())
	}
}

func TestRunnerCanceled(t *testing.T) {
	conv := &fakeConverter{}
	notes := &recordingNotifier{}
	r := NewRunner(conv, &Static{Notifier: notes})

	res := r.Run(context.Background(), ImageToASCII)
	if !res.Canceled() {
		t.Errorf("expected a canceled result, got %v", res.Err)
	}
	if len(conv.calls) != 0 {
		t.Errorf("converter should not run after cancel, got %+v", conv.calls)
	}
	if len(notes.results) != 0 {
		t.Errorf("cancel should not notify, got %+v", notes.results)
	}
}

func TestRunnerConversionError(t *testing.T) {
	conv := &fakeConverter{err: errors.New("decode error: bad header")}
	notes := &recordingNotifier{}
	r := NewRunner(conv, &Static{Input: "bad.png", Output: "out.txt", Notifier: notes})

	res := r.Run(context.Background(), ImageToASCII)
	if res.Err == nil {
		t.Fatal("expected an error")
	}
	if len(notes.results) != 1 || notes.results[0].Title() != "Error" {
		t.Errorf("expected one error notification, got %+v", notes.results)
	}
	if notes.results[0].Message() != "decode error: bad header" {
		t.Errorf("unexpected message %q", notes.results[0].Message())
	}
}

func TestDirection(t *testing.T) {
	tests := []struct {
		d       Direction
		input   string
		wantOut string
		label   string
	}{
		{ImageToASCII, "photos/cat.jpeg", "photos/cat.txt", "Convert Image to ASCII Art"},
		{ASCIIToImage, "cat.txt", "cat.png", "Convert ASCII Art to Image"},
		{ASCIIToImage, "cat.txt.zst", "cat.png", "Convert ASCII Art to Image"},
	}
	for _, tt := range tests {
		if got := tt.d.DefaultOutputPath(tt.input); got != tt.wantOut {
			t.Errorf("%v.DefaultOutputPath(%q) = %q, want %q", tt.d, tt.input, got, tt.wantOut)
		}
		if got := tt.d.Label(); got != tt.label {
			t.Errorf("%v.Label() = %q, want %q", tt.d, got, tt.label)
		}
	}

	if got := ImageToASCII.WithDefaultExt("-"); got != "-" {
		t.Errorf("stdout marker should pass through, got %q", got)
	}
	if got := ASCIIToImage.WithDefaultExt("out.bmp"); got != "out.bmp" {
		t.Errorf("explicit extension should be kept, got %q", got)
	}
}

func TestTextNotifier(t *testing.T) {
	var buf bytes.Buffer
	n := NewTextNotifier(&buf)

	n.Notify(Result{Direction: ImageToASCII, Output: "out.txt"})
	n.Notify(Result{Direction: ASCIIToImage, Err: errors.New("i/o error: disk full")})

	out := buf.String()
	if !strings.Contains(out, "Success:") || !strings.Contains(out, "ASCII art saved to out.txt") {
		t.Errorf("missing success line in %q", out)
	}
	if !strings.Contains(out, "Error:") || !strings.Contains(out, "disk full") {
		t.Errorf("missing error line in %q", out)
	}
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected two lines, got %q", out)
	}
}
