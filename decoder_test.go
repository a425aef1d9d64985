package img2ascii

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/wbrown/img2ascii/imageutil"
)

func TestDecoderRaggedDimensions(t *testing.T) {
	t.Parallel()

	// Line lengths 3, 5 and 0.
	img := NewDecoder().DecodeString("@@@\n@@@@@\n")
	if img.Width() != 5 || img.Height() != 3 {
		t.Fatalf("Expected 5x3, got %dx%d", img.Width(), img.Height())
	}
	if v := img.GetGray(0, 0); v != 0 {
		t.Errorf("Expected '@' to paint 0, got %d", v)
	}
	if v := img.GetGray(3, 0); v != 255 {
		t.Errorf("Past the end of a short line should stay white, got %d", v)
	}
	if v := img.GetGray(4, 1); v != 0 {
		t.Errorf("Expected '@' at (4,1), got %d", v)
	}
	for x := 0; x < 5; x++ {
		if v := img.GetGray(x, 2); v != 255 {
			t.Errorf("Empty trailing line should be white at x=%d, got %d", x, v)
		}
	}
}

func TestDecoderAllSpaces(t *testing.T) {
	img := NewDecoder().DecodeString(strings.Repeat(" ", 7))
	if img.Width() != 7 || img.Height() != 1 {
		t.Fatalf("Expected 7x1, got %dx%d", img.Width(), img.Height())
	}
	for x := 0; x < 7; x++ {
		if v := img.GetGray(x, 0); v != 255 {
			t.Errorf("Space should paint white at x=%d, got %d", x, v)
		}
	}
}

func TestDecoderRampValues(t *testing.T) {
	img := NewDecoder().DecodeString(string(DefaultRamp))
	want := []uint8{0, 32, 64, 96, 128, 160, 192, 224, 255, 255}
	for x, w := range want {
		if v := img.GetGray(x, 0); v != w {
			t.Errorf("Ramp index %d: expected %d, got %d", x, w, v)
		}
	}
}

func TestDecoderUnknownCharacters(t *testing.T) {
	img := NewDecoder().DecodeString("@X@\t")
	if img.Width() != 4 {
		t.Fatalf("Expected width 4, got %d", img.Width())
	}
	if v := img.GetGray(1, 0); v != 255 {
		t.Errorf("Unknown character should stay white, got %d", v)
	}
	if v := img.GetGray(3, 0); v != 255 {
		t.Errorf("Tab should stay white, got %d", v)
	}
	if v := img.GetGray(2, 0); v != 0 {
		t.Errorf("Expected '@' after unknown character, got %d", v)
	}
}

func TestDecoderLineEndings(t *testing.T) {
	tests := []struct {
		text          string
		width, height int
		darkX, darkY  int
	}{
		{"@@\r\n@@\r\n", 2, 3, 1, 1},
		{"@@\r@@", 2, 2, 1, 1},
		{"@@\r\r@", 2, 3, 0, 2},
		{"@@\n@@\n", 2, 3, 1, 1},
	}
	for _, tt := range tests {
		img := NewDecoder().DecodeString(tt.text)
		if img.Width() != tt.width || img.Height() != tt.height {
			t.Errorf("%q: expected %dx%d, got %dx%d", tt.text, tt.width, tt.height, img.Width(), img.Height())
			continue
		}
		if v := img.GetGray(tt.darkX, tt.darkY); v != 0 {
			t.Errorf("%q: expected '@' at (%d,%d), got %d", tt.text, tt.darkX, tt.darkY, v)
		}
	}
}

func TestDecoderMultibyteColumns(t *testing.T) {
	img := NewDecoder().DecodeString("é@")
	if img.Width() != 2 {
		t.Fatalf("Width should count characters, not bytes: got %d", img.Width())
	}
	if v := img.GetGray(1, 0); v != 0 {
		t.Errorf("Expected '@' in column 1, got %d", v)
	}
}

func TestDecoderEmptyInput(t *testing.T) {
	for _, text := range []string{"", "\n"} {
		img := NewDecoder().DecodeString(text)
		if img.Width() != 0 {
			t.Errorf("%q: expected width 0, got %d", text, img.Width())
		}

		var buf bytes.Buffer
		if err := NewDecoder().Decode(&buf, strings.NewReader(text)); err != nil {
			t.Fatalf("%q: empty input should not fail: %v", text, err)
		}
		decoded, format, err := imageutil.Decode(buf.Bytes())
		if err != nil {
			t.Fatalf("%q: output is not a valid image: %v", text, err)
		}
		if format != "png" {
			t.Errorf("Expected png, got %s", format)
		}
		gray := imageutil.ToGrayscale(imageutil.RGBAImageFromImage(decoded))
		if gray.Width() != 1 || gray.Height() != 1 || gray.GetGray(0, 0) != 255 {
			t.Errorf("%q: expected a single white pixel", text)
		}
	}
}

func TestDecoderFormats(t *testing.T) {
	text := "@%#\n*+=\n"
	for _, f := range []imageutil.Format{imageutil.FormatPNG, imageutil.FormatTIFF, imageutil.FormatBMP} {
		var buf bytes.Buffer
		if err := NewDecoder(WithFormat(f)).Decode(&buf, strings.NewReader(text)); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		decoded, _, err := imageutil.Decode(buf.Bytes())
		if err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		got := imageutil.ToGrayscale(imageutil.RGBAImageFromImage(decoded))
		want := NewDecoder().DecodeString(text)
		if mse := imageutil.CalculateMSEGray(want, got); mse != 0 {
			t.Errorf("%s: expected lossless output, MSE=%f", f, mse)
		}
	}
}

func TestDecoderWriteError(t *testing.T) {
	err := NewDecoder().Decode(failWriter{}, strings.NewReader("@@"))
	if !errors.Is(err, ErrIO) {
		t.Errorf("Expected ErrIO, got %v", err)
	}
}

func TestRoundTripIsLossyButClose(t *testing.T) {
	src := imageutil.CreateGradientImage(64, 32)
	enc := NewEncoder(WithTargetWidth(64), WithFilter(imageutil.FilterNearest))

	var text bytes.Buffer
	if err := enc.Encode(&text, src); err != nil {
		t.Fatal(err)
	}
	painted := NewDecoder().DecodeString(text.String())

	// The trailing newline adds one white row below the grid.
	if painted.Width() != 64 || painted.Height() != 33 {
		t.Fatalf("Expected 64x33, got %dx%d", painted.Width(), painted.Height())
	}

	orig := imageutil.ToGrayscale(src)
	var sumSq float64
	for y := 0; y < 32; y++ {
		for x := 0; x < 64; x++ {
			d := float64(orig.GetGray(x, y)) - float64(painted.GetGray(x, y))
			sumSq += d * d
		}
	}
	mse := sumSq / (64 * 32)
	if mse == 0 {
		t.Error("Quantizing to ten levels should lose information")
	}
	if mse > 1500 {
		t.Errorf("Round trip drifted too far, MSE=%f", mse)
	}
}
