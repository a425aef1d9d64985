// Package img2ascii converts raster images to ASCII art and back.
//
// Both directions share one fixed character ramp, DefaultRamp, ordered
// from darkest to lightest. The Encoder samples an image down to a grid of
// characters; the Decoder paints each character back as a gray level.
// Encoding then decoding is lossy: ten ramp levels stand in for 256 gray
// levels.
package img2ascii

import (
	"fmt"
	"strings"
)

// Ramp is an ordered run of characters from darkest (index 0) to lightest.
type Ramp string

// DefaultRamp is the ramp shared by the Encoder and the Decoder.
const DefaultRamp Ramp = "@%#*+=-:. "

// RampStep is the width of one intensity bucket. Ramp index i stands for
// intensity i*RampStep.
const RampStep = 32

// Len returns the number of characters in the ramp.
func (r Ramp) Len() int {
	return len([]rune(string(r)))
}

// Char returns the character at index i.
func (r Ramp) Char(i int) rune {
	return []rune(string(r))[i]
}

// Index returns the position of c in the ramp, or -1.
func (r Ramp) Index(c rune) int {
	i := 0
	for _, rc := range string(r) {
		if rc == c {
			return i
		}
		i++
	}
	return -1
}

func (r Ramp) String() string {
	return string(r)
}

// Quantize maps an 8-bit intensity to a ramp character under policy.
func (r Ramp) Quantize(policy QuantizePolicy, intensity uint8) rune {
	n := r.Len()
	idx := policy.index(intensity, n)
	if idx >= n {
		idx = n - 1
	}
	return r.Char(idx)
}

// Intensity returns the gray level c stands for, index(c)*RampStep. The
// second result is false for characters outside the ramp.
func (r Ramp) Intensity(c rune) (int, bool) {
	idx := r.Index(c)
	if idx < 0 {
		return 0, false
	}
	return idx * RampStep, true
}

// CharForIntensity maps an intensity to a DefaultRamp character with
// floor(intensity/32). 255 lands on index 7 (':'), so '.' and ' ' are
// never produced from 8-bit input.
func CharForIntensity(intensity uint8) rune {
	return DefaultRamp.Quantize(PolicyDivide32, intensity)
}

// IntensityForChar returns index(c)*32 for a DefaultRamp character. Index 8
// and 9 give 256 and 288, beyond the 8-bit range; the Decoder saturates
// them to white.
func IntensityForChar(c rune) (int, bool) {
	return DefaultRamp.Intensity(c)
}

// QuantizePolicy selects how 8-bit intensities are spread over the ramp.
type QuantizePolicy int

const (
	// PolicyDivide32 uses floor(i/32). Only indices 0 through 7 are
	// reachable, which keeps encoding and decoding on the same 32-wide
	// buckets.
	PolicyDivide32 QuantizePolicy = iota

	// PolicyFullRange uses floor(i*(n-1)/255) so that 0 maps to the
	// darkest and 255 to the lightest character.
	PolicyFullRange
)

func (p QuantizePolicy) index(intensity uint8, n int) int {
	switch p {
	case PolicyFullRange:
		return int(intensity) * (n - 1) / 255
	default:
		return int(intensity) / RampStep
	}
}

func (p QuantizePolicy) String() string {
	switch p {
	case PolicyDivide32:
		return "divide32"
	case PolicyFullRange:
		return "fullrange"
	default:
		return fmt.Sprintf("QuantizePolicy(%d)", int(p))
	}
}

// ParsePolicy resolves a policy by name. The empty string selects
// PolicyDivide32.
func ParsePolicy(name string) (QuantizePolicy, error) {
	switch strings.ToLower(name) {
	case "", "divide32":
		return PolicyDivide32, nil
	case "fullrange", "full":
		return PolicyFullRange, nil
	default:
		return 0, fmt.Errorf("unknown quantize policy %q (available: divide32, fullrange)", name)
	}
}
