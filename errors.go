package img2ascii

import (
	"errors"

	"github.com/wbrown/img2ascii/imageutil"
)

var (
	// ErrDecode is returned when source bytes are not a decodable image.
	ErrDecode = errors.New("decode error")

	// ErrIO is returned when a source cannot be read or a destination
	// cannot be written.
	ErrIO = errors.New("i/o error")

	// ErrInvalidWidth is returned for a target width below 1.
	ErrInvalidWidth = errors.New("invalid target width")

	// ErrUnsupportedFormat is returned when a destination names a format
	// that cannot hold a lossless gray image.
	ErrUnsupportedFormat = imageutil.ErrUnsupportedFormat
)
