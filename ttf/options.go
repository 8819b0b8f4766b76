package ttf

import "log"
import "strconv"

import "github.com/pkg/errors"
import xfont "golang.org/x/image/font"

// Logger receives diagnostics for failures. Only failure paths log.
// The standard library's *log.Logger satisfies this interface.
type Logger interface {
	Printf(format string, args ...any)
}

// Rasterization backends.
type Backend uint8
const (
	BackendVector Backend = iota // sfnt outlines + mask.DefaultRasterizer
	BackendFreetype              // github.com/golang/freetype/truetype
)

func (self Backend) String() string {
	switch self {
	case BackendVector: return "vector"
	case BackendFreetype: return "freetype"
	default:
		return "Backend(" + strconv.Itoa(int(self)) + ")"
	}
}

// Configuration for [Init]. The zero value is not valid (DPI must
// be positive); start from [DefaultOptions]() instead.
type Options struct {
	Backend Backend

	// Font sizes are given in pixels when DPI is 72.
	DPI float64

	// Affects metrics and advances. The vector backend never applies
	// hinting instructions to the outlines themselves.
	Hinting xfont.Hinting

	// Defaults to log.Default() when nil.
	Logger Logger
}

// Returns the default options: vector backend, 72 DPI, no hinting
// and the standard logger.
func DefaultOptions() *Options {
	return &Options{
		Backend: BackendVector,
		DPI: 72,
		Hinting: xfont.HintingNone,
		Logger: log.Default(),
	}
}

func (self *Options) validate() error {
	if self.DPI <= 0 {
		return errors.Errorf("invalid DPI %g", self.DPI)
	}
	switch self.Backend {
	case BackendVector, BackendFreetype:
	default:
		return errors.Errorf("unknown backend %s", self.Backend)
	}
	switch self.Hinting {
	case xfont.HintingNone, xfont.HintingVertical, xfont.HintingFull:
	default:
		return errors.Errorf("unknown hinting mode %d", self.Hinting)
	}
	return nil
}
