package ttf

import "github.com/pkg/errors"

var (
	// Returned (wrapped) by [Init] when the library can't be initialized.
	ErrInit = errors.New("library init failed")

	// Returned by operations on a context after [Context.Quit]().
	ErrNotInitialized = errors.New("library not initialized")

	ErrInvalidSize = errors.New("font size must be positive")
	ErrNilFont     = errors.New("nil font")
	ErrFontClosed  = errors.New("font already closed")
	ErrInvalidUTF8 = errors.New("text is not valid UTF-8")

	// Returned by [Context.RenderBlended]() when the text run doesn't
	// advance the pen at all, which includes empty text.
	ErrZeroWidth = errors.New("text has zero width")
)
