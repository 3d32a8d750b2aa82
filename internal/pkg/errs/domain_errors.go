package errs

// Category markers shared by every layer. Concrete errors are marked with one of
// these so callers can branch on the category without knowing the origin.
var (
	ErrInvalidInterval   = New("invalid interval")
	ErrBookingConflict   = New("booking conflict")
	ErrNotFound          = New("not found")
	ErrInvalidTransition = New("invalid transition")
	ErrValidation        = New("validation error")
	ErrForbidden         = New("forbidden")

	// Storage failures are kept apart from the domain categories above.
	ErrStorage = New("storage error")
)

// NewKind returns a sentinel that also matches the given category.
func NewKind(msg string, category error) error {
	return Mark(New(msg), category)
}

// Category returns the first category marker err carries, or nil.
func Category(err error) error {
	for _, c := range []error{
		ErrInvalidInterval,
		ErrBookingConflict,
		ErrNotFound,
		ErrInvalidTransition,
		ErrValidation,
		ErrForbidden,
		ErrStorage,
	} {
		if Is(err, c) {
			return c
		}
	}
	return nil
}
