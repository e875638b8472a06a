package board

import "errors"

// Reasons an operation left the board unchanged. They are reported in
// Outcome.Err and never raised; callers may ignore them.
var (
	ErrColumnNotFound = errors.New("column not found")
	ErrTaskNotFound   = errors.New("task not found")
	ErrSameColumn     = errors.New("source and target column are the same")
	ErrBlankTitle     = errors.New("title must not be blank")
	ErrInvalidLimit   = errors.New("limit must be a non-negative integer")
	ErrInvalidField   = errors.New("invalid field value")
	ErrNoChange       = errors.New("nothing changed")
)

// IsNotFound reports whether err means a referenced column or task is gone.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrColumnNotFound) || errors.Is(err, ErrTaskNotFound)
}

// IsValidation reports whether err means the input was rejected.
func IsValidation(err error) bool {
	return errors.Is(err, ErrBlankTitle) || errors.Is(err, ErrInvalidLimit) || errors.Is(err, ErrInvalidField)
}
