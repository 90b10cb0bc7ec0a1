package ecmath

import "fmt"

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidCurve is returned when curve parameters violate a curve
	// invariant: the modulus is not an odd prime greater than 3, or the
	// curve is singular.
	ErrInvalidCurve = ErrorKind("ErrInvalidCurve")

	// ErrPointNotOnCurve is returned when coordinates do not satisfy the
	// curve equation, or when a point bound to another curve is passed to
	// a curve operation.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrArithmetic is returned when a modular inverse is requested for a
	// value that shares a factor with the modulus.
	ErrArithmetic = ErrorKind("ErrArithmetic")

	// ErrUnknownCurve is returned when a curve name is not registered.
	ErrUnknownCurve = ErrorKind("ErrUnknownCurve")

	// ErrInvalidScalar is returned for negative scalars and for private keys
	// outside [1, n-1].
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrInvalidWindow is returned for NAF widths outside the supported
	// range.
	ErrInvalidWindow = ErrorKind("ErrInvalidWindow")

	// ErrCurveTooLarge is returned when point enumeration is requested for a
	// curve whose field is too large to walk.
	ErrCurveTooLarge = ErrorKind("ErrCurveTooLarge")

	// ErrNonceExhausted is returned when signing could not find a usable
	// nonce within the retry limit.
	ErrNonceExhausted = ErrorKind("ErrNonceExhausted")

	// ErrUnsupportedHash is returned for unknown hash algorithm names.
	ErrUnsupportedHash = ErrorKind("ErrUnsupportedHash")

	// ErrInvalidSignatureEncoding is returned when a serialized signature
	// cannot be parsed.
	ErrInvalidSignatureEncoding = ErrorKind("ErrInvalidSignatureEncoding")

	// ErrInvalidConfig is returned when a configuration value is invalid.
	ErrInvalidConfig = ErrorKind("ErrInvalidConfig")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to curve arithmetic or signing. It has
// full support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// NewError creates an Error of the given kind with a formatted description.
func NewError(kind ErrorKind, format string, args ...interface{}) Error {
	return Error{Err: kind, Description: fmt.Sprintf(format, args...)}
}
