package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// auth errors
const (
	ErrInvalidCredentials = Error("invalid credentials")
	ErrInvalidToken       = Error("invalid token")
	ErrMissingClaims      = Error("token missing required claims")
)

// repository errors
const (
	ErrNotFound   = Error("not found")
	ErrUserExists = Error("username already exists")
	ErrDayExists  = Error("day already exists")
)

// account errors
const (
	ErrWrongPassword    = Error("password is not correct")
	ErrPasswordMismatch = Error("confirm password does not match")
	ErrLastAdmin        = Error("cannot demote the last admin")
)

// validation errors, wrapped with a field-specific message by the services
const ErrValidation = Error("validation failed")
