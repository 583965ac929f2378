package response

var (
	ErrInvalidRequest  = newError(400, "invalid request")
	ErrTokenInvalid    = newError(401, "invalid or expired session")
	ErrUnauthorized    = newError(403, "permission denied")
	ErrNotFound        = newError(404, "not found")
	ErrAlreadyExists   = newError(409, "already exists")
	ErrDatabase        = newError(500, "database error")
	ErrInvalidPassword = newError(40101, "invalid email or password")
	ErrEmailSend       = newError(50001, "failed to send email")
	ErrFileStore       = newError(50002, "file storage error")
	ErrServer          = newError(500, "internal server error")
)
