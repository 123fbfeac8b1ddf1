package errors

var (
	ErrProfileNotFound = NotFound("profile not found")
	ErrInvalidName     = InvalidArg("name cannot be empty")
	ErrSelfBlock       = InvalidArg("You cannot block yourself")
	ErrAlreadyBlocked  = AlreadyExists("This profile is already blocked")
)
