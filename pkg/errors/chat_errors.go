package errors

var (
	ErrChatNotFound    = NotFound("Chat not found")
	ErrMessageNotFound = NotFound("Message not found")
	ErrNotChatMember   = Forbidden("You do not have permission to perform this action.")
	ErrEmptyText       = InvalidArg("text cannot be empty")
	ErrTextTooLong     = InvalidArg("text cannot be longer than 300 characters")
	ErrReadAtRequired  = InvalidArg("Field 'read_at' cannot be missing or empty.")
)
