package errors

var (
	// Domain errors — used in usecase/repository
	ErrTaskNotFound          = InvalidArg("task does not exist")
	ErrOfferNotFound         = NotFound("offer not found")
	ErrServiceNotFound       = InvalidArg("service does not exist")
	ErrOwnOffer              = InvalidArg("You can not offer to help your own task")
	ErrDuplicateOffer        = InvalidArg("Only one offer is allowed per task.")
	ErrBlockedPair           = Forbidden("You cannot create an offer for this task")
	ErrNotTaskOwner          = InvalidArg("You cannot accept another offer for another user's task.")
	ErrSiblingOfferAccepted  = InvalidArg("You cannot set status=accepted because there is already accepted offer for this task.")
	ErrDatetimeOptionsNeeded = InvalidArg("datetime_options is required when datetime_known is false")
	ErrDatetimeOptionsExtra  = InvalidArg("For datetime_known=true datetime_options should be empty")
	ErrDatetimeOptionsPast   = InvalidArg("All datetime_options should be in the future")
	ErrTooManyDatetimes      = InvalidArg("datetime_options cannot have more than 3 entries")
	ErrAddressForbidden      = InvalidArg("For event_type=online address shouldn't be present")
	ErrAddressRequired       = InvalidArg("For event_type=offline address is required")
	ErrInvalidEventType      = InvalidArg("event_type must be online or offline")
	ErrInvalidPriceOffer     = InvalidArg("price_offer should be greater than 0")
)
