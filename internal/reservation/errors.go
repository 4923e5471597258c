package reservation

import "errors"

// Booking failures.  They are returned, never panicked, and the service
// never retries them itself.
var (
	// ErrInvalidRequest means the caller asked for fewer than one seat or
	// passed no show.  It is a caller bug and retrying will not help.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInsufficientSeats means the show did not have enough seats at the
	// moment its lock was held.  The caller may try another show.
	ErrInsufficientSeats = errors.New("insufficient seats")
	// ErrUnknownRequester means the requester is a guest or is not known to
	// the customer directory.  The caller must register first.
	ErrUnknownRequester = errors.New("unknown requester")
)

// FailureKind classifies an error returned by Reserve.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureInvalidRequest
	FailureInsufficientSeats
	FailureUnknownRequester
	FailureOther
)

func (k FailureKind) String() string {
	switch k {
	case FailureNone:
		return "none"
	case FailureInvalidRequest:
		return "invalid_request"
	case FailureInsufficientSeats:
		return "insufficient_seats"
	case FailureUnknownRequester:
		return "unknown_requester"
	default:
		return "other"
	}
}

// Kind maps err to its FailureKind.  A nil error is FailureNone.
func Kind(err error) FailureKind {
	switch {
	case err == nil:
		return FailureNone
	case errors.Is(err, ErrInvalidRequest):
		return FailureInvalidRequest
	case errors.Is(err, ErrInsufficientSeats):
		return FailureInsufficientSeats
	case errors.Is(err, ErrUnknownRequester):
		return FailureUnknownRequester
	default:
		return FailureOther
	}
}
