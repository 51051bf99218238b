package domain

import "errors"

type ErrorKind int

const (
	// KindConfiguration covers required identifiers or locations that are
	// unset or malformed. Fatal before any mutation happens.
	KindConfiguration ErrorKind = iota

	// KindNotFound means the target of a query does not exist.
	KindNotFound

	// KindTransientAPI covers any other external call failure. Fatal for
	// comparison inputs, non-fatal for an individual rule revocation.
	KindTransientAPI

	// KindNotification covers pub/sub and webhook delivery failures. Never
	// affects the run's reported status.
	KindNotification
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindNotFound:
		return "not found"
	case KindTransientAPI:
		return "transient API"
	case KindNotification:
		return "notification"
	default:
		return "unknown"
	}
}

// ClassifiedError attaches an ErrorKind to a failure so callers branch on the
// kind rather than matching message substrings.
type ClassifiedError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ClassifiedError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

func NewConfigurationError(message string) *ClassifiedError {
	return &ClassifiedError{Kind: KindConfiguration, Message: message}
}

func NewNotFoundError(message string, err error) *ClassifiedError {
	return &ClassifiedError{Kind: KindNotFound, Message: message, Err: err}
}

func NewTransientAPIError(message string, err error) *ClassifiedError {
	return &ClassifiedError{Kind: KindTransientAPI, Message: message, Err: err}
}

func NewNotificationError(message string, err error) *ClassifiedError {
	return &ClassifiedError{Kind: KindNotification, Message: message, Err: err}
}

// KindOf reports the classification of err, unwrapping as needed. ok is false
// when no ClassifiedError is present in the chain.
func KindOf(err error) (ErrorKind, bool) {
	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified.Kind, true
	}
	return 0, false
}
