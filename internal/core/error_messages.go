package core

// # Error Codes Reference
//
// This file defines the messages shown in place of a view's content when
// its data cannot be produced. Codes are shown next to the message so a
// guest can quote them to whoever maintains the site.
//
// # Fetch Errors (FETCH001-FETCH099)
//
//	FETCH001 - Bad status: The data file could not be retrieved
//	           Action: Reload the page in a little while
//	           Patterns: "unexpected status"
//
//	FETCH002 - Unreachable: The data source could not be reached
//	           Action: Check your connection and reload the page
//	           Patterns: "connection refused", "no such host", "no such file"
//
//	FETCH003 - Timeout: The data source took too long to answer
//	           Action: Reload the page
//	           Patterns: "deadline exceeded", "timeout"
//
//	FETCH004 - Too large: The data file is larger than allowed
//	           Action: Contact the site maintainer
//	           Patterns: "too large"
//
//	FETCH005 - Busy: The data source is busy
//	           Action: Reload the page in a moment
//	           Patterns: "too many concurrent"
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Bad parameter: The link you followed is malformed
//	         Action: Go back to the calendar and try again
//	         Patterns: "invalid parameter"
//
//	REQ002 - Not found: That activity does not exist
//	         Action: Go back to the calendar and try again
//	         Patterns: "not found"
//
//	RATE001 - Too many requests
//	          Action: Please wait a moment before trying again
//	          Patterns: "rate limit"
//
// Anything else maps to ERR000.

import (
	"errors"
	"strings"
)

// UserMessage is the guest-facing description of an error.
type UserMessage struct {
	Message string
	Action  string
	Code    string
}

type errorPattern struct {
	pattern string
	msg     UserMessage
}

var errorPatterns = []errorPattern{
	{
		pattern: "unexpected status",
		msg: UserMessage{
			Message: "The data file could not be retrieved",
			Action:  "Reload the page in a little while",
			Code:    "FETCH001",
		},
	},
	{
		pattern: "connection refused",
		msg:     unreachable,
	},
	{
		pattern: "no such host",
		msg:     unreachable,
	},
	{
		pattern: "no such file",
		msg:     unreachable,
	},
	{
		pattern: "deadline exceeded",
		msg:     timedOut,
	},
	{
		pattern: "timeout",
		msg:     timedOut,
	},
	{
		pattern: "too large",
		msg: UserMessage{
			Message: "The data file is larger than allowed",
			Action:  "Contact the site maintainer",
			Code:    "FETCH004",
		},
	},
	{
		pattern: "too many concurrent",
		msg: UserMessage{
			Message: "The data source is busy",
			Action:  "Reload the page in a moment",
			Code:    "FETCH005",
		},
	},
	{
		pattern: "invalid parameter",
		msg: UserMessage{
			Message: "The link you followed is malformed",
			Action:  "Go back to the calendar and try again",
			Code:    "REQ001",
		},
	},
	{
		pattern: "not found",
		msg: UserMessage{
			Message: "That activity does not exist",
			Action:  "Go back to the calendar and try again",
			Code:    "REQ002",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

var unreachable = UserMessage{
	Message: "The data source could not be reached",
	Action:  "Check your connection and reload the page",
	Code:    "FETCH002",
}

var timedOut = UserMessage{
	Message: "The data source took too long to answer",
	Action:  "Reload the page",
	Code:    "FETCH003",
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Reload the page",
	Code:    "ERR000",
}

// MapError converts a technical error to a guest-facing message. Patterns are
// matched case-insensitively in order; the first match wins.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// MessageFor returns the guest-facing message for err. A UserError in the
// chain keeps the message it was created with; anything else is mapped.
func MessageFor(err error) UserMessage {
	var ue *UserError
	if errors.As(err, &ue) {
		return ue.User
	}
	return MapError(err)
}

// IsUserFacing reports whether err has a known guest-facing message.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MessageFor(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its guest-facing message.
type UserError struct {
	Technical error
	User      UserMessage
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}

// LoadFailedMessage is the inline notice for a dataset that failed to load.
func LoadFailedMessage(label string) string {
	return "Could not load " + label + " data."
}

// EmptyMessage is the inline notice for a dataset that loaded but had no rows.
func EmptyMessage(label string) string {
	return "No " + strings.ToLower(label) + " rows found after parsing the data file."
}
