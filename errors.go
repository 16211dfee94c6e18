package gotds

import (
	"errors"
	"fmt"
)

// Error is the error type returned by the driver. Number identifies the
// failure class; Diagnostic carries the server diagnostic behind a command
// failure.
//
// Error() always renders the number as "%06d: message". For a failed command
// Message is exactly the text of the first server error, so callers that
// want the server text alone read Message rather than Error().
type Error struct {
	Number      int
	Message     string
	MessageArgs []interface{}
	// Diagnostic is the first server error of a failed command, if any.
	Diagnostic *Diagnostic
	// Err is the underlying cause, usually from the transport.
	Err error
}

func (e *Error) Error() string {
	message := e.Message
	if len(e.MessageArgs) > 0 {
		message = fmt.Sprintf(e.Message, e.MessageArgs...)
	}
	if e.Err != nil {
		return fmt.Sprintf("%06d: %s: %v", e.Number, message, e.Err)
	}
	return fmt.Sprintf("%06d: %s", e.Number, message)
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same Number.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Number == e.Number
}

const (
	// config

	// ErrCodeEmptyServer is an error code for the case where neither servername nor hostname is given.
	ErrCodeEmptyServer = 270001
	// ErrCodeEmptyPort is an error code for the case where hostname is given without a port.
	ErrCodeEmptyPort = 270002
	// ErrCodeEmptyUsername is an error code for the case where username is empty.
	ErrCodeEmptyUsername = 270003
	// ErrCodeFailedToParsePort is an error code for the case where the port is not a valid TCP port.
	ErrCodeFailedToParsePort = 270004
	// ErrCodeUnsupportedCharset is an error code for the case where the charset is unknown.
	ErrCodeUnsupportedCharset = 270005
	// ErrCodeTomlFileParsingFailed is an error code for the case where connections.toml cannot be parsed.
	ErrCodeTomlFileParsingFailed = 270006
	// ErrCodeFailedToFindDSNInToml is an error code for the case where the connection name is not in connections.toml.
	ErrCodeFailedToFindDSNInToml = 270007
	// ErrCodeInvalidFilePermission is an error code for the case where connections.toml is readable by others.
	ErrCodeInvalidFilePermission = 270008
	// ErrCodeInvalidOption is an error code for the case where an option has the wrong type or value.
	ErrCodeInvalidOption = 270009

	// connection

	// ErrCodeClosedConnection is an error code for the case where a closed connection is used.
	ErrCodeClosedConnection = 271001

	// transport

	// ErrCodeSubmitFailed is an error code for the case where the transport rejects a command.
	ErrCodeSubmitFailed = 272001
	// ErrCodeFetchFailed is an error code for the case where the next result token cannot be read.
	ErrCodeFetchFailed = 272002
	// ErrCodeConnectionFailed is an error code for the case where the transport session cannot be opened.
	ErrCodeConnectionFailed = 272003
	// ErrCodeColumnBindFailed is an error code for the case where a column cannot be described or bound.
	ErrCodeColumnBindFailed = 272004

	// execution

	// ErrCodeCommandFailed is an error code for the case where the server reports a failed command.
	ErrCodeCommandFailed = 273001
	// ErrCodeUnsupportedType is an error code for the case where a column wire type has no conversion rule.
	ErrCodeUnsupportedType = 274001
	// ErrCodeRowBeforeFormat is an error code for the case where a row arrives before any column format.
	ErrCodeRowBeforeFormat = 275001
)

const (
	errMsgEmptyServer           = "either servername or hostname is required"
	errMsgEmptyPort             = "port is required when hostname is given"
	errMsgEmptyUsername         = "username is required"
	errMsgFailedToParsePort     = "failed to parse a port number. port: %v"
	errMsgUnsupportedCharset    = "unsupported charset: %v"
	errMsgFailedToParseTomlFile = "failed to parse the toml file. key: %v, value: %v"
	errMsgFailedToFindDSNInToml = "connection %q was not found in connections.toml"
	errMsgInvalidFilePermission = "file %v must not be accessible by group or others. permission: %v"
	errMsgInvalidOption         = "invalid value for option %v: %v"
	errMsgSubmitFailed          = "failed to submit command"
	errMsgFetchFailed           = "failed to read next result token"
	errMsgConnectionFailed      = "failed to connect to server %v"
	errMsgColumnBindFailed      = "failed to prepare column %d"
	errMsgCommandFailed         = "command failed"
	errMsgUnsupportedType       = "unsupported wire type %v for column %q"
	errMsgRowBeforeFormat       = "row received before any column format"
)

var (
	// preformatted errors

	// ErrEmptyServer is returned if neither servername nor hostname is given.
	ErrEmptyServer = &Error{
		Number:  ErrCodeEmptyServer,
		Message: errMsgEmptyServer,
	}
	// ErrEmptyPort is returned if hostname is given without a port.
	ErrEmptyPort = &Error{
		Number:  ErrCodeEmptyPort,
		Message: errMsgEmptyPort,
	}
	// ErrEmptyUsername is returned if username is empty.
	ErrEmptyUsername = &Error{
		Number:  ErrCodeEmptyUsername,
		Message: errMsgEmptyUsername,
	}
	// ErrClosedConnection is returned when a closed connection or its statements are used.
	ErrClosedConnection = &Error{
		Number:  ErrCodeClosedConnection,
		Message: "connection is closed",
	}
	// ErrCommandFailed matches every failed command with errors.Is.
	ErrCommandFailed = &Error{
		Number:  ErrCodeCommandFailed,
		Message: errMsgCommandFailed,
	}
	// ErrRowBeforeFormat is returned when a row token arrives before any column format.
	ErrRowBeforeFormat = &Error{
		Number:  ErrCodeRowBeforeFormat,
		Message: errMsgRowBeforeFormat,
	}
)

// IsConfigError reports whether err was raised by configuration validation or loading.
func IsConfigError(err error) bool {
	return inRange(err, 270000, 271000)
}

// IsTransportError reports whether err was raised by the transport.
func IsTransportError(err error) bool {
	return inRange(err, 272000, 273000)
}

func inRange(err error, low, high int) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Number >= low && e.Number < high
}
