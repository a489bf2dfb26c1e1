package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrMissingConstructor   = errors.New("type declares no field list")
	ErrInvalidAttributeType = errors.New("invalid attribute type")
	ErrUnknownEnumValue     = errors.New("value is not a case of the enumeration")

	ErrEmptyInput      = errors.New("input is empty or contains only whitespace")
	ErrInvalidJSON     = errors.New("invalid JSON format")
	ErrMultipleJSON    = errors.New("multiple JSON values found at the root, only one is allowed")
	ErrFileNotFound    = errors.New("file not found")
	ErrFileEmpty       = errors.New("file is empty")
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe JSON data to stdin")
	ErrInvalidFilePath = errors.New("invalid file path")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeMissingConstructor   ErrorType = "missing_constructor"
	ErrorTypeInvalidAttributeType ErrorType = "invalid_attribute_type"
	ErrorTypeUnknownEnumValue     ErrorType = "unknown_enum_value"

	ErrorTypeInput     ErrorType = "input"
	ErrorTypeParsing   ErrorType = "parsing"
	ErrorTypeTransport ErrorType = "transport"
	ErrorTypeAPI       ErrorType = "api"
	ErrorTypeConfig    ErrorType = "config"
	ErrorTypeOutput    ErrorType = "output"
	ErrorTypeUnknown   ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches another *AppError of the same Type, or the sentinel that
// belongs to this error's Type.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Type == t.Type
	}
	switch e.Type {
	case ErrorTypeMissingConstructor:
		return target == ErrMissingConstructor
	case ErrorTypeInvalidAttributeType:
		return target == ErrInvalidAttributeType
	case ErrorTypeUnknownEnumValue:
		return target == ErrUnknownEnumValue
	}
	return false
}

// NewMissingConstructorError reports a target type with no field declarations.
func NewMissingConstructorError(typeName string) *AppError {
	return &AppError{
		Type:    ErrorTypeMissingConstructor,
		Message: fmt.Sprintf("type `%s` must declare its fields to be deserialized", typeName),
	}
}

// NewInvalidAttributeTypeError reports an unresolvable type token or a value
// that cannot be converted to its declared type.
func NewInvalidAttributeTypeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidAttributeType,
		Message: message,
		Err:     err,
	}
}

// NewUnknownEnumValueError reports a raw value that matches no enumeration case.
func NewUnknownEnumValueError(enumName string, value interface{}) *AppError {
	return &AppError{
		Type:    ErrorTypeUnknownEnumValue,
		Message: fmt.Sprintf("%v is not a valid backing value for enum `%s`", value, enumName),
	}
}

// NewInputError creates a new error related to input processing
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewParsingError creates a new error related to JSON parsing
func NewParsingError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeParsing,
		Message: message,
		Err:     err,
	}
}

// NewTransportError creates a new error for failed HTTP exchanges
func NewTransportError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeTransport,
		Message: message,
		Err:     err,
	}
}

// NewAPIError creates a new error for non-success API responses
func NewAPIError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeAPI,
		Message: message,
		Err:     err,
	}
}

// NewConfigError creates a new error related to configuration loading
func NewConfigError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to output processing
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// WithField prefixes the message of a core error with the field path it was
// raised for. Other errors are returned unchanged.
func WithField(err error, typeName, field string) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return err
	}
	switch appErr.Type {
	case ErrorTypeInvalidAttributeType, ErrorTypeUnknownEnumValue:
		return &AppError{
			Type:    appErr.Type,
			Message: fmt.Sprintf("%s.%s: %s", typeName, field, appErr.Message),
			Err:     appErr.Err,
		}
	}
	return err
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeMissingConstructor:
			return fmt.Sprintf("Type error: %s", appErr.Message)
		case ErrorTypeInvalidAttributeType:
			return fmt.Sprintf("Attribute error: %s", appErr.Message)
		case ErrorTypeUnknownEnumValue:
			return fmt.Sprintf("Enum error: %s", appErr.Message)
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeParsing:
			return fmt.Sprintf("JSON parsing error: %s", appErr.Message)
		case ErrorTypeTransport:
			return fmt.Sprintf("Request error: %s", appErr.Message)
		case ErrorTypeAPI:
			return fmt.Sprintf("API error: %s", appErr.Message)
		case ErrorTypeConfig:
			return fmt.Sprintf("Configuration error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrEmptyInput) {
		return "Error: The input is empty. Please provide valid JSON data."
	}
	if errors.Is(err, ErrInvalidJSON) {
		return "Error: The input contains invalid JSON. Please check your JSON syntax."
	}
	if errors.Is(err, ErrMultipleJSON) {
		return "Error: Multiple JSON values found. Please provide a single JSON object or array."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrFileEmpty) {
		return "Error: The specified file is empty. Please provide a file with valid JSON content."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe JSON data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}
