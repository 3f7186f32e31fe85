package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// InputNotFound indicates the input document path does not exist or is unreadable
	InputNotFound ErrorCode = "INPUT_NOT_FOUND"
	// DocumentInvalid indicates the input document is not a valid leads document
	DocumentInvalid ErrorCode = "DOCUMENT_INVALID"
	// TimestampInvalid indicates a lead's entryDate is missing or not a valid
	// timestamp with offset; recency comparison cannot proceed without it
	TimestampInvalid ErrorCode = "TIMESTAMP_INVALID"
	// OutputWriteFailed indicates the resolved document could not be written
	OutputWriteFailed ErrorCode = "OUTPUT_WRITE_FAILED"
	// HistoryUnavailable indicates the run-history ledger could not be opened or written
	HistoryUnavailable ErrorCode = "HISTORY_UNAVAILABLE"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// SweepError represents a leadsweep error with a stable code and message
type SweepError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error       // Underlying error (not exported to JSON)
}

// New creates a new SweepError
func New(code ErrorCode, message string, cause error) *SweepError {
	return &SweepError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *SweepError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *SweepError) Unwrap() error {
	return e.cause
}

// WithDetails adds details to the error
func (e *SweepError) WithDetails(details interface{}) *SweepError {
	e.Details = details
	return e
}

// CodeOf extracts the ErrorCode from an error, returning InternalError
// for anything that is not a SweepError.
func CodeOf(err error) ErrorCode {
	if se, ok := err.(*SweepError); ok {
		return se.Code
	}
	return InternalError
}
