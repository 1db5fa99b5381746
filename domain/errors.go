package domain

import (
	"errors"
	"fmt"
)

// ErrorCode is a program error with a stable numeric code, as surfaced to clients.
type ErrorCode struct {
	Code    uint32
	Name    string
	Message string
}

func (e *ErrorCode) Error() string {
	return fmt.Sprintf("%v (%v): %v", e.Name, e.Code, e.Message)
}

var (
	ErrorNotAuthorized          = &ErrorCode{6000, "NotAuthorized", "signer is not part of the multisig"}
	ErrorAlreadySigned          = &ErrorCode{6001, "AlreadySigned", "instruction has already been signed by this signer"}
	ErrorInvalidBump            = &ErrorCode{6002, "InvalidBump", "account does not match its derived address"}
	ErrorInvalidInstructionHash = &ErrorCode{6003, "InvalidInstructionHash", "invalid instruction hash"}
	ErrorAlreadyInitialized     = &ErrorCode{6004, "AlreadyInitialized", "account is already initialized"}
	ErrorInvalidParams          = &ErrorCode{6005, "InvalidParams", "invalid parameters"}
	ErrorFailedUnwrap           = &ErrorCode{6006, "FailedUnwrap", "failed to unwrap an expected value"}
)

var (
	ErrorInvalidSigners   = fmt.Errorf("%w: signers must be 1 to %v unique non-default keys", ErrorInvalidParams, MaxSigners)
	ErrorInvalidThreshold = fmt.Errorf("%w: threshold must be between 1 and the number of signers", ErrorInvalidParams)

	ErrorAccountNotFound = fmt.Errorf("account not found")
)

// ErrorName returns the program error name carried by err, or "Unknown".
func ErrorName(err error) string {
	var code *ErrorCode
	if errors.As(err, &code) {
		return code.Name
	}

	var unwrap *UnwrapError
	if errors.As(err, &unwrap) {
		return ErrorFailedUnwrap.Name
	}

	return "Unknown"
}
