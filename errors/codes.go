package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field or flag is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a value has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Resource errors
const (
	// ErrCodeNotFound indicates a requested file or value was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeIO indicates reading input or writing output failed.
	ErrCodeIO ErrorCode = "IO_ERROR"
)

// Contract and internal errors
const (
	// ErrCodeInvalidHandle indicates a nil or destroyed container handle was used.
	ErrCodeInvalidHandle ErrorCode = "INVALID_HANDLE"
	// ErrCodeConfig indicates configuration could not be loaded.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"
	// ErrCodeInternal indicates an unexpected internal failure.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Process exit codes used by the utl command.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitNoInput  = 66
	ExitIOError  = 74
	ExitConfig   = 78
	ExitSoftware = 70
)

var exitCodes = map[ErrorCode]int{
	ErrCodeInvalidInput:  ExitUsage,
	ErrCodeMissingField:  ExitUsage,
	ErrCodeInvalidFormat: ExitUsage,
	ErrCodeNotFound:      ExitNoInput,
	ErrCodeIO:            ExitIOError,
	ErrCodeConfig:        ExitConfig,
	ErrCodeInvalidHandle: ExitSoftware,
	ErrCodeInternal:      ExitSoftware,
}

// ExitCodeFor returns the process exit code for an error code.
// Unknown codes map to ExitFailure.
func ExitCodeFor(code ErrorCode) int {
	if c, ok := exitCodes[code]; ok {
		return c
	}
	return ExitFailure
}
