// Package errors provides the structured error type used by utl's outer
// surfaces: configuration loading, validation and the utl command.
//
// The container packages (strbuf, list, set) never return errors. They
// clamp out-of-range arguments and signal "not found" with sentinels. A
// contract violation such as using a destroyed string handle panics with
// an *AppError carrying ErrCodeInvalidHandle.
//
// AppError carries a machine-readable code, a message, optional details
// and a cause, and maps to a process exit code for the CLI.
package errors
