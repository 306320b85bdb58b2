// convert.go — classification shims from platform errors to domain errors.
//
// Scope:
//   - Pure classification tables, no algorithmic content: map well-known
//     platform failure modes onto canned (description, advice) pairs with the
//     appropriate Kind.
//   - Matching uses errors.Is so wrapped platform errors classify the same as
//     bare ones.
package humane

import (
	"errors"
	"io/fs"
	"syscall"
)

// FromIO converts a platform I/O error into a domain error.
//
// Failure modes a user can act on (missing files, permissions, collisions,
// busy addresses, non-empty directories) become user errors with targeted
// advice; everything else becomes a system error. Returns nil when err is nil.
func FromIO(err error) *Error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		return WrapUser(
			err,
			"Could not find the requested file.",
			"Check that the file path you provided is correct and try again.",
		)
	case errors.Is(err, fs.ErrPermission):
		return WrapUser(
			err,
			"Permission denied when trying to access the requested resource.",
			"Check the file permissions and ensure that the application has access to the resource.",
		)
	// ENOTEMPTY must precede fs.ErrExist: syscall.Errno.Is reports ENOTEMPTY
	// as matching fs.ErrExist, which would swallow this row.
	case errors.Is(err, syscall.ENOTEMPTY):
		return WrapUser(
			err,
			"The directory you are trying to remove is not empty.",
			"Delete all files and subdirectories within the directory before attempting to remove it.",
		)
	case errors.Is(err, fs.ErrExist):
		return WrapUser(
			err,
			"The file or directory you are trying to create already exists.",
			"Choose a different file name or delete the existing file and try again.",
		)
	case errors.Is(err, syscall.EADDRINUSE):
		return WrapUser(
			err,
			"The network address you are trying to bind to is already in use.",
			"Make sure no other application is using the same address and try again.",
		)
	default:
		return WrapSystem(
			err,
			"An internal error occurred which we could not recover from.",
			"Please read the internal error below and decide if there is something you can do to fix the problem, or report it to us on GitHub.",
		)
	}
}

// FromEncoding converts a text-decoding failure into a user error with fixed
// advice. Returns nil when err is nil.
func FromEncoding(err error) *Error {
	if err == nil {
		return nil
	}
	return WrapUser(
		err,
		"We could not parse the UTF-8 content you provided.",
		"Make sure that you are providing us with content which is valid UTF-8.",
	)
}
