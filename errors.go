// SPDX-FileCopyrightText: 2025 The sandfs authors
//
// SPDX-License-Identifier: MIT

package sandfs

import (
	"io/fs"
	"strconv"
)

// Errno is the closed set of failure kinds a [FS] operation can report.
//
// Every failure is a deterministic function of the current tree state and
// the requested path, none is transient. A failed operation means the
// precondition genuinely does not hold and must be corrected by the caller.
type Errno uint32

const (
	// ENOENT means no entry exists at the given path.
	ENOENT Errno = iota + 1

	// ENOTDIR means a directory was expected but something else was found.
	ENOTDIR

	// ENOTEMPTY means a non-recursive removal hit a non-empty directory.
	ENOTEMPTY

	// EPERM means the operation is forbidden by policy, like removing the
	// root directory.
	EPERM

	// EISDIR means a regular file was expected but the path is a directory.
	EISDIR

	// EINVAL means the combination of arguments is invalid, like renaming a
	// directory into its own subtree.
	EINVAL
)

var errText = map[Errno]string{
	ENOENT:    "no such file or directory",
	ENOTDIR:   "not a directory",
	ENOTEMPTY: "directory not empty",
	EPERM:     "operation not permitted",
	EISDIR:    "is a directory",
	EINVAL:    "invalid argument",
}

func (e Errno) Error() string {
	s, ok := errText[e]
	if !ok {
		return "errno " + strconv.Itoa(int(e))
	}

	return s
}

// Is maps the kinds onto their [io/fs] counterparts, so callers can branch
// with [errors.Is] on either the [Errno] or the generic sentinel.
func (e Errno) Is(target error) bool {
	switch target {
	case fs.ErrNotExist:
		return e == ENOENT
	case fs.ErrPermission:
		return e == EPERM
	case fs.ErrInvalid:
		return e == EINVAL
	default:
		return false
	}
}

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError
