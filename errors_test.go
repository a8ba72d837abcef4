// SPDX-FileCopyrightText: 2025 The sandfs authors
//
// SPDX-License-Identifier: MIT

package sandfs_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/sandfs/sandfs"
	"github.com/stretchr/testify/assert"
)

func TestErrnoError(t *testing.T) {
	tests := []struct {
		errno    sandfs.Errno
		expected string
	}{
		{sandfs.ENOENT, "no such file or directory"},
		{sandfs.ENOTDIR, "not a directory"},
		{sandfs.ENOTEMPTY, "directory not empty"},
		{sandfs.EPERM, "operation not permitted"},
		{sandfs.EISDIR, "is a directory"},
		{sandfs.EINVAL, "invalid argument"},
		{sandfs.Errno(99), "errno 99"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.errno.Error())
		})
	}
}

func TestErrnoIs(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		assert assert.BoolAssertionFunc
	}{
		{
			name:   "ENOENT is fs.ErrNotExist",
			err:    sandfs.ENOENT,
			target: fs.ErrNotExist,
			assert: assert.True,
		},
		{
			name:   "EPERM is fs.ErrPermission",
			err:    sandfs.EPERM,
			target: fs.ErrPermission,
			assert: assert.True,
		},
		{
			name:   "EINVAL is fs.ErrInvalid",
			err:    sandfs.EINVAL,
			target: fs.ErrInvalid,
			assert: assert.True,
		},
		{
			name:   "ENOTDIR is not fs.ErrNotExist",
			err:    sandfs.ENOTDIR,
			target: fs.ErrNotExist,
			assert: assert.False,
		},
		{
			name:   "kinds are distinct",
			err:    sandfs.ENOENT,
			target: sandfs.ENOTDIR,
			assert: assert.False,
		},
		{
			name: "wrapped in PathError",
			err: &sandfs.PathError{
				Op:   "stat",
				Path: "/missing",
				Err:  sandfs.ENOENT,
			},
			target: sandfs.ENOENT,
			assert: assert.True,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.assert(t, errors.Is(tt.err, tt.target))
		})
	}
}
