// SPDX-FileCopyrightText: 2025 The sandfs authors
//
// SPDX-License-Identifier: MIT

// Package sandfs provides an in-memory hierarchical virtual filesystem.
//
// It emulates a POSIX-like file tree entirely in managed memory, with no
// dependency on a host operating system. It is meant as the storage
// substrate for sandboxed execution environments like browser tabs, test
// harnesses and scripting sandboxes that want to present code with a
// conventional filesystem API.
//
// All operations are synchronous and complete in time proportional to the
// data they touch. A single [FS] instance is safe for concurrent use, it is
// guarded by one lock for the whole structure. Multiple instances are fully
// independent, so isolated test fixtures and multi-tenant sandboxes can
// each own their own tree.
//
// Callers never share buffers with the filesystem. [FS.ReadFile] returns a
// copy of the stored content and [FS.WriteFile] stores a copy of its input,
// so mutating a buffer on either side of the boundary cannot corrupt the
// other side.
//
// [FS.IOFS] exposes a read-only [io/fs.FS] view, so consumers can use
// [io/fs.WalkDir], [io/fs.ReadFile] and friends directly.
//
// Failures are reported as a [PathError] wrapping one of the [Errno] kinds
// [ENOENT], [ENOTDIR], [ENOTEMPTY], [EPERM], [EISDIR] or [EINVAL], so
// callers branch on the kind with [errors.Is] instead of parsing message
// text.
package sandfs
