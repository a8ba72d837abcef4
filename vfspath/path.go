// SPDX-FileCopyrightText: 2025 The sandfs authors
//
// SPDX-License-Identifier: MIT

package vfspath

import "strings"

const (
	// Separator is the path separator character. It is the same on all
	// platforms since virtual paths never reach a host filesystem.
	Separator = '/'

	// Root is the canonical path of the filesystem root.
	Root = "/"
)

// Clean returns the canonical absolute form of path.
//
// The result always begins with [Separator], contains no "." or ".."
// segments, no repeated separators and no trailing separator except for the
// root itself. A missing leading separator is tolerated, so "a/b" and "/a/b"
// clean to the same key. ".." segments resolve against the path accumulated
// so far and saturate at the root instead of escaping it. An empty input
// cleans to [Root].
func Clean(path string) string {
	var segments []string

	for _, segment := range strings.Split(path, string(Separator)) {
		switch segment {
		case "", ".":
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, segment)
		}
	}

	if len(segments) == 0 {
		return Root
	}

	return Root + strings.Join(segments, string(Separator))
}

// Dir returns the canonical parent path of path. The parent of the root is
// the root itself.
func Dir(path string) string {
	path = Clean(path)

	idx := strings.LastIndexByte(path, Separator)
	if idx == 0 {
		return Root
	}

	return path[:idx]
}

// Base returns the last segment of path. The base of the root is [Root].
func Base(path string) string {
	path = Clean(path)
	if path == Root {
		return Root
	}

	idx := strings.LastIndexByte(path, Separator)

	return path[idx+1:]
}

// Split splits path into its parent directory and its last segment. The
// root splits into the root and an empty name.
func Split(path string) (dir, name string) {
	path = Clean(path)
	if path == Root {
		return Root, ""
	}

	idx := strings.LastIndexByte(path, Separator)
	if idx == 0 {
		return Root, path[1:]
	}

	return path[:idx], path[idx+1:]
}

// Join joins any number of path elements into a single canonical path.
// Empty elements are ignored.
func Join(elem ...string) string {
	return Clean(strings.Join(elem, string(Separator)))
}
