// SPDX-FileCopyrightText: 2025 The sandfs authors
//
// SPDX-License-Identifier: MIT

package sandfs

// FileType defines the type of an entry in the filesystem.
type FileType int

const (
	// FileTypeRegular is a regular file. It owns a byte buffer and its size
	// is the buffer length.
	FileTypeRegular FileType = iota

	// FileTypeDirectory is a directory. It owns no content and has size 0.
	FileTypeDirectory
)

func (t FileType) String() string {
	switch t {
	case FileTypeRegular:
		return "file"
	case FileTypeDirectory:
		return "dir"
	default:
		return "unknown"
	}
}

// FileInfo describes a single entry, as returned by [FS.Stat].
type FileInfo struct {
	// Name is the last segment of the entry's canonical path.
	Name string

	// Size is the content length in bytes for regular files and 0 for
	// directories.
	Size int64

	// Type is the kind of the entry.
	Type FileType
}

// IsDir reports whether the entry is a directory.
func (i FileInfo) IsDir() bool {
	return i.Type == FileTypeDirectory
}
