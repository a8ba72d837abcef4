// SPDX-FileCopyrightText: 2025 The sandfs authors
//
// SPDX-License-Identifier: MIT

package sandfs

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"time"

	"github.com/sandfs/sandfs/vfspath"
)

// Synthetic modes for the io/fs view. The filesystem itself has no notion
// of permission bits.
const (
	ioFileMode = fs.FileMode(0o644)
	ioDirMode  = fs.ModeDir | 0o755
)

var (
	_ fs.FS         = (*ioFS)(nil)
	_ fs.ReadDirFS  = (*ioFS)(nil)
	_ fs.ReadFileFS = (*ioFS)(nil)
	_ fs.StatFS     = (*ioFS)(nil)
)

// IOFS returns a read-only [io/fs.FS] view of the filesystem.
//
// Names follow the io/fs convention: slash separated, no leading separator,
// "." for the root. This lets hosting runtimes feed the tree directly into
// [io/fs.WalkDir], [io/fs.ReadFile], [testing/fstest.TestFS] and anything
// else that consumes an [io/fs.FS].
func (fsys *FS) IOFS() fs.FS {
	return &ioFS{fsys}
}

type ioFS struct {
	fsys *FS
}

// vfsName maps an io/fs name onto the canonical path used by the
// underlying tree.
func vfsName(name string) (string, bool) {
	if !fs.ValidPath(name) {
		return "", false
	}

	if name == "." {
		return vfspath.Root, true
	}

	return vfspath.Root + name, true
}

// Open opens the named file or directory.
func (iofsys *ioFS) Open(name string) (fs.File, error) {
	vname, ok := vfsName(name)
	if !ok {
		return nil, &PathError{
			Op:   "open",
			Path: name,
			Err:  EINVAL,
		}
	}

	info, err := iofsys.fsys.Stat(vname)
	if err != nil {
		return nil, &PathError{
			Op:   "open",
			Path: name,
			Err:  ENOENT,
		}
	}

	if info.IsDir() {
		entries, err := iofsys.ReadDir(name)
		if err != nil {
			return nil, err
		}

		return &ioDir{
			info:    fileInfo{name: path.Base(name), mode: ioDirMode},
			entries: entries,
		}, nil
	}

	data, err := iofsys.fsys.ReadFile(vname)
	if err != nil {
		return nil, &PathError{
			Op:   "open",
			Path: name,
			Err:  ENOENT,
		}
	}

	return &ioFile{
		info: fileInfo{
			name: path.Base(name),
			size: int64(len(data)),
			mode: ioFileMode,
		},
		reader: bytes.NewReader(data),
	}, nil
}

// ReadDir implements [fs.ReadDirFS].
func (iofsys *ioFS) ReadDir(name string) ([]fs.DirEntry, error) {
	vname, ok := vfsName(name)
	if !ok {
		return nil, &PathError{
			Op:   "readdir",
			Path: name,
			Err:  EINVAL,
		}
	}

	names, err := iofsys.fsys.ReadDir(vname)
	if err != nil {
		return nil, &PathError{
			Op:   "readdir",
			Path: name,
			Err:  ENOTDIR,
		}
	}

	entries := make([]fs.DirEntry, 0, len(names))

	for _, child := range names {
		info, err := iofsys.fsys.Stat(vfspath.Join(vname, child))
		if err != nil {
			return nil, &PathError{
				Op:   "readdir",
				Path: name,
				Err:  ENOENT,
			}
		}

		mode := ioFileMode
		if info.IsDir() {
			mode = ioDirMode
		}

		entries = append(entries, &fileInfo{
			name: child,
			size: info.Size,
			mode: mode,
		})
	}

	return entries, nil
}

// ReadFile implements [fs.ReadFileFS].
func (iofsys *ioFS) ReadFile(name string) ([]byte, error) {
	vname, ok := vfsName(name)
	if !ok {
		return nil, &PathError{
			Op:   "readfile",
			Path: name,
			Err:  EINVAL,
		}
	}

	data, err := iofsys.fsys.ReadFile(vname)
	if err != nil {
		return nil, &PathError{
			Op:   "readfile",
			Path: name,
			Err:  ENOENT,
		}
	}

	return data, nil
}

// Stat implements [fs.StatFS].
func (iofsys *ioFS) Stat(name string) (fs.FileInfo, error) {
	vname, ok := vfsName(name)
	if !ok {
		return nil, &PathError{
			Op:   "stat",
			Path: name,
			Err:  EINVAL,
		}
	}

	info, err := iofsys.fsys.Stat(vname)
	if err != nil {
		return nil, &PathError{
			Op:   "stat",
			Path: name,
			Err:  ENOENT,
		}
	}

	mode := ioFileMode
	if info.IsDir() {
		mode = ioDirMode
	}

	return &fileInfo{
		name: path.Base(name),
		size: info.Size,
		mode: mode,
	}, nil
}

var (
	_ fs.FileInfo = (*fileInfo)(nil)
	_ fs.DirEntry = (*fileInfo)(nil)
)

type fileInfo struct {
	name string
	size int64
	mode fs.FileMode
}

func (i *fileInfo) Name() string       { return i.name }
func (i *fileInfo) Size() int64        { return i.size }
func (i *fileInfo) Mode() fs.FileMode  { return i.mode }
func (i *fileInfo) ModTime() time.Time { return time.Time{} }
func (i *fileInfo) IsDir() bool        { return i.mode.IsDir() }
func (i *fileInfo) Sys() any           { return nil }
func (i *fileInfo) Type() fs.FileMode  { return i.mode.Type() }
func (i *fileInfo) String() string     { return fs.FormatFileInfo(i) }

func (i *fileInfo) Info() (fs.FileInfo, error) {
	return i, nil
}

var _ fs.File = (*ioFile)(nil)

type ioFile struct {
	info   fileInfo
	reader *bytes.Reader
}

// Stat implements [fs.File].
func (f *ioFile) Stat() (fs.FileInfo, error) {
	return &f.info, nil
}

// Read implements [fs.File].
func (f *ioFile) Read(b []byte) (int, error) {
	return f.reader.Read(b) //nolint:wrapcheck
}

// Close implements [fs.File].
func (f *ioFile) Close() error {
	return nil
}

var (
	_ fs.File        = (*ioDir)(nil)
	_ fs.ReadDirFile = (*ioDir)(nil)
)

type ioDir struct {
	info    fileInfo
	entries []fs.DirEntry
	offset  int
}

// Stat implements [fs.File].
func (d *ioDir) Stat() (fs.FileInfo, error) {
	return &d.info, nil
}

// Read implements [fs.File]. Directories are not readable.
func (d *ioDir) Read([]byte) (int, error) {
	return 0, &PathError{
		Op:   "read",
		Path: d.info.name,
		Err:  EISDIR,
	}
}

// Close implements [fs.File].
func (d *ioDir) Close() error {
	return nil
}

// ReadDir implements [fs.ReadDirFile].
func (d *ioDir) ReadDir(count int) ([]fs.DirEntry, error) {
	start := d.offset
	end := len(d.entries)
	available := end - start

	if available == 0 && count > 0 {
		return nil, io.EOF
	}

	if count > 0 && available > count {
		end = start + count
	}

	d.offset = end

	return d.entries[start:end], nil
}
