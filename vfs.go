// SPDX-FileCopyrightText: 2025 The sandfs authors
//
// SPDX-License-Identifier: MIT

package sandfs

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/sandfs/sandfs/vfspath"
)

// FS is an in-memory hierarchical filesystem.
//
// Entries are keyed by their canonical path, regular files in one map and
// directories in another. The two namespaces are disjoint: no path is ever
// both a file and a directory. Every ancestor of an existing entry is a
// registered directory, and the root directory always exists.
//
// The zero value is not usable, use [New] or [NewFromMap].
type FS struct {
	mu    sync.RWMutex
	files map[string][]byte
	dirs  map[string]struct{}
}

// New creates a new empty [FS] containing only the root directory.
func New() *FS {
	return &FS{
		files: make(map[string][]byte),
		dirs:  map[string]struct{}{vfspath.Root: {}},
	}
}

// NewFromMap creates a new [FS] seeded with the given path to content
// mapping. Paths are normalized and ancestor directories are created.
// Seeds are applied in sorted path order, so conflicts between seed entries
// are reported deterministically.
func NewFromMap(files map[string][]byte) (*FS, error) {
	fsys := New()

	for _, name := range slices.Sorted(maps.Keys(files)) {
		err := fsys.WriteFile(name, files[name])
		if err != nil {
			return nil, err
		}
	}

	return fsys, nil
}

// ReadFile returns a copy of the content of the regular file at name.
//
// It returns a [PathError] wrapping [ENOENT] if no file exists at that
// path.
func (fsys *FS) ReadFile(name string) ([]byte, error) {
	name = vfspath.Clean(name)

	fsys.mu.RLock()
	defer fsys.mu.RUnlock()

	data, exists := fsys.files[name]
	if !exists {
		return nil, &PathError{
			Op:   "readfile",
			Path: name,
			Err:  ENOENT,
		}
	}

	return slices.Clone(data), nil
}

// WriteFile stores a copy of data as the regular file at name, overwriting
// any existing file there. Missing ancestor directories are created.
//
// It returns a [PathError] wrapping [EISDIR] if name is a registered
// directory, or [ENOTDIR] if an ancestor of name is a regular file. On
// failure the tree is left unmodified.
func (fsys *FS) WriteFile(name string, data []byte) error {
	name = vfspath.Clean(name)

	fsys.mu.Lock()
	defer fsys.mu.Unlock()

	if _, exists := fsys.dirs[name]; exists {
		return &PathError{
			Op:   "writefile",
			Path: name,
			Err:  EISDIR,
		}
	}

	if err := fsys.checkParents(name); err != nil {
		return &PathError{
			Op:   "writefile",
			Path: name,
			Err:  err,
		}
	}

	fsys.materializeParents(name)
	fsys.files[name] = slices.Clone(data)

	return nil
}

// MkdirAll ensures that name and all its ancestors exist as directories.
// It is idempotent.
//
// It returns a [PathError] wrapping [ENOTDIR] if name or one of its
// ancestors is a regular file.
func (fsys *FS) MkdirAll(name string) error {
	name = vfspath.Clean(name)

	fsys.mu.Lock()
	defer fsys.mu.Unlock()

	err := fsys.mkdirAll(name)
	if err != nil {
		return &PathError{
			Op:   "mkdir",
			Path: name,
			Err:  err,
		}
	}

	return nil
}

func (fsys *FS) mkdirAll(name string) error {
	if _, exists := fsys.files[name]; exists {
		return ENOTDIR
	}

	if err := fsys.checkParents(name); err != nil {
		return err
	}

	fsys.materializeParents(name)
	fsys.dirs[name] = struct{}{}

	return nil
}

// ReadDir returns the sorted, deduplicated names of the direct children of
// the directory at name.
//
// It returns a [PathError] wrapping [ENOTDIR] if name is not a registered
// directory.
func (fsys *FS) ReadDir(name string) ([]string, error) {
	name = vfspath.Clean(name)

	fsys.mu.RLock()
	defer fsys.mu.RUnlock()

	if _, exists := fsys.dirs[name]; !exists {
		return nil, &PathError{
			Op:   "readdir",
			Path: name,
			Err:  ENOTDIR,
		}
	}

	prefix := name
	if prefix != vfspath.Root {
		prefix += string(vfspath.Separator)
	}

	children := make(map[string]struct{})

	for path := range fsys.files {
		if child, ok := childName(path, prefix); ok {
			children[child] = struct{}{}
		}
	}

	for path := range fsys.dirs {
		if child, ok := childName(path, prefix); ok {
			children[child] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(children)), nil
}

// Remove removes the regular file or empty directory at name.
//
// It returns a [PathError] wrapping [ENOENT] if name is neither a file nor
// a directory, [EPERM] for the root directory and [ENOTEMPTY] for a
// non-empty directory.
func (fsys *FS) Remove(name string) error {
	return fsys.remove(name, false, "remove")
}

// RemoveAll removes the regular file or directory subtree at name.
//
// It returns a [PathError] wrapping [ENOENT] if name is neither a file nor
// a directory and [EPERM] for the root directory. Unlike os.RemoveAll, a
// missing entry is an error: failures here are deterministic preconditions,
// not races against other processes.
func (fsys *FS) RemoveAll(name string) error {
	return fsys.remove(name, true, "removeall")
}

func (fsys *FS) remove(name string, recursive bool, op string) error {
	name = vfspath.Clean(name)

	fsys.mu.Lock()
	defer fsys.mu.Unlock()

	err := fsys.removeEntry(name, recursive)
	if err != nil {
		return &PathError{
			Op:   op,
			Path: name,
			Err:  err,
		}
	}

	return nil
}

func (fsys *FS) removeEntry(name string, recursive bool) error {
	if _, exists := fsys.files[name]; exists {
		delete(fsys.files, name)
		return nil
	}

	if _, exists := fsys.dirs[name]; !exists {
		return ENOENT
	}

	if name == vfspath.Root {
		return EPERM
	}

	prefix := name + string(vfspath.Separator)

	var subFiles, subDirs []string

	for path := range fsys.files {
		if strings.HasPrefix(path, prefix) {
			subFiles = append(subFiles, path)
		}
	}

	for path := range fsys.dirs {
		if strings.HasPrefix(path, prefix) {
			subDirs = append(subDirs, path)
		}
	}

	if !recursive && len(subFiles)+len(subDirs) > 0 {
		return ENOTEMPTY
	}

	for _, path := range subFiles {
		delete(fsys.files, path)
	}

	for _, path := range subDirs {
		delete(fsys.dirs, path)
	}

	delete(fsys.dirs, name)

	return nil
}

// Rename moves the file or directory subtree at from to to. An existing
// entry at to is replaced entirely, like POSIX rename. Missing ancestor
// directories of to are created.
//
// It returns a [PathError] wrapping [ENOENT] if from does not exist,
// [EINVAL] if to is nested under from, [ENOTDIR] if an ancestor of to is a
// regular file and [EPERM] if the rename would remove or replace the root.
// On failure the tree is left unmodified.
func (fsys *FS) Rename(from, to string) error {
	from = vfspath.Clean(from)
	to = vfspath.Clean(to)

	fsys.mu.Lock()
	defer fsys.mu.Unlock()

	err := fsys.rename(from, to)
	if err != nil {
		path := to
		if err == ENOENT { //nolint:errorlint // always a bare Errno here
			path = from
		}

		return &PathError{
			Op:   "rename",
			Path: path,
			Err:  err,
		}
	}

	return nil
}

func (fsys *FS) rename(from, to string) error {
	if data, exists := fsys.files[from]; exists {
		if from == to {
			return nil
		}

		return fsys.renameFile(from, to, data)
	}

	if _, exists := fsys.dirs[from]; !exists {
		return ENOENT
	}

	if from == to {
		return nil
	}

	if from == vfspath.Root {
		return EPERM
	}

	return fsys.renameDir(from, to)
}

func (fsys *FS) renameFile(from, to string, data []byte) error {
	if err := fsys.checkParents(to); err != nil {
		return err
	}

	if fsys.exists(to) {
		if err := fsys.removeEntry(to, true); err != nil {
			return err
		}
	}

	fsys.materializeParents(to)
	fsys.files[to] = data
	delete(fsys.files, from)

	return nil
}

// renameDir moves a whole subtree. The subtree is enumerated from a
// snapshot before any mutation, then all new entries are inserted, then all
// old ones removed. Old paths that map onto themselves survive the final
// deletion pass untouched.
func (fsys *FS) renameDir(from, to string) error {
	prefix := from + string(vfspath.Separator)

	if strings.HasPrefix(to, prefix) {
		return EINVAL
	}

	if err := fsys.checkParents(to); err != nil {
		return err
	}

	newFiles := make(map[string][]byte)
	newDirs := map[string]struct{}{to: {}}

	oldFiles := make([]string, 0)
	oldDirs := []string{from}

	for path, data := range fsys.files {
		if strings.HasPrefix(path, prefix) {
			newFiles[to+path[len(from):]] = data
			oldFiles = append(oldFiles, path)
		}
	}

	for path := range fsys.dirs {
		if strings.HasPrefix(path, prefix) {
			newDirs[to+path[len(from):]] = struct{}{}
			oldDirs = append(oldDirs, path)
		}
	}

	if fsys.exists(to) {
		if err := fsys.removeEntry(to, true); err != nil {
			return err
		}
	}

	fsys.materializeParents(to)
	maps.Copy(fsys.dirs, newDirs)
	maps.Copy(fsys.files, newFiles)

	for _, path := range oldFiles {
		if _, moved := newFiles[path]; !moved {
			delete(fsys.files, path)
		}
	}

	for _, path := range oldDirs {
		if _, moved := newDirs[path]; !moved {
			delete(fsys.dirs, path)
		}
	}

	return nil
}

// Stat returns the [FileInfo] of the entry at name.
//
// It returns a [PathError] wrapping [ENOENT] if name is neither a file nor
// a directory.
func (fsys *FS) Stat(name string) (FileInfo, error) {
	name = vfspath.Clean(name)

	fsys.mu.RLock()
	defer fsys.mu.RUnlock()

	if data, exists := fsys.files[name]; exists {
		return FileInfo{
			Name: vfspath.Base(name),
			Size: int64(len(data)),
			Type: FileTypeRegular,
		}, nil
	}

	if _, exists := fsys.dirs[name]; exists {
		return FileInfo{
			Name: vfspath.Base(name),
			Type: FileTypeDirectory,
		}, nil
	}

	return FileInfo{}, &PathError{
		Op:   "stat",
		Path: name,
		Err:  ENOENT,
	}
}

// Files returns the canonical paths of all regular files, sorted.
func (fsys *FS) Files() []string {
	fsys.mu.RLock()
	defer fsys.mu.RUnlock()

	return slices.Sorted(maps.Keys(fsys.files))
}

// Dirs returns the canonical paths of all directories, sorted.
func (fsys *FS) Dirs() []string {
	fsys.mu.RLock()
	defer fsys.mu.RUnlock()

	return slices.Sorted(maps.Keys(fsys.dirs))
}

func (fsys *FS) exists(name string) bool {
	_, file := fsys.files[name]
	_, dir := fsys.dirs[name]

	return file || dir
}

// checkParents reports ENOTDIR if an ancestor of name is taken by a
// regular file. It never mutates the tree, so callers can fail before
// applying any part of an operation.
func (fsys *FS) checkParents(name string) error {
	for i := 1; i < len(name); i++ {
		if name[i] != vfspath.Separator {
			continue
		}

		if _, exists := fsys.files[name[:i]]; exists {
			return ENOTDIR
		}
	}

	return nil
}

// materializeParents registers every ancestor of name as a directory. Call
// checkParents first.
func (fsys *FS) materializeParents(name string) {
	for i := 1; i < len(name); i++ {
		if name[i] == vfspath.Separator {
			fsys.dirs[name[:i]] = struct{}{}
		}
	}
}

// childName returns the first path segment of path past prefix. The prefix
// must end with the separator.
func childName(path, prefix string) (string, bool) {
	if len(path) <= len(prefix) || !strings.HasPrefix(path, prefix) {
		return "", false
	}

	rest := path[len(prefix):]
	if i := strings.IndexByte(rest, vfspath.Separator); i >= 0 {
		rest = rest[:i]
	}

	return rest, true
}
