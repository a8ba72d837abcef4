// SPDX-FileCopyrightText: 2025 The sandfs authors
//
// SPDX-License-Identifier: MIT

package rndtree

import (
	"fmt"
	"strings"

	"github.com/valyala/fastrand"

	"github.com/sandfs/sandfs"
	"github.com/sandfs/sandfs/vfspath"
)

const (
	minNameLen = 3
	maxNameLen = 10
)

// OutOfRangeError is returned by [New] for an invalid parameter.
type OutOfRangeError string

func (e OutOfRangeError) Error() string {
	return string(e) + " parameter out of range"
}

// Params defines the shape of a generated tree.
type Params struct {
	// MaxDepth is the maximum directory nesting below the base (must be >= 1).
	MaxDepth int

	// MaxDirs is the maximum number of subdirectories per directory (must
	// be >= 1).
	MaxDirs int

	// MaxFiles is the maximum number of files per directory (must be >= 1).
	MaxFiles int

	// MaxFileSize is the maximum file content length in bytes (must be >= 1).
	MaxFileSize int

	// Seed seeds the generator. The same seed produces the same tree.
	Seed uint32
}

// Tree is a random tree generator. It records the canonical paths of
// everything it creates, so tests can verify them afterwards.
type Tree struct {
	params  Params
	rng     fastrand.RNG
	ordinal int

	// Dirs and Files list the paths created by [Tree.Generate].
	Dirs  []string
	Files []string
}

// New returns a new generator for the given parameters.
func New(params Params) (*Tree, error) {
	if params.MaxDepth < 1 {
		return nil, OutOfRangeError("depth")
	}

	if params.MaxDirs < 1 {
		return nil, OutOfRangeError("dirs")
	}

	if params.MaxFiles < 1 {
		return nil, OutOfRangeError("files")
	}

	if params.MaxFileSize < 1 {
		return nil, OutOfRangeError("file size")
	}

	tree := &Tree{params: params}
	tree.rng.Seed(params.Seed)

	return tree, nil
}

// Generate populates fsys with a random tree below base, creating base if
// necessary.
func (t *Tree) Generate(fsys *sandfs.FS, base string) error {
	base = vfspath.Clean(base)

	if err := fsys.MkdirAll(base); err != nil {
		return fmt.Errorf("create base: %w", err)
	}

	return t.generate(fsys, base, 1)
}

func (t *Tree) generate(fsys *sandfs.FS, parent string, depth int) error {
	numFiles := int(t.rng.Uint32n(uint32(t.params.MaxFiles))) + 1

	for range numFiles {
		path := vfspath.Join(parent, t.randName())

		data := make([]byte, t.rng.Uint32n(uint32(t.params.MaxFileSize))+1)
		for i := range data {
			data[i] = byte(t.rng.Uint32())
		}

		if err := fsys.WriteFile(path, data); err != nil {
			return fmt.Errorf("create file: %w", err)
		}

		t.Files = append(t.Files, path)
	}

	numDirs := int(t.rng.Uint32n(uint32(t.params.MaxDirs))) + 1

	for range numDirs {
		path := vfspath.Join(parent, t.randName())

		if err := fsys.MkdirAll(path); err != nil {
			return fmt.Errorf("create dir: %w", err)
		}

		t.Dirs = append(t.Dirs, path)

		if depth < t.params.MaxDepth {
			if err := t.generate(fsys, path, depth+1); err != nil {
				return err
			}
		}
	}

	return nil
}

// randName returns a random name with an ordinal prefix. The ordinal keeps
// names unique within the whole tree.
func (t *Tree) randName() string {
	t.ordinal++

	length := minNameLen + int(t.rng.Uint32n(maxNameLen-minNameLen+1))

	var name strings.Builder

	for range length {
		name.WriteByte(byte('a' + t.rng.Uint32n(26)))
	}

	return fmt.Sprintf("%04d-%s", t.ordinal, name.String())
}
