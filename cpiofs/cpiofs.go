// SPDX-FileCopyrightText: 2025 The sandfs authors
//
// SPDX-License-Identifier: MIT

package cpiofs

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cavaliergopher/cpio"
	"github.com/sandfs/sandfs"
	"github.com/sandfs/sandfs/vfspath"
)

const numLinks = 2

// Archive modes are synthetic, the tree stores no permission bits.
const (
	dirMode  = cpio.TypeDir | 0o755
	fileMode = cpio.TypeReg | 0o644
)

// Write serializes the whole tree of fsys into a cpio archive written to w.
//
// Directories are written before files and in sorted path order, so every
// entry's parent precedes it in the archive. The root directory itself is
// implicit and not written.
func Write(w io.Writer, fsys *sandfs.FS) error {
	writer := cpio.NewWriter(w)

	for _, dir := range fsys.Dirs() {
		if dir == vfspath.Root {
			continue
		}

		header := &cpio.Header{
			Name:  archiveName(dir),
			Mode:  dirMode,
			Links: numLinks,
		}

		if err := writer.WriteHeader(header); err != nil {
			return fmt.Errorf("write header for %s: %w", dir, err)
		}
	}

	for _, name := range fsys.Files() {
		data, err := fsys.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read %s: %w", name, err)
		}

		header := &cpio.Header{
			Name: archiveName(name),
			Mode: fileMode,
			Size: int64(len(data)),
		}

		if err := writer.WriteHeader(header); err != nil {
			return fmt.Errorf("write header for %s: %w", name, err)
		}

		if _, err := writer.Write(data); err != nil {
			return fmt.Errorf("write body for %s: %w", name, err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}

	return nil
}

// Read rebuilds a [sandfs.FS] from the cpio archive read from r.
//
// Directory and regular file entries are materialized, entry kinds the tree
// cannot represent (symbolic links, device nodes) are skipped. Missing
// parent directories are created, so archives without explicit directory
// entries load fine.
func Read(r io.Reader) (*sandfs.FS, error) {
	fsys := sandfs.New()
	reader := cpio.NewReader(r)

	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return fsys, nil
		}

		if err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}

		switch {
		case header.Mode.IsDir():
			if err := fsys.MkdirAll(header.Name); err != nil {
				return nil, fmt.Errorf("mkdir %s: %w", header.Name, err)
			}
		case header.Mode.IsRegular():
			data, err := io.ReadAll(reader)
			if err != nil {
				return nil, fmt.Errorf("read body for %s: %w", header.Name, err)
			}

			if err := fsys.WriteFile(header.Name, data); err != nil {
				return nil, fmt.Errorf("write %s: %w", header.Name, err)
			}
		}
	}
}

func archiveName(path string) string {
	return strings.TrimPrefix(path, vfspath.Root)
}
