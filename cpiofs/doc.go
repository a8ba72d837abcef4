// SPDX-FileCopyrightText: 2025 The sandfs authors
//
// SPDX-License-Identifier: MIT

// Package cpiofs moves whole [sandfs.FS] trees across the byte-stream
// boundary. It serializes a tree into a cpio archive and rebuilds a tree
// from one, so hosting runtimes can hand a sandbox filesystem to any
// collaborator that speaks the archive format.
package cpiofs
