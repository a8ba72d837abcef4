// SPDX-FileCopyrightText: 2025 The sandfs authors
//
// SPDX-License-Identifier: MIT

// Package rndtree generates random directory and file trees in a
// [sandfs.FS]. It is meant for stress and property tests that need many
// entries without hand-writing fixtures. Generation is deterministic for a
// given seed.
package rndtree
