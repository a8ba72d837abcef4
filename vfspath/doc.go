// SPDX-FileCopyrightText: 2025 The sandfs authors
//
// SPDX-License-Identifier: MIT

// Package vfspath implements path handling for the virtual filesystem.
//
// Paths are pure string keys. They never touch the host filesystem and do
// not depend on the platform path separator. The canonical form produced by
// [Clean] is what the filesystem uses as lookup key for every entry.
package vfspath
