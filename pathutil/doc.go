// Copyright (c) PrismLauncher contributors. All rights reserved.
// Licensed under the MIT License.

// Package pathutil provides string-level path helpers: joining with
// canonicalization, normalization relative to the working directory,
// filename sanitization, unique directory name probing and executable
// resolution.
//
// All functions operate on paths using the platform separator rules of the
// host OS and never touch the filesystem except where documented
// (UniqueDirName probes for existing entries, ResolveExecutable consults
// the executable search path).
package pathutil
