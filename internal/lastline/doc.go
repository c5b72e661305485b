// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package lastline provides a writer that passes data through while remembering
// the last non-blank line written. The shell behavior uses it to report the final
// line of a failed command's error output.
package lastline
