// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package color wraps strings in ANSI escape codes when color output is enabled.
// NO_COLOR disables it, FORCE_COLOR enables it, otherwise it follows terminal detection.
package color
