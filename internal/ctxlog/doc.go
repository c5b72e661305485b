// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a slog logger in a context.Context.
//
// The level comes from the environment variable named after the executable,
// e.g. REWIND_LOG_LEVEL for the rewind binary, and defaults to WARN.
// Commands record their position in a command tree with WithCommand so that
// messages from nested steps read "command=root > child > leaf".
//
// The default handler is PrettyHandler, which writes one human-readable line per record.
package ctxlog
