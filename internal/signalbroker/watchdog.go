// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/rewind/internal/ctxlog"
)

// Watch reads sigCh until the second signal of a kind arrives, then calls cancel.
// It also returns when sigCh is closed or ctx is done.
func Watch(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc) {
	logger := ctxlog.Logger(ctx)
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, dup := seen[sig]; dup {
				logger.Warn("second signal received, cancelling", "signal", sig.String())
				cancel()

				return
			}

			logger.Warn("signal received, send again to cancel running actions", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
