// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package signalbroker relays termination signals to the running command tree.
// By default it listens for os.Interrupt, SIGINT, SIGTERM and SIGQUIT.
//
// The first signal of a kind is only reported, so the step in flight can settle
// and the tree can be rolled back or undone. The second signal of the same kind
// cancels the context, which makes running shell actions fail.
package signalbroker

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-FFFFFF/rewind/internal/ctxlog"
)

var termSignals = []os.Signal{
	syscall.SIGINT,
	syscall.SIGTERM,
	syscall.SIGQUIT,
	os.Interrupt,
}

// New starts relaying sigs, or the termination signals when none are given.
// Call the returned function to stop relaying.
func New(ctx context.Context, sigs ...os.Signal) (chan os.Signal, func()) {
	ch := make(chan os.Signal, 1)

	if len(sigs) == 0 {
		sigs = termSignals
	}

	ctxlog.Debug(ctx, "creating signal broker", "signals", sigs)
	signal.Notify(ch, sigs...)

	return ch, func() {
		signal.Stop(ch)
	}
}
