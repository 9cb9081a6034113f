package blink

import "github.com/pkg/errors"

// RunLoop retrieves, translates and dispatches messages until the quit
// sentinel arrives. Retrieval blocks while no message is pending; this is
// the only point where the thread suspends. Each dispatch is synchronous,
// the next message is not retrieved before the procedure returns, so a slow
// handler delays everything behind it.
//
// RunLoop returns nil on the quit sentinel. A failed retrieval ends the
// loop with the wrapped EventRetrievalError; there is no way to recover
// once retrieval itself fails.
func RunLoop(sys System) error {
	for {
		msg, ok, err := sys.NextMessage()
		if err != nil {
			return errors.Wrap(err, "retrieving message")
		}
		if !ok {
			return nil
		}
		sys.Translate(&msg)
		sys.Dispatch(&msg)
	}
}
