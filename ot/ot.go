//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package ot defines the 1-out-of-4 bit oblivious transfer oracle the
// GMW core's AND/OR protocols consume, plus an in-process simulated
// implementation. The OT primitive itself — how a sender and receiver
// who cannot otherwise communicate realize this guarantee — is an
// external collaborator; the core only depends on this interface.
package ot

import (
	"context"
)

// PartyID is a party index in [0, n). Defined here rather than
// imported from share to keep this package free of a dependency on
// the share layer: the oracle is keyed by party identity alone.
type PartyID int

// Oracle is a 1-out-of-4 bit OT keyed by the ordered (sender,
// receiver) pair. Send is the sender's half: it hands over the four
// candidate messages. Receive is the receiver's half: it supplies a
// 2-bit choice index and gets back messages[choice]. The oracle
// guarantees the sender learns nothing of choice and the receiver
// learns nothing of the other three messages; a concrete
// network-backed implementation is the only place that guarantee
// must actually be enforced cryptographically, not the caller's.
type Oracle interface {
	// Send transfers the sender's four candidate messages for the
	// transfer identified by (sender, receiver). It does not wait for
	// the matching Receive to collect them (gates.AND calls Send and
	// then Receive from the same goroutine); it fails if ctx is done
	// before the messages can be deposited.
	Send(ctx context.Context, sender, receiver PartyID, messages [4]byte) error

	// Receive collects the message the matching Send indexed by
	// choice (which must be in [0,4)). It blocks until the matching
	// Send has deposited its messages, or ctx is done.
	Receive(ctx context.Context, sender, receiver PartyID, choice byte) (byte, error)
}
