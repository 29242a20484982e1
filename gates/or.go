//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package gates

import (
	"context"
	"fmt"
	"io"

	"github.com/markkurossi/gmw-core/circuit"
	"github.com/markkurossi/gmw-core/ot"
	"github.com/markkurossi/gmw-core/share"
)

// OR computes c := a OR b by De Morgan's law: a OR b = NOT(NOT(a) AND
// NOT(b)). It allocates three scratch wires from *next (which the
// driver seeds at one past the circuit's highest declared id and
// advances here), so OR costs exactly the OT round trips of one AND
// gate plus three local NOTs.
func OR(ctx context.Context, oracle ot.Oracle, rng io.Reader, stores []share.Store,
	id, a, b circuit.WireID, next *circuit.WireID, verbose bool) error {

	notA := allocScratch(next)
	notB := allocScratch(next)
	andNots := allocScratch(next)

	if err := NOT(stores, notA, a); err != nil {
		return fmt.Errorf("gates: OR: %w", err)
	}
	if err := NOT(stores, notB, b); err != nil {
		return fmt.Errorf("gates: OR: %w", err)
	}
	if err := AND(ctx, oracle, rng, stores, andNots, notA, notB, verbose); err != nil {
		return fmt.Errorf("gates: OR: %w", err)
	}
	if err := NOT(stores, id, andNots); err != nil {
		return fmt.Errorf("gates: OR: %w", err)
	}
	return nil
}

func allocScratch(next *circuit.WireID) circuit.WireID {
	id := *next
	*next++
	return id
}
