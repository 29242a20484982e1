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
	"github.com/markkurossi/text/superscript"
)

// AND computes c := a AND b via the pairwise cross-term OT protocol:
// each party computes its local term ai&bi alone, then for every
// unordered pair {i,j} with i<j, in lexicographic order, party i
// sends and party j receives over a 1-out-of-4 OT that splits the
// cross term xi*yj ^ xj*yi between them. This costs exactly
// n(n-1)/2 oracle round trips.
func AND(ctx context.Context, oracle ot.Oracle, rng io.Reader, stores []share.Store,
	id, a, b circuit.WireID, verbose bool) error {

	n := len(stores)

	av := make([]byte, n)
	bv := make([]byte, n)
	shares := make([]byte, n)

	for i, s := range stores {
		var err error
		if av[i], err = s.Read(a); err != nil {
			return fmt.Errorf("gates: AND: party %d: %w", i, err)
		}
		if bv[i], err = s.Read(b); err != nil {
			return fmt.Errorf("gates: AND: party %d: %w", i, err)
		}
		shares[i] = av[i] & bv[i]
	}

	maskBuf := make([]byte, 1)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if verbose {
				fmt.Printf("gates.AND: %s -> %s (sender/receiver for gate %s)\n",
					superscript.Itoa(i), superscript.Itoa(j), id)
			}

			if _, err := io.ReadFull(rng, maskBuf); err != nil {
				return fmt.Errorf("gates: AND: party %d mask: %w", i, err)
			}
			r := maskBuf[0] & 1

			// m(u,v) = r ^ (ai & v) ^ (u & bi), indexed by the
			// receiver's unknown (xj=u, yj=v) as 2u+v.
			var messages [4]byte
			for u := byte(0); u < 2; u++ {
				for v := byte(0); v < 2; v++ {
					messages[2*u+v] = r ^ (av[i] & v) ^ (u & bv[i])
				}
			}

			if err := oracle.Send(ctx, ot.PartyID(i), ot.PartyID(j), messages); err != nil {
				return fmt.Errorf("gates: AND: %w", err)
			}

			choice := 2*av[j] + bv[j]
			obtained, err := oracle.Receive(ctx, ot.PartyID(i), ot.PartyID(j), choice)
			if err != nil {
				return fmt.Errorf("gates: AND: %w", err)
			}

			shares[i] ^= r
			shares[j] ^= obtained
		}
	}

	for i, s := range stores {
		if err := s.Write(id, shares[i]); err != nil {
			return fmt.Errorf("gates: AND: party %d: %w", i, err)
		}
	}
	return nil
}
