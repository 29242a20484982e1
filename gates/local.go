//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package gates implements the per-gate GMW protocols: XOR and NOT
// are local share transformations; AND is the interactive pairwise-OT
// protocol the rest of the package builds on; OR reduces to AND by De
// Morgan's law.
package gates

import (
	"fmt"

	"github.com/markkurossi/gmw-core/circuit"
	"github.com/markkurossi/gmw-core/share"
)

// XOR computes c := a XOR b locally: each party XORs its own shares.
// No communication.
func XOR(stores []share.Store, id, a, b circuit.WireID) error {
	for i, s := range stores {
		av, err := s.Read(a)
		if err != nil {
			return fmt.Errorf("gates: XOR: party %d: %w", i, err)
		}
		bv, err := s.Read(b)
		if err != nil {
			return fmt.Errorf("gates: XOR: party %d: %w", i, err)
		}
		if err := s.Write(id, av^bv); err != nil {
			return fmt.Errorf("gates: XOR: party %d: %w", i, err)
		}
	}
	return nil
}

// NOT computes c := NOT a: party 0 flips its share, every other party
// copies its share unchanged. No communication.
func NOT(stores []share.Store, id, a circuit.WireID) error {
	for i, s := range stores {
		av, err := s.Read(a)
		if err != nil {
			return fmt.Errorf("gates: NOT: party %d: %w", i, err)
		}
		bit := av
		if i == 0 {
			bit ^= 1
		}
		if err := s.Write(id, bit); err != nil {
			return fmt.Errorf("gates: NOT: party %d: %w", i, err)
		}
	}
	return nil
}
