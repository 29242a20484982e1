//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Package protocol implements the GMW evaluator: it secret-shares
// party inputs, walks a circuit's gates in declared order dispatching
// each to its local or interactive protocol, and reconstructs the
// declared outputs.
package protocol

import (
	"context"
	"fmt"
	"io"

	"github.com/markkurossi/gmw-core/circuit"
	"github.com/markkurossi/gmw-core/env"
	"github.com/markkurossi/gmw-core/gates"
	"github.com/markkurossi/gmw-core/ot"
	"github.com/markkurossi/gmw-core/share"
)

// Config carries the cross-cutting knobs Evaluate needs: the party
// count, the entropy source (env.Config's injectable-Rand pattern, so
// tests can fix it), the OT oracle every party uses, and a verbose
// trace flag. Config must not be modified once passed to Evaluate.
type Config struct {
	N       int
	Env     env.Config
	Oracle  ot.Oracle
	Verbose bool
}

func (c Config) rand() io.Reader {
	return c.Env.GetRandom()
}

// Evaluate secret-shares inputs, evaluates circ's gates in declared
// order, and reconstructs the declared outputs, as if a trusted third
// party had computed circ on the private bits its owning parties
// hold. inputs is the flat, positional bit list: one bit per
// circ.InputWires entry, in declaration order. Ownership of each
// input wire follows the positional convention: circ.InputWires is
// split into cfg.N contiguous, as-equal-as-possible chunks in
// declaration order, chunk k owned by party k (see OwnersOf).
func Evaluate(ctx context.Context, cfg Config, circ *circuit.Circuit, inputs []byte) ([]byte, error) {
	if err := circ.Validate(); err != nil {
		return nil, err
	}
	if len(inputs) != len(circ.InputWires) {
		return nil, fmt.Errorf("protocol: got %d input bits, want %d", len(inputs), len(circ.InputWires))
	}

	stores := share.NewStores(cfg.N)
	rng := cfg.rand()
	owners := OwnersOf(len(circ.InputWires), cfg.N)

	for wi, w := range circ.InputWires {
		owner := owners[wi]
		shares, err := share.ShareInput(rng, owner, inputs[wi], cfg.N)
		if err != nil {
			return nil, fmt.Errorf("protocol: sharing input %s: %w", w, err)
		}
		if cfg.Verbose {
			fmt.Printf("protocol: party %d shares %s\n", owner, w)
		}
		for party, bit := range shares {
			if err := stores[party].Write(w, bit); err != nil {
				return nil, fmt.Errorf("protocol: internal error: %w", err)
			}
		}
	}

	next := circ.MaxID() + 1

	for _, g := range circ.Gates {
		if cfg.Verbose {
			fmt.Printf("protocol: evaluating %s\n", g)
		}
		switch g.Kind {
		case circuit.XOR:
			if err := gates.XOR(stores, g.ID, g.Inputs[0], g.Inputs[1]); err != nil {
				return nil, err
			}
		case circuit.NOT:
			if err := gates.NOT(stores, g.ID, g.Inputs[0]); err != nil {
				return nil, err
			}
		case circuit.AND:
			err := gates.AND(ctx, cfg.Oracle, rng, stores, g.ID, g.Inputs[0], g.Inputs[1], cfg.Verbose)
			if err != nil {
				return nil, err
			}
		case circuit.OR:
			err := gates.OR(ctx, cfg.Oracle, rng, stores, g.ID, g.Inputs[0], g.Inputs[1], &next, cfg.Verbose)
			if err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("protocol: internal error: gate %s: unrecognized operation %v", g.ID, g.Kind)
		}
	}

	outputs := make([]byte, len(circ.OutputWires))
	for i, w := range circ.OutputWires {
		bit, err := share.Reconstruct(stores, w)
		if err != nil {
			return nil, fmt.Errorf("protocol: reconstructing output %s: %w", w, err)
		}
		outputs[i] = bit
	}
	return outputs, nil
}

// OwnersOf resolves the open question in the input-to-party mapping:
// the circuit's totalWires input wires, in declaration order, are
// split into n contiguous, as-equal-as-possible chunks (the first
// totalWires%n chunks get one extra wire), chunk k owned by party k.
// A party whose chunk is empty simply owns no input wire, which
// happens whenever n exceeds the circuit's input count.
func OwnersOf(totalWires, n int) []share.PartyID {
	owners := make([]share.PartyID, totalWires)
	base := totalWires / n
	extra := totalWires % n
	wi := 0
	for p := 0; p < n && wi < totalWires; p++ {
		size := base
		if p < extra {
			size++
		}
		for k := 0; k < size && wi < totalWires; k++ {
			owners[wi] = share.PartyID(p)
			wi++
		}
	}
	return owners
}
