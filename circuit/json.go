//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"encoding/json"
	"fmt"
	"io"
)

type jsonInput struct {
	Name   string `json:"name"`
	WireID WireID `json:"wire_id"`
}

type jsonOutput struct {
	Name   string `json:"name"`
	GateID WireID `json:"gate_id"`
}

type jsonMetadata struct {
	Inputs  []jsonInput  `json:"inputs"`
	Outputs []jsonOutput `json:"outputs"`
}

type jsonGate struct {
	ID   WireID   `json:"id"`
	Type string   `json:"type"`
	In   []WireID `json:"in"`
}

type jsonCircuit struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Metadata    jsonMetadata `json:"metadata"`
	Gates       []jsonGate   `json:"gates"`
}

// ParseJSON parses a circuit from its JSON file format: a
// name, optional description, metadata.inputs naming the input wires
// in declaration order, metadata.outputs naming the output wires by
// gate id (or input wire id), and gates listed in topological order.
//
// ParseJSON only parses; call Validate on the result before use.
func ParseJSON(r io.Reader) (*Circuit, error) {
	var doc jsonCircuit
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("circuit: parse: %w", err)
	}

	if len(doc.Metadata.Inputs) == 0 {
		return nil, fmt.Errorf("circuit: parse: metadata.inputs is empty")
	}
	if len(doc.Metadata.Outputs) == 0 {
		return nil, fmt.Errorf("circuit: parse: metadata.outputs is empty")
	}

	c := &Circuit{
		Name:        doc.Name,
		Description: doc.Description,
	}

	for _, in := range doc.Metadata.Inputs {
		c.InputWires = append(c.InputWires, in.WireID)
	}
	for _, out := range doc.Metadata.Outputs {
		c.OutputWires = append(c.OutputWires, out.GateID)
	}

	for _, jg := range doc.Gates {
		op, err := parseOperation(jg.Type)
		if err != nil {
			return nil, err
		}
		c.Gates = append(c.Gates, Gate{
			ID:     jg.ID,
			Kind:   op,
			Inputs: jg.In,
		})
	}

	return c, nil
}

func parseOperation(s string) (Operation, error) {
	switch s {
	case "XOR":
		return XOR, nil
	case "NOT":
		return NOT, nil
	case "AND":
		return AND, nil
	case "OR":
		return OR, nil
	default:
		return 0, fmt.Errorf("circuit: parse: unknown gate type %q", s)
	}
}
