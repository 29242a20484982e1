//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"strings"
	"testing"
)

func TestParseJSON(t *testing.T) {
	c, err := parseExample(exampleXORJSON())
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(c.InputWires) != 2 || len(c.Gates) != 1 || len(c.OutputWires) != 1 {
		t.Fatalf("unexpected shape: %+v", c)
	}
	if c.Gates[0].Kind != XOR {
		t.Errorf("gate kind = %v, want XOR", c.Gates[0].Kind)
	}
}

func TestParseJSONUnknownGateType(t *testing.T) {
	bad := strings.Replace(exampleXORJSON(), `"XOR"`, `"NAND"`, 1)
	if _, err := parseExample(bad); err == nil {
		t.Fatal("expected error for unknown gate type")
	}
}

func TestParseJSONMissingInputs(t *testing.T) {
	_, err := parseExample(`{"name":"empty","metadata":{"outputs":[{"name":"o","gate_id":1}]},"gates":[]}`)
	if err == nil {
		t.Fatal("expected error for missing metadata.inputs")
	}
}

func exampleXORJSON() string {
	return `{
		"name": "xor",
		"metadata": {
			"inputs": [
				{"name": "a", "wire_id": 1},
				{"name": "b", "wire_id": 2}
			],
			"outputs": [
				{"name": "out", "gate_id": 3}
			]
		},
		"gates": [
			{"id": 3, "type": "XOR", "in": [1, 2]}
		]
	}`
}

func parseExample(s string) (*Circuit, error) {
	return ParseJSON(strings.NewReader(s))
}
