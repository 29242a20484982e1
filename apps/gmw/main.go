//
// Copyright (c) 2026 Markku Rossi
//
// All rights reserved.
//

// Command gmw evaluates a boolean circuit under the GMW semi-honest
// protocol with a simulated n-party OT oracle running in-process.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/markkurossi/gmw-core/circuit"
	"github.com/markkurossi/gmw-core/ot"
	"github.com/markkurossi/gmw-core/protocol"
	"github.com/markkurossi/tabulate"
)

func main() {
	parties := flag.Int("parties", 2, "Number of simulated parties")
	stats := flag.Bool("stats", false, "Print a gate/OT-count table before evaluating")
	verbose := flag.Bool("v", false, "Verbose trace of gate evaluation")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		fmt.Println("usage: gmw [-parties N] [-stats] [-v] CIRCUIT.json BIT...")
		os.Exit(1)
	}

	circ, err := loadCircuit(args[0])
	if err != nil {
		log.Fatalf("failed to parse circuit file '%s': %v", args[0], err)
	}

	inputs, err := parseInputs(args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if *stats {
		printStats(circ, *parties)
	}

	cfg := protocol.Config{
		N:       *parties,
		Oracle:  ot.NewSimulated(),
		Verbose: *verbose,
	}

	outputs, err := protocol.Evaluate(context.Background(), cfg, circ, inputs)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(formatBits(outputs))
}

func loadCircuit(file string) (*circuit.Circuit, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return circuit.ParseJSON(f)
}

func parseInputs(args []string) ([]byte, error) {
	inputs := make([]byte, len(args))
	for i, a := range args {
		v, err := strconv.ParseUint(a, 10, 8)
		if err != nil || (v != 0 && v != 1) {
			return nil, fmt.Errorf("invalid input bit %q: must be 0 or 1", a)
		}
		inputs[i] = byte(v)
	}
	return inputs, nil
}

func formatBits(bits []byte) string {
	out := make([]string, len(bits))
	for i, b := range bits {
		out[i] = strconv.Itoa(int(b))
	}
	return strings.Join(out, " ")
}

func printStats(circ *circuit.Circuit, n int) {
	counts, otRoundTrips := circ.Stats(n)

	tab := tabulate.New(tabulate.Github)
	tab.Header("Circuit")
	tab.Header("XOR").SetAlign(tabulate.MR)
	tab.Header("NOT").SetAlign(tabulate.MR)
	tab.Header("AND").SetAlign(tabulate.MR)
	tab.Header("OR").SetAlign(tabulate.MR)
	tab.Header("Gates").SetAlign(tabulate.MR)
	tab.Header("Parties").SetAlign(tabulate.MR)
	tab.Header("OT round-trips").SetAlign(tabulate.MR)

	row := tab.Row()
	name := circ.Name
	if name == "" {
		name = "(unnamed)"
	}
	row.Column(name)
	row.Column(fmt.Sprintf("%d", counts[circuit.XOR]))
	row.Column(fmt.Sprintf("%d", counts[circuit.NOT]))
	row.Column(fmt.Sprintf("%d", counts[circuit.AND]))
	row.Column(fmt.Sprintf("%d", counts[circuit.OR]))
	row.Column(fmt.Sprintf("%d", len(circ.Gates)))
	row.Column(fmt.Sprintf("%d", n))
	row.Column(fmt.Sprintf("%d", otRoundTrips))

	tab.Print(os.Stdout)
}
