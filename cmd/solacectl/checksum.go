// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	flags "github.com/jessevdk/go-flags"
	"github.com/solacechain/solacecore/merkle"
	"github.com/solacechain/solacecore/rules"
)

type checksumCmd struct {
	Network string `short:"n" long:"network" description:"network whose rules to checksum" choice:"mainnet" choice:"testnet" default:"mainnet"`
	Expect  string `long:"expect" description:"hex-encoded checksum to compare against; mismatches are reported as an error"`
}

func addChecksumCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("checksum",
		"print a network's consensus-rules checksum",
		"Builds a rules.Rules for the named network and prints its checksum, "+
			"the value every validator must agree on before two nodes can "+
			"safely interoperate.",
		&checksumCmd{})
	if err != nil {
		fatalf("%v", err)
	}
}

func (c *checksumCmd) Execute(args []string) error {
	setupLogging()

	var r rules.Rules
	switch c.Network {
	case "testnet":
		r = rules.Testnet()
	default:
		r = rules.Mainnet()
	}

	sum := r.Checksum()
	fmt.Printf("%x\n", sum[:])

	if c.Expect == "" {
		return nil
	}
	b, err := hex.DecodeString(c.Expect)
	if err != nil || len(b) != len(merkle.Hash{}) {
		return fmt.Errorf("--expect must be a %d-byte hex checksum", len(merkle.Hash{}))
	}
	var want merkle.Hash
	copy(want[:], b)
	return r.VerifyChecksum(want)
}
