// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
	"github.com/solacechain/solacecore/chainwork"
	"github.com/solacechain/solacecore/rules"
)

type verifyProofCmd struct {
	Network string `short:"n" long:"network" description:"network whose rules to verify against" choice:"mainnet" choice:"testnet" default:"mainnet"`
	Args    struct {
		File string `positional-arg-name:"file" description:"file holding a Marshal-encoded ChainWorkProof"`
	} `positional-args:"yes" required:"yes"`
}

func addVerifyProofCommand(parser *flags.Parser) {
	_, err := parser.AddCommand("verify-proof",
		"check a serialized chain-work proof",
		"Decodes a ChainWorkProof previously written by chainwork.Marshal "+
			"and reports whether IsValid accepts it, the same check a peer "+
			"receiving the proof over the wire would run.",
		&verifyProofCmd{})
	if err != nil {
		fatalf("%v", err)
	}
}

func (c *verifyProofCmd) Execute(args []string) error {
	setupLogging()

	b, err := os.ReadFile(c.Args.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.Args.File, err)
	}

	cwp, err := chainwork.Unmarshal(b)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", c.Args.File, err)
	}

	var r rules.Rules
	switch c.Network {
	case "testnet":
		r = rules.Testnet()
	default:
		r = rules.Mainnet()
	}

	if cwp.IsValid(r) {
		fmt.Printf("valid: %d states, %d proof hashes\n", len(cwp.States), len(cwp.Proof.Data))
		return nil
	}
	fmt.Println("invalid")
	os.Exit(1)
	return nil
}
