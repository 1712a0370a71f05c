// Copyright (c) 2025 The Solacecore developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	flags "github.com/jessevdk/go-flags"
	"github.com/solacechain/solacecore/difficulty"
)

// difficultyCmd is a pure grouping node: its three children do the
// actual work, mirroring the way gencerts groups cert/key generation
// under one parser rather than one binary per operation.
type difficultyCmd struct{}

func (difficultyCmd) Execute(args []string) error {
	return fmt.Errorf("specify a difficulty subcommand: pack, unpack, or adjust")
}

type difficultyPackCmd struct {
	Order    uint32 `short:"o" long:"order" description:"target's power-of-two order" required:"true"`
	Mantissa uint32 `short:"m" long:"mantissa" description:"mantissa, without its implicit leading bit" default:"0"`
}

func (c *difficultyPackCmd) Execute(args []string) error {
	setupLogging()
	d := difficulty.Pack(c.Order, c.Mantissa)
	fmt.Printf("packed: 0x%08x\n", d.Packed)
	return nil
}

type difficultyUnpackCmd struct {
	Packed uint32 `short:"p" long:"packed" description:"the packed 32-bit difficulty value" required:"true"`
}

func (c *difficultyUnpackCmd) Execute(args []string) error {
	setupLogging()
	d := difficulty.Difficulty{Packed: c.Packed}
	order, mantissa := d.Unpack()
	fmt.Printf("order: %d\nmantissa: %d\nraw target: %x\n", order, mantissa, d.Raw())
	return nil
}

type difficultyAdjustCmd struct {
	Packed         uint32 `short:"p" long:"packed" description:"the current packed difficulty value" required:"true"`
	ActualDt       uint32 `long:"actual" description:"actual duration of the last review cycle, in seconds" required:"true"`
	TargetDt       uint32 `long:"target" description:"target duration of a review cycle, in seconds" required:"true"`
	MaxOrderChange uint32 `long:"max-order-change" description:"maximum number of order steps to walk in one retarget" default:"2"`
}

func (c *difficultyAdjustCmd) Execute(args []string) error {
	setupLogging()
	d := difficulty.Difficulty{Packed: c.Packed}
	adjusted := d.Adjust(c.ActualDt, c.TargetDt, c.MaxOrderChange)
	fmt.Printf("packed: 0x%08x\n", adjusted.Packed)
	return nil
}

func addDifficultyCommand(parser *flags.Parser) {
	cmd, err := parser.AddCommand("difficulty",
		"exercise the packed-target retarget math",
		"Packs, unpacks, or retargets a difficulty value from the command "+
			"line, for manually checking retarget math against expected values.",
		&difficultyCmd{})
	if err != nil {
		fatalf("%v", err)
	}

	if _, err := cmd.AddCommand("pack", "pack an order/mantissa pair", "", &difficultyPackCmd{}); err != nil {
		fatalf("%v", err)
	}
	if _, err := cmd.AddCommand("unpack", "unpack a difficulty value", "", &difficultyUnpackCmd{}); err != nil {
		fatalf("%v", err)
	}
	if _, err := cmd.AddCommand("adjust", "retarget a difficulty value", "", &difficultyAdjustCmd{}); err != nil {
		fatalf("%v", err)
	}
}
