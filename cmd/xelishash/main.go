// Copyright 2026 The xelis-hash-go Authors
// This file is part of xelis-hash-go.
//
// xelis-hash-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// xelis-hash-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with xelis-hash-go. If not, see <http://www.gnu.org/licenses/>.

// Command xelishash computes a single XELIS proof-of-work digest and
// prints it as hex. It is a thin demonstration driver, not a mining loop:
// it performs no nonce iteration, no difficulty comparison, and no network
// I/O - all three are explicitly out of scope for the core function (see
// SPEC_FULL.md) and are left to whatever calls this library.
package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/sha3"

	xelishash "github.com/xelis-project/xelis-hash-go"
)

func main() {
	app := &cli.App{
		Name:  "xelishash",
		Usage: "compute a single XELIS proof-of-work digest",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "input",
				Usage: "200-byte input, hex-encoded",
			},
			&cli.StringFlag{
				Name:  "seed",
				Usage: "arbitrary-length seed string, expanded to a 200-byte input via Keccak-256",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("xelishash failed", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	var input []byte
	switch {
	case c.String("seed") != "":
		input = expandSeed(c.String("seed"))
	case c.String("input") != "":
		decoded, err := hex.DecodeString(c.String("input"))
		if err != nil {
			return fmt.Errorf("xelishash: decoding --input: %w", err)
		}
		input = decoded
	default:
		return cli.Exit("one of --input or --seed is required", 1)
	}

	digest, err := xelishash.Hash(input)
	if err != nil {
		return err
	}

	fmt.Println(hex.EncodeToString(digest[:]))
	return nil
}

// expandSeed derives a deterministic 200-byte input from an arbitrary seed
// string by repeated Keccak-256, since real callers of this CLI rarely
// have a natural 200-byte preimage on hand. This is tooling around the
// core function, not a change to its fixed-width contract.
func expandSeed(seed string) []byte {
	out := make([]byte, 0, xelishash.InputSize)
	block := []byte(seed)
	for len(out) < xelishash.InputSize {
		sum := sha3.NewLegacyKeccak256()
		sum.Write(block)
		block = sum.Sum(nil)
		out = append(out, block...)
	}
	return out[:xelishash.InputSize]
}
