// Command precompile-bench runs a fixed set of known-answer precompile
// calls and reports pass/fail for each, a quick smoke test for the engine
// in this module without needing a full EVM host around it.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/erigontech/erigon-precompiles/precompiles"
)

func main() {
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Parse()

	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	failed := 0
	for _, c := range vectors {
		contract, ok := precompiles.Contracts[c.address]
		if !ok {
			fmt.Printf("FAIL %-20s unknown address\n", c.name)
			failed++
			continue
		}
		gas := contract.RequiredGas(c.input)
		got, _, err := precompiles.RunPrecompiledContract(contract, c.input, gas)
		gotHex := hex.EncodeToString(got)
		switch {
		case err != nil && !c.wantErr:
			fmt.Printf("FAIL %-20s unexpected error: %v\n", c.name, err)
			failed++
		case err == nil && c.wantErr:
			fmt.Printf("FAIL %-20s expected error, got %s\n", c.name, gotHex)
			failed++
		case err == nil && gotHex != c.want:
			fmt.Printf("FAIL %-20s got %s want %s\n", c.name, gotHex, c.want)
			failed++
		default:
			fmt.Printf("ok   %s\n", c.name)
		}
	}
	if failed > 0 {
		fmt.Printf("%d/%d vectors failed\n", failed, len(vectors))
		os.Exit(1)
	}
	fmt.Printf("%d vectors passed\n", len(vectors))
}

type vector struct {
	name    string
	address precompiles.Address
	input   []byte
	want    string
	wantErr bool
}

func addr(last ...byte) precompiles.Address {
	var a precompiles.Address
	copy(a[20-len(last):], last)
	return a
}

func hexBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

var vectors = []vector{
	{
		name:    "ecrecover/valid",
		address: addr(0x01),
		input: hexBytes(
			"18c547e4f7b0f325ad1e56f57e26c745b09a3e503d86e00e5255ff7f715d3d1c" +
				"000000000000000000000000000000000000000000000000000000000000001c" +
				"73b1693892219d736caba55bdb67216e485557ea6b6af75f37096c9aa6a5a75f" +
				"eeb940b1d03b21e36b0e47e79769f095fe2ab855bd91e3a38756b7d75a9c4549"),
		want: "000000000000000000000000a94f5374fce5edbc8e2a8697c15331677e6ebf0b",
	},
	{
		name:    "ecrecover/s-too-large",
		address: addr(0x01),
		input: hexBytes(
			"18c547e4f7b0f325ad1e56f57e26c745b09a3e503d86e00e5255ff7f715d3d1c" +
				"000000000000000000000000000000000000000000000000000000000000001c" +
				"73b1693892219d736caba55bdb67216e485557ea6b6af75f37096c9aa6a5a75f" +
				"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"),
		wantErr: true,
	},
	{
		name:    "ecpairing/empty",
		address: addr(0x08),
		input:   nil,
		want:    "0000000000000000000000000000000000000000000000000000000000000001",
	},
}
