// Package precompiles wires the arithmetic and cryptographic engines in
// this module (package curve and its subpackages, package modexp) behind
// the byte-in/byte-out PrecompiledContract interface an EVM implementation
// dispatches calls through.
package precompiles

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Address is a 20-byte EVM account address, used here only as a map key
// for precompile dispatch.
type Address [20]byte

// PrecompiledContract is the interface every precompile implements: report
// its gas cost for a given input, then run it.
type PrecompiledContract interface {
	RequiredGas(input []byte) uint64
	Run(input []byte) ([]byte, error)
}

// PrecompiledContracts maps an address to the contract it dispatches to.
type PrecompiledContracts map[Address]PrecompiledContract

func addr(last ...byte) Address {
	var a Address
	copy(a[20-len(last):], last)
	return a
}

// Contracts is the complete set of precompiles this module implements.
var Contracts = PrecompiledContracts{
	addr(0x01):       ecrecover{},
	addr(0x04):       identity{},
	addr(0x05):       bigModExp{},
	addr(0x06):       bn256Add{},
	addr(0x07):       bn256ScalarMul{},
	addr(0x08):       bn256Pairing{},
	addr(0x01, 0x00): p256Verify{},
}

// ErrOutOfGas is returned by RunPrecompiledContract when suppliedGas is
// insufficient to cover RequiredGas.
var ErrOutOfGas = errors.New("out of gas")

// RunPrecompiledContract charges gas and runs p, the same calling
// convention an EVM interpreter uses at a CALL to a precompiled address.
func RunPrecompiledContract(p PrecompiledContract, input []byte, suppliedGas uint64) (ret []byte, remainingGas uint64, err error) {
	gasCost := p.RequiredGas(input)
	if suppliedGas < gasCost {
		return nil, 0, ErrOutOfGas
	}
	remainingGas = suppliedGas - gasCost
	ret, err = p.Run(input)
	if err != nil {
		log.Debug().Err(err).Int("inputLen", len(input)).Msg("precompile run failed")
		return nil, remainingGas, err
	}
	return ret, remainingGas, nil
}
