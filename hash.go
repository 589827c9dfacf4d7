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

// Package xelishash implements the XELIS proof-of-work hash function: a
// deterministic, memory-hard, CPU-oriented function mapping a fixed
// 200-byte input to a 32-byte digest through three strictly sequential
// stages over a 256 KiB scratchpad - a Keccak-f[1600]-driven fill, a
// slot-based accumulation pass, and an AES-round-driven finalization.
//
// The function is pure with respect to the (input, scratchpad) pair and
// performs no I/O, no allocation given a caller-owned scratchpad, and no
// blocking. It exposes no streaming API: inputs are always exactly
// InputSize bytes. Everything outside that pure function - nonce
// iteration, difficulty comparison, block assembly, network transport - is
// the caller's responsibility.
package xelishash

// Hash computes the digest of input, allocating its own scratchpad.
func Hash(input []byte) ([DigestSize]byte, error) {
	return HashWithScratchpad(input, NewScratchpad())
}

// HashWithScratchpad computes the digest of input using a caller-owned
// scratchpad. The scratchpad may be reused across calls: every word is
// overwritten before it is read, so its entry contents never influence the
// output.
//
// input itself is copied into an internal aligned view rather than aliased
// in place: unlike the reference implementation, this avoids reinterpreting
// a caller's []byte as a [25]uint64 via unsafe. Callers that want the
// entry contract's "input is mutated in place" behavior exactly should use
// HashAligned with their own *AlignedInput.
func HashWithScratchpad(input []byte, pad *Scratchpad) ([DigestSize]byte, error) {
	if len(input) < InputSize || pad == nil {
		return [DigestSize]byte{}, ErrInvalidArguments
	}

	aligned := NewAlignedInput()
	aligned.SetBytes(input[:InputSize])
	return HashAligned(aligned, pad)
}

// HashAligned computes the digest of an already 8-byte-aligned 200-byte
// input using a caller-owned scratchpad. This is the entry point the other
// two surfaces funnel through once alignment is established.
func HashAligned(input *AlignedInput, pad *Scratchpad) ([DigestSize]byte, error) {
	if input == nil || pad == nil {
		return [DigestSize]byte{}, ErrInvalidArguments
	}

	// Stage 1 mutates input's lanes in place, per the entry contract: the
	// caller must treat input as consumed once HashAligned returns.
	stage1Fill(&input.lanes, pad)
	stage2Accumulate(pad)
	return stage3Finalize(pad), nil
}
