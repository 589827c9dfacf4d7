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

// Package keccakf implements the bare Keccak-f[1600] permutation on 25
// little-endian 64-bit lanes, with no sponge construction, padding, or
// domain separation wrapped around it. It exists because neither the
// standard library nor golang.org/x/crypto/sha3 exposes the raw
// permutation: both only offer the full absorb/squeeze hash construction.
//
// The round constants, rotation offsets, and rho/pi lane ordering below
// follow the reference Keccak submission and match the pack's
// straightforward pure-Go permutations (e.g. ebfe/keccak).
package keccakf

const rounds = 24

var roundConstants = [rounds]uint64{
	0x0000000000000001, 0x0000000000008082,
	0x800000000000808A, 0x8000000080008000,
	0x000000000000808B, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009,
	0x000000000000008A, 0x0000000000000088,
	0x0000000080008009, 0x000000008000000A,
	0x000000008000808B, 0x800000000000008B,
	0x8000000000008089, 0x8000000000008003,
	0x8000000000008002, 0x8000000000000080,
	0x000000000000800A, 0x800000008000000A,
	0x8000000080008081, 0x8000000000008080,
	0x0000000080000001, 0x8000000080008008,
}

var rotationConstants = [rounds]uint{
	1, 3, 6, 10, 15, 21, 28, 36,
	45, 55, 2, 14, 27, 41, 56, 8,
	25, 43, 62, 18, 39, 61, 20, 44,
}

var piLane = [rounds]uint{
	10, 7, 11, 17, 18, 3, 5, 16,
	8, 21, 24, 4, 15, 23, 19, 13,
	12, 2, 20, 14, 22, 9, 6, 1,
}

// Permute applies the 24-round Keccak-f[1600] permutation in place to the
// 25 lanes of state.
func Permute(state *[25]uint64) {
	var bc [5]uint64
	for r := 0; r < rounds; r++ {
		// theta
		for i := range bc {
			bc[i] = state[i] ^ state[5+i] ^ state[10+i] ^ state[15+i] ^ state[20+i]
		}
		for i := range bc {
			t := bc[(i+4)%5] ^ rotl64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				state[i+j] ^= t
			}
		}

		// rho + pi
		temp := state[1]
		for i := range piLane {
			j := piLane[i]
			temp2 := state[j]
			state[j] = rotl64(temp, rotationConstants[i])
			temp = temp2
		}

		// chi
		for j := 0; j < 25; j += 5 {
			for i := range bc {
				bc[i] = state[j+i]
			}
			for i := range bc {
				state[j+i] ^= (^bc[(i+1)%5]) & bc[(i+2)%5]
			}
		}

		// iota
		state[0] ^= roundConstants[r]
	}
}

func rotl64(x uint64, n uint) uint64 {
	return (x << n) | (x >> (64 - n))
}
