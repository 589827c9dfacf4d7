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

package xelishash

import (
	"encoding/binary"
	"math/bits"

	"github.com/xelis-project/xelis-hash-go/internal/aesround"
)

const (
	bufferSize     = 42
	scratchpadMask = ScratchpadWords - 1 // 0x7FFF, ScratchpadWords is a power of two
	finalizeIters  = 5000
)

// stage3Finalize runs the AES-round-driven finalization: two rolling
// 42-word buffers seeded from pseudo-random scratchpad addresses are folded
// through one AES round and a 4-bit-dispatched mixing function per
// iteration, for finalizeIters iterations, with the last four produced
// words becoming the digest.
func stage3Finalize(pad *Scratchpad) [DigestSize]byte {
	wide := pad.wide()

	var zeroKey [16]byte

	addrA := (wide[ScratchpadWords-1] >> 15) & scratchpadMask
	addrB := wide[ScratchpadWords-1] & scratchpadMask

	var bufA, bufB [bufferSize]uint64
	for i := uint64(0); i < bufferSize; i++ {
		bufA[i] = wide[(addrA+i)%ScratchpadWords]
		bufB[i] = wide[(addrB+i)%ScratchpadWords]
	}

	var digest [DigestSize]byte

	for i := 0; i < finalizeIters; i++ {
		memA := bufA[i%bufferSize]
		memB := bufB[i%bufferSize]

		var block [16]byte
		binary.LittleEndian.PutUint64(block[0:8], memB)
		binary.LittleEndian.PutUint64(block[8:16], memA)

		aesround.Round(&block, zeroKey)

		h1 := binary.LittleEndian.Uint64(block[0:8])
		h2 := memA ^ memB
		result := ^(h1 ^ h2)

		for j := 0; j < 32; j++ {
			a := bufA[(j+i)%bufferSize]
			b := bufB[(j+i)%bufferSize]

			rotated := bits.RotateLeft64(result, j)
			sel := (result >> uint(2*j)) & 0xF

			var expr uint64
			switch sel {
			case 0:
				expr = rotated ^ b
			case 1:
				expr = ^(rotated ^ a)
			case 2:
				expr = ^(result ^ a)
			case 3:
				expr = result ^ b
			case 4:
				expr = a + b
			case 5:
				expr = a - b
			case 6:
				expr = b - a
			case 7:
				expr = a * b
			case 8:
				expr = a & b
			case 9:
				expr = a | b
			case 10:
				expr = a ^ b
			case 11:
				expr = a - result
			case 12:
				expr = b - result
			case 13:
				expr = a + result
			case 14:
				expr = result - a
			case 15:
				expr = result - b
			}

			result ^= expr
		}

		addrB = result & scratchpadMask
		bufA[i%bufferSize] = result
		bufB[i%bufferSize] = wide[addrB]

		addrA = (result >> 15) & scratchpadMask
		wide[addrA] = result

		index := finalizeIters - i - 1
		if index < 4 {
			binary.BigEndian.PutUint64(digest[index*8:index*8+8], result)
		}
	}

	return digest
}
