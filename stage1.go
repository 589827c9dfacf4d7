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

import "github.com/xelis-project/xelis-hash-go/internal/keccakf"

// stage1Fill runs the scratchpad fill: Keccak-f[1600] is applied to lanes
// repeatedly, and after each permutation a chained, 2-bit-dispatched mixing
// routine writes up to 25 words into the scratchpad, until every one of its
// ScratchpadWords words has been written.
//
// lanes is mutated in place, matching the Rust reference's in-place keccakp
// call; its final state is discarded by every caller. The last iteration
// (i = 1310) writes only its first 18 lanes (t = 32750..32767) and skips
// the other 7, so its permutation still contributes to the output.
func stage1Fill(lanes *[KeccakLanes]uint64, pad *Scratchpad) {
	out := pad.wide()
	outer := ScratchpadWords / KeccakLanes // 1310, truncated division; loop runs i=0..1310, 1311 permutations

	for i := 0; i <= outer; i++ {
		keccakf.Permute(lanes)

		var r uint64
		for j := 0; j < KeccakLanes; j++ {
			t := i*KeccakLanes + j
			if t >= ScratchpadWords {
				continue
			}

			a := lanes[j] ^ r
			left := lanes[(j+1)%KeccakLanes]
			right := lanes[(j+2)%KeccakLanes]
			x := left ^ right

			var v uint64
			switch x & 3 {
			case 0:
				v = left & right
			case 1:
				v = ^(left & right)
			case 2:
				v = ^x
			case 3:
				v = x
			}

			b := a ^ v
			r = b
			out[t] = b
		}
	}
}
