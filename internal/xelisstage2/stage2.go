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

// Package xelisstage2 implements the stage-2 slot accumulation pass: a
// single pass over 256-word blocks of the scratchpad, each processed with a
// Fisher-Yates-style draw (descending ceiling) that visits every one of the
// 256 accumulator slots exactly once before moving to the next block.
//
// It is split out from the top-level package so the draw order itself -
// the "which slot gets consumed this step" decision - can be instrumented
// and asserted against directly from tests (spec testable property:
// permutation completeness), without threading a debug channel through the
// hot accumulation loop.
package xelisstage2

// SlotCount is the number of stage-2 accumulator slots, and the width of
// each block drawn from the scratchpad's 32-bit view.
const SlotCount = 256

// Accumulate processes one 256-word block against slots in place, following
// the descending-ceiling Fisher-Yates draw: for slot_idx from 255 down to 0,
// a pick in [0, slot_idx] selects which live index is consumed next, and
// every other slot's running sign-dependent sum folds into it.
func Accumulate(block *[SlotCount]uint32, slots *[SlotCount]uint32) {
	var indices [SlotCount]uint16
	for k := range indices {
		indices[k] = uint16(k)
	}

	for slotIdx := SlotCount - 1; slotIdx >= 0; slotIdx-- {
		pick := block[slotIdx] % uint32(slotIdx+1)
		index := indices[pick]
		indices[pick] = indices[slotIdx]

		for k := 0; k < SlotCount; k++ {
			if uint16(k) == index {
				continue
			}
			if slots[k]>>31 == 0 {
				slots[index] += block[k]
			} else {
				slots[index] -= block[k]
			}
		}
	}
}

// DrawOrder replays the same descending-ceiling draw as Accumulate but
// returns only the sequence of consumed slot indices, in the order they
// were drawn (slot_idx = 255 down to 0). It performs no accumulation and is
// exercised only from tests, to assert that the 256 draws for any block are
// a permutation of [0, SlotCount) - i.e. every slot position is visited
// exactly once.
func DrawOrder(block *[SlotCount]uint32) []uint16 {
	var indices [SlotCount]uint16
	for k := range indices {
		indices[k] = uint16(k)
	}

	order := make([]uint16, 0, SlotCount)
	for slotIdx := SlotCount - 1; slotIdx >= 0; slotIdx-- {
		pick := block[slotIdx] % uint32(slotIdx+1)
		index := indices[pick]
		indices[pick] = indices[slotIdx]
		order = append(order, index)
	}
	return order
}
