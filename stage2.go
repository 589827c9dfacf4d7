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

import "github.com/xelis-project/xelis-hash-go/internal/xelisstage2"

// stage2Accumulate reinterprets the scratchpad as its narrow (32-bit) view
// and runs the single permutation-driven accumulation pass over its 256
// blocks of 256 words, seeding the 256 accumulator slots from the last
// block and writing the final slot state back over that same block.
func stage2Accumulate(pad *Scratchpad) {
	const blocks = ScratchpadWordsNarrow / xelisstage2.SlotCount

	var slots [xelisstage2.SlotCount]uint32
	lastBlockStart := (blocks - 1) * xelisstage2.SlotCount
	for k := 0; k < xelisstage2.SlotCount; k++ {
		slots[k] = pad.narrowWord(lastBlockStart + k)
	}

	var block [xelisstage2.SlotCount]uint32
	for j := 0; j < blocks; j++ {
		base := j * xelisstage2.SlotCount
		for k := 0; k < xelisstage2.SlotCount; k++ {
			block[k] = pad.narrowWord(base + k)
		}
		xelisstage2.Accumulate(&block, &slots)
	}

	for k := 0; k < xelisstage2.SlotCount; k++ {
		pad.setNarrowWord(lastBlockStart+k, slots[k])
	}
}
