package xelisstage2

import (
	"math/rand"
	"testing"
)

// TestDrawOrderIsAPermutation verifies the permutation-completeness
// property spec.md calls for: for any block, the 256 index draws visit
// every slot position in [0, SlotCount) exactly once.
func TestDrawOrderIsAPermutation(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		var block [SlotCount]uint32
		for i := range block {
			block[i] = r.Uint32()
		}

		order := DrawOrder(&block)
		if len(order) != SlotCount {
			t.Fatalf("trial %d: got %d draws, want %d", trial, len(order), SlotCount)
		}

		var seen [SlotCount]bool
		for _, idx := range order {
			if seen[idx] {
				t.Fatalf("trial %d: slot %d drawn more than once in %v", trial, idx, order)
			}
			seen[idx] = true
		}
		for i, s := range seen {
			if !s {
				t.Fatalf("trial %d: slot %d was never drawn", trial, i)
			}
		}
	}
}

func TestDrawOrderAllZeroBlock(t *testing.T) {
	var block [SlotCount]uint32
	order := DrawOrder(&block)

	var seen [SlotCount]bool
	for _, idx := range order {
		seen[idx] = true
	}
	for i, s := range seen {
		if !s {
			t.Fatalf("slot %d was never drawn for the all-zero block", i)
		}
	}
}

func TestAccumulateIsDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	var block [SlotCount]uint32
	for i := range block {
		block[i] = r.Uint32()
	}

	var slotsA, slotsB [SlotCount]uint32
	for i := range slotsA {
		slotsA[i] = uint32(i)
		slotsB[i] = uint32(i)
	}

	Accumulate(&block, &slotsA)
	Accumulate(&block, &slotsB)

	if slotsA != slotsB {
		t.Fatalf("Accumulate is not deterministic:\n%v\n%v", slotsA, slotsB)
	}
}
