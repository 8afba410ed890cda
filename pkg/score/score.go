// Package score computes the integer distance between two TLSH digests.
// The distance is a sum of four independent terms -- checksum,
// optional length, the two quartile ratios, and the bucket body --
// so that a few mismatched bytes produce a small score while a wholly
// different body produces a large one.
package score

import (
	"fmt"
	"sync"

	"tlsh-go/pkg/digest"
	"tlsh-go/pkg/tlsherr"
)

const diffScale = 12
const diffScale6 = 6

var (
	bitPairDiff     [256][256]int
	bitPairDiffOnce sync.Once
)

// bitPairDiffTable lazily builds the 256x256 bit-pair-difference table
// on first use. The table is deterministic and small; computing it once
// and keeping it process-wide avoids recomputing it per score call.
func bitPairDiffTable() *[256][256]int {
	bitPairDiffOnce.Do(func() {
		for x := 0; x < 256; x++ {
			for y := 0; y < 256; y++ {
				bitPairDiff[x][y] = bitPairDistance(byte(x), byte(y))
			}
		}
	})
	return &bitPairDiff
}

func bitPairDistance(x, y byte) int {
	diff := 0
	for i := 0; i < 4; i++ {
		dx := int(x & 0x3)
		dy := int(y & 0x3)
		d := dx - dy
		if d < 0 {
			d = -d
		}
		if d == 3 {
			d = diffScale6
		}
		diff += d
		x >>= 2
		y >>= 2
	}
	return diff
}

// modDist returns the circular distance between x and y on a ring of
// size r: min(|x-y|, r-|x-y|).
func modDist(x, y, r int) int {
	d := x - y
	if d < 0 {
		d = -d
	}
	other := r - d
	if other < d {
		return other
	}
	return d
}

func scoreChecksum(a, b []byte) int {
	if len(a) != len(b) {
		return -1
	}
	for i := range a {
		if a[i] != b[i] {
			return 1
		}
	}
	return 0
}

func scoreLength(a, b byte) int {
	d := modDist(int(a), int(b), 256)
	switch d {
	case 0:
		return 0
	case 1:
		return 1
	default:
		return diffScale * d
	}
}

func scoreQ(a, b byte) int {
	d := modDist(int(a), int(b), 16)
	if d <= 1 {
		return d
	}
	return diffScale * (d - 1)
}

func scoreBody(a, b []byte) (int, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("tlsh: body lengths differ (%d != %d): %w", len(a), len(b), tlsherr.ErrMismatched)
	}
	table := bitPairDiffTable()
	total := 0
	for i := range a {
		total += table[a[i]][b[i]]
	}
	return total, nil
}

// Score returns the nonnegative integer distance between the two packed
// digests a and b. If includeLength is true, the length-code term is
// added to the total. Score fails with tlsherr.ErrMismatched if the two
// digests have differing checksum or body lengths.
func Score(a, b []byte, includeLength bool) (int, error) {
	va, err := digest.Unpack(a)
	if err != nil {
		return 0, err
	}
	vb, err := digest.Unpack(b)
	if err != nil {
		return 0, err
	}
	return ScoreValues(va, vb, includeLength)
}

// ScoreValues is Score over already-unpacked digest values.
func ScoreValues(a, b digest.Value, includeLength bool) (int, error) {
	total := scoreChecksum(a.Checksum, b.Checksum)
	if total < 0 {
		return 0, fmt.Errorf("tlsh: checksum lengths differ (%d != %d): %w", len(a.Checksum), len(b.Checksum), tlsherr.ErrMismatched)
	}

	if includeLength {
		total += scoreLength(a.LValue, b.LValue)
	}

	total += scoreQ(a.Q1Ratio, b.Q1Ratio)
	total += scoreQ(a.Q2Ratio, b.Q2Ratio)

	bodyScore, err := scoreBody(a.Body, b.Body)
	if err != nil {
		return 0, err
	}
	total += bodyScore

	return total, nil
}
