package tlsh

import (
	"golang.org/x/exp/slices"

	"tlsh-go/pkg/digest"
	"tlsh-go/pkg/lenlog"
)

// base holds the state shared by every window-specialized digester: the
// bucket histogram, the running checksum, and the byte count. Each
// concrete digesterN embeds base and supplies its own lag window and
// Update method, per the "composition over inheritance" shape the spec
// recommends in place of an abstract-digester/concrete-subclass
// arrangement.
type base struct {
	bucketCount int
	bucket      [256]uint64
	checksum    []byte
	count       uint64
}

func newBase(bucketCount, checksumLen int) base {
	return base{
		bucketCount: bucketCount,
		checksum:    make([]byte, checksumLen),
	}
}

func (s *base) reset() {
	for i := range s.bucket {
		s.bucket[i] = 0
	}
	for i := range s.checksum {
		s.checksum[i] = 0
	}
	s.count = 0
}

// inspect exposes the read-only internal state the spec's design notes
// ask for in place of reflective field access: bucket counters,
// checksum, and byte count. It is meant for tests, not production code.
type inspect struct {
	Bucket   []uint64
	Checksum []byte
	Count    uint64
}

func (s *base) inspect() inspect {
	bucket := make([]uint64, s.bucketCount)
	copy(bucket, s.bucket[:s.bucketCount])
	checksum := make([]byte, len(s.checksum))
	copy(checksum, s.checksum)
	return inspect{Bucket: bucket, Checksum: checksum, Count: s.count}
}

// finalize computes the quartile boundaries of the first bucketCount
// histogram counters, compresses them into 2-bit-per-bucket body bytes,
// and assembles the digest value. It does not mutate s in any way the
// caller could observe after the call -- the returned slices are fresh
// copies.
func (s *base) finalize() digest.Value {
	bucketCopy := make([]uint64, s.bucketCount)
	copy(bucketCopy, s.bucket[:s.bucketCount])
	slices.Sort(bucketCopy)

	k := s.bucketCount / 4
	q1 := bucketCopy[k-1]
	q2 := bucketCopy[2*k-1]
	q3 := bucketCopy[3*k-1]

	body := make([]byte, k)
	for i := 0; i < k; i++ {
		var h byte
		for j := 0; j < 4; j++ {
			v := s.bucket[4*i+j]
			var cc byte
			switch {
			case v > q3:
				cc = 3
			case v > q2:
				cc = 2
			case v > q1:
				cc = 1
			}
			h |= cc << uint(2*j)
		}
		body[i] = h
	}

	var q1Ratio, q2Ratio byte
	if q3 != 0 {
		q1Ratio = byte((q1 * 100 / q3) & 0x0F)
		q2Ratio = byte((q2 * 100 / q3) & 0x0F)
	}

	checksum := make([]byte, len(s.checksum))
	copy(checksum, s.checksum)

	return digest.Value{
		Checksum: checksum,
		LValue:   lenlog.LCapturing(s.count),
		Q1Ratio:  q1Ratio,
		Q2Ratio:  q2Ratio,
		Body:     body,
	}
}

// updateChecksum advances the running checksum by one step given the
// current byte l0 and the immediately preceding byte l1.
func (s *base) updateChecksum(l0, l1 byte) {
	s.checksum[0] = mix3(1, l0, l1, s.checksum[0])
	for k := 1; k < len(s.checksum); k++ {
		s.checksum[k] = mix4(s.checksum[k-1], l0, l1, s.checksum[k])
	}
}
