package tlsh

import "tlsh-go/pkg/digest"

// windowLength7 is the window length this digester specializes for.
const windowLength7 = 7

// digester7 is the window-7 streaming digester.
type digester7 struct {
	base
	lag uint64 // l1 (low byte) .. l6
}

func newDigester7(bucketCount, checksumLen int) *digester7 {
	return &digester7{base: newBase(bucketCount, checksumLen)}
}

func (d *digester7) Update(p []byte) {
	l1 := byte(d.lag)
	l2 := byte(d.lag >> 8)
	l3 := byte(d.lag >> 16)
	l4 := byte(d.lag >> 24)
	l5 := byte(d.lag >> 32)
	l6 := byte(d.lag >> 40)

	i := 0
	for d.count < windowLength7-1 && i < len(p) {
		l0 := p[i]
		i++
		d.count++
		l6, l5, l4, l3, l2, l1 = l5, l4, l3, l2, l1, l0
	}
	if d.count < windowLength7-1 {
		d.lag = uint64(l1) | uint64(l2)<<8 | uint64(l3)<<16 | uint64(l4)<<24 | uint64(l5)<<32 | uint64(l6)<<40
		return
	}

	for ; i < len(p); i++ {
		l0 := p[i]
		d.count++

		d.updateChecksum(l0, l1)

		d.bucket[mix3(salt2, l0, l1, l2)]++
		d.bucket[mix3(salt3, l0, l1, l3)]++
		d.bucket[mix3(salt5, l0, l2, l3)]++
		d.bucket[mix3(salt7, l0, l2, l4)]++
		d.bucket[mix3(salt11, l0, l1, l4)]++
		d.bucket[mix3(salt13, l0, l3, l4)]++
		d.bucket[mix3(salt17, l0, l1, l5)]++
		d.bucket[mix3(salt19, l0, l2, l5)]++
		d.bucket[mix3(salt23, l0, l3, l5)]++
		d.bucket[mix3(salt29, l0, l4, l5)]++
		d.bucket[mix3(salt31, l0, l1, l6)]++
		d.bucket[mix3(salt37, l0, l2, l6)]++
		d.bucket[mix3(salt41, l0, l3, l6)]++
		d.bucket[mix3(salt43, l0, l4, l6)]++
		d.bucket[mix3(salt47, l0, l5, l6)]++

		l6, l5, l4, l3, l2, l1 = l5, l4, l3, l2, l1, l0
	}
	d.lag = uint64(l1) | uint64(l2)<<8 | uint64(l3)<<16 | uint64(l4)<<24 | uint64(l5)<<32 | uint64(l6)<<40
}

func (d *digester7) Reset() {
	d.base.reset()
	d.lag = 0
}

func (d *digester7) Finalize() digest.Value {
	return d.base.finalize()
}
