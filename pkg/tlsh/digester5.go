package tlsh

import "tlsh-go/pkg/digest"

// windowLength5 is the window length this digester specializes for.
// digester5 serves both the c=1 (b=48) and c=3 (b=128/256) variants;
// checksum length flows through only via base.checksum's size.
const windowLength5 = 5

// digester5 is the window-5 streaming digester, the default window
// length named by a bare "TLSH" or "TLSH-*-*" with no "/w" suffix.
type digester5 struct {
	base
	lag uint32 // l1 (low byte) .. l4 (high byte)
}

func newDigester5(bucketCount, checksumLen int) *digester5 {
	return &digester5{base: newBase(bucketCount, checksumLen)}
}

func (d *digester5) Update(p []byte) {
	l1 := byte(d.lag)
	l2 := byte(d.lag >> 8)
	l3 := byte(d.lag >> 16)
	l4 := byte(d.lag >> 24)

	i := 0
	for d.count < windowLength5-1 && i < len(p) {
		l0 := p[i]
		i++
		d.count++
		l4, l3, l2, l1 = l3, l2, l1, l0
	}
	if d.count < windowLength5-1 {
		d.lag = uint32(l1) | uint32(l2)<<8 | uint32(l3)<<16 | uint32(l4)<<24
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

		l4, l3, l2, l1 = l3, l2, l1, l0
	}
	d.lag = uint32(l1) | uint32(l2)<<8 | uint32(l3)<<16 | uint32(l4)<<24
}

func (d *digester5) Reset() {
	d.base.reset()
	d.lag = 0
}

func (d *digester5) Finalize() digest.Value {
	return d.base.finalize()
}
