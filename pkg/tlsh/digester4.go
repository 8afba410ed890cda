package tlsh

import "tlsh-go/pkg/digest"

// windowLength4 is the window length this digester specializes for.
const windowLength4 = 4

// digester4 is the window-4 streaming digester: on each byte beyond
// warm-up it folds l0 with every ordered pair drawn from the 3
// preceding bytes (§4.C's w=4 row): C(3,2)=3 pairs, so 3 bucket
// increments per byte.
type digester4 struct {
	base
	lag uint32 // l1 (low byte) .. l3 (high byte)
}

func newDigester4(bucketCount, checksumLen int) *digester4 {
	return &digester4{base: newBase(bucketCount, checksumLen)}
}

func (d *digester4) Update(p []byte) {
	l1 := byte(d.lag)
	l2 := byte(d.lag >> 8)
	l3 := byte(d.lag >> 16)

	i := 0
	for d.count < windowLength4-1 && i < len(p) {
		l0 := p[i]
		i++
		d.count++
		l3, l2, l1 = l2, l1, l0
	}
	if d.count < windowLength4-1 {
		d.lag = uint32(l1) | uint32(l2)<<8 | uint32(l3)<<16
		return
	}

	for ; i < len(p); i++ {
		l0 := p[i]
		d.count++

		d.updateChecksum(l0, l1)

		d.bucket[mix3(salt2, l0, l1, l2)]++
		d.bucket[mix3(salt3, l0, l1, l3)]++
		d.bucket[mix3(salt5, l0, l2, l3)]++

		l3, l2, l1 = l2, l1, l0
	}
	d.lag = uint32(l1) | uint32(l2)<<8 | uint32(l3)<<16
}

func (d *digester4) Reset() {
	d.base.reset()
	d.lag = 0
}

func (d *digester4) Finalize() digest.Value {
	return d.base.finalize()
}
