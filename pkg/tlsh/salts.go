package tlsh

import "tlsh-go/pkg/pearson"

// salts are the Pearson-permuted small primes used to seed each bucket
// increment (§4.C: "the salt constants are P[p] for the small primes p
// listed"). Deriving them from the table at init time, rather than
// hardcoding the permuted values, keeps them tied to pearson.Default by
// construction.
var (
	salt2  = pearson.Default.Hash1(2)
	salt3  = pearson.Default.Hash1(3)
	salt5  = pearson.Default.Hash1(5)
	salt7  = pearson.Default.Hash1(7)
	salt11 = pearson.Default.Hash1(11)
	salt13 = pearson.Default.Hash1(13)
	salt17 = pearson.Default.Hash1(17)
	salt19 = pearson.Default.Hash1(19)
	salt23 = pearson.Default.Hash1(23)
	salt29 = pearson.Default.Hash1(29)
	salt31 = pearson.Default.Hash1(31)
	salt37 = pearson.Default.Hash1(37)
	salt41 = pearson.Default.Hash1(41)
	salt43 = pearson.Default.Hash1(43)
	salt47 = pearson.Default.Hash1(47)
	salt53 = pearson.Default.Hash1(53)
	salt59 = pearson.Default.Hash1(59)
	salt61 = pearson.Default.Hash1(61)
	salt67 = pearson.Default.Hash1(67)
	salt71 = pearson.Default.Hash1(71)
	salt73 = pearson.Default.Hash1(73)
)

// mix3 computes P[P[P[seed^i]^j]^k], the three-fold Pearson mixing used
// both to place a triplet into a bucket index and, seeded with 1, to
// advance the first checksum byte.
func mix3(seed, i, j, k byte) byte {
	h := pearson.Default.Hash1(seed ^ i)
	h = pearson.Default.Hash1(h ^ j)
	return pearson.Default.Hash1(h ^ k)
}

// mix4 computes P[P[P[P[seed]^i]^j]^k], used to advance the second and
// third checksum bytes from the one before them.
func mix4(seed, i, j, k byte) byte {
	return mix3(pearson.Default.Hash1(seed), i, j, k)
}
