// Package lenlog maps a byte count to an 8-bit "log length" code via a
// fixed, strictly increasing threshold table. TLSH records this code
// instead of the raw length so that two inputs of similar size score as
// similar regardless of their exact byte counts.
package lenlog

import (
	"math"
	"sort"
)

// TopVal[i] is the largest byte count mapped to code i. TopVal[255]
// saturates at the maximum uint64, so every length eventually maps to
// 255. The table is taken verbatim from the reference TLSH length
// table; its values grow roughly geometrically (each step is close to
// the previous one scaled by a shrinking ratio, approximating a log
// curve with three different slopes).
var TopVal = [256]uint64{
	1, 2, 3, 5, 7, 11, 17, 25, 38, 57,
	86, 129, 194, 291, 437, 656, 854, 1110, 1443, 1876,
	2439, 3171, 3475, 3823, 4205, 4626, 5088, 5597, 6157, 6772,
	7450, 8195, 9014, 9916, 10907, 11998, 13198, 14518, 15970, 17567,
	19323, 21256, 23382, 25720, 28292, 31121, 34233, 37656, 41422, 45564,
	50121, 55133, 60646, 66711, 73382, 80721, 88793, 97672, 107439, 118183,
	130002, 143002, 157302, 173032, 190335, 209369, 230306, 253337, 278670, 306538,
	337191, 370911, 408002, 448802, 493682, 543050, 597356, 657091, 722800, 795081,
	874589, 962048, 1058252, 1164078, 1280486, 1408534, 1549388, 1704327, 1874759, 2062236,
	2268459, 2495305, 2744836, 3019320, 3321252, 3653374, 4018711, 4420582, 4862641, 5348905,
	5883796, 6472176, 7119394, 7831333, 8614467, 9475909, 10423501, 11465851, 12612437, 13873681,
	15261050, 16787154, 18465870, 20312458, 22343706, 24578077, 27035886, 29739474, 32713425, 35984770,
	39583245, 43541573, 47895730, 52685306, 57953837, 63749221, 70124148, 77136564, 84850228, 93335252,
	102668779, 112935659, 124229227, 136652151, 150317384, 165349128, 181884040, 200072456, 220079703, 242087671,
	266296456, 292926096, 322218735, 354440623, 389884688, 428873168, 471760495, 518936559, 570830240, 627913311,
	690704607, 759775136, 835752671, 919327967, 1011260767, 1112386880, 1223623232, 1345985727, 1480584256, 1628642751,
	1791507135, 1970657856, 2167723648, 2384496256, 2622945920, 2885240448, 3173764736, 3491141248, 3840255616, 4224281216,
	4646709504, 5111380735, 5622519040, 6184770816, 6803248384, 7483572991, 8231930623, 9055123968, 9960636928, 10956701183,
	12052370943, 13257608703, 14583370240, 16041708032, 17645878271, 19410467839, 21351515136, 23486667775, 25835334655, 28418870271,
	31260756991, 34386835455, 37825517567, 41608071168, 45768882175, 50345768959, 55380346880, 60918384640, 67010226176, 73711251455,
	81082380287, 89190617088, 98109681663, 107920658432, 118712725503, 130584006656, 143642402816, 158006648832, 173807329279, 191188066303,
	210306867200, 231337566208, 254471331839, 279918460927, 307910328319, 338701369343, 372571521024, 409827917823, 450810724351, 495891791872,
	545481015295, 600029102079, 660032028671, 726035300351, 798638833663, 878502772736, 966353059839, 1062988382207, 1169287217151, 1286216024063,
	1414837633024, 1556321468416, 1711953739776, 1883149107199, 2071464050688, 2278610567167, 2506471636992, 2757119049728, 3032831098880, 3336114143231,
	3669725675520, 4036698439680, 4440368349184, 4884405157887, 5372846014464, 5910131113984, 6501144199168, 7151258697727, 7866384908288, 8653023477760,
	9518326480895, 10470159810560, 11517175529472, 12668893659136, 13935783182336,
	math.MaxUint64,
}

// LCapturing returns the smallest index i such that length <= TopVal[i],
// saturating at 255 for anything past TopVal[254]. It is a table-based
// binary search and is the normative length quantizer.
func LCapturing(length uint64) byte {
	i := sort.Search(len(TopVal), func(i int) bool {
		return TopVal[i] >= length
	})
	if i >= len(TopVal) {
		return 255
	}
	return byte(i)
}

const (
	lenStep1 = 656
	lenStep2 = 3199
	log15    = 0.4054651
	log13    = 0.26236426
	log11    = 0.095310180
	lenAdj2  = 8.72777
	lenAdj3  = 62.5472
)

// LCapturingLog is a floating-point cross-check of LCapturing, following
// the same three-slope log curve the table above was derived from. It is
// not used on any production path; LCapturing is normative.
func LCapturingLog(length uint64) byte {
	if length == 0 {
		return 0
	}
	d := math.Log(float64(length))
	switch {
	case length <= lenStep1:
		d = d / log15
	case length <= lenStep2:
		d = d/log13 - lenAdj2
	default:
		d = d/log11 - lenAdj3
	}
	floor := math.Floor(d)
	if floor > 255 {
		return 255
	}
	if floor < 0 {
		return 0
	}
	return byte(floor)
}
