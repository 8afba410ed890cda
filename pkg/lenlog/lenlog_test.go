package lenlog

import (
	"math"
	"testing"
)

func TestLCapturingZero(t *testing.T) {
	if got := LCapturing(0); got != 0 {
		t.Errorf("LCapturing(0) = %d, want 0", got)
	}
}

func TestLCapturingBoundaries(t *testing.T) {
	for i := 0; i < 255; i++ {
		if got := LCapturing(TopVal[i]); got != byte(i) {
			t.Errorf("LCapturing(TopVal[%d]=%d) = %d, want %d", i, TopVal[i], got, i)
		}
		if got := LCapturing(TopVal[i] + 1); got != byte(i+1) {
			t.Errorf("LCapturing(TopVal[%d]+1=%d) = %d, want %d", i, TopVal[i]+1, got, i+1)
		}
	}
}

func TestLCapturingSaturates(t *testing.T) {
	if got := LCapturing(math.MaxUint64); got != 255 {
		t.Errorf("LCapturing(MaxUint64) = %d, want 255", got)
	}
}

func TestLCapturingMonotonic(t *testing.T) {
	var prev byte
	for _, n := range []uint64{0, 1, 2, 100, 10000, 1 << 30, 1 << 40, math.MaxUint64} {
		got := LCapturing(n)
		if got < prev {
			t.Errorf("LCapturing(%d) = %d, not monotonic after previous value %d", n, got, prev)
		}
		prev = got
	}
}

func TestTopValStrictlyIncreasing(t *testing.T) {
	for i := 0; i < 255; i++ {
		if !(TopVal[i+1] > TopVal[i]) {
			t.Errorf("TopVal[%d]=%d is not greater than TopVal[%d]=%d", i+1, TopVal[i+1], i, TopVal[i])
		}
	}
	if TopVal[255] != math.MaxUint64 {
		t.Errorf("TopVal[255] = %d, want MaxUint64", TopVal[255])
	}
}

func TestLCapturingLogAgreesRoughly(t *testing.T) {
	// LCapturingLog is a cross-check, not normative; it should stay within
	// a few codes of the table-based result across a representative range.
	for _, n := range []uint64{1, 10, 100, 1000, 10000, 100000, 1000000, 1 << 32} {
		table := int(LCapturing(n))
		log := int(LCapturingLog(n))
		diff := table - log
		if diff < 0 {
			diff = -diff
		}
		if diff > 5 {
			t.Errorf("LCapturing(%d)=%d and LCapturingLog(%d)=%d diverge by %d", n, table, n, log, diff)
		}
	}
}

func TestLCapturingLogZero(t *testing.T) {
	if got := LCapturingLog(0); got != 0 {
		t.Errorf("LCapturingLog(0) = %d, want 0", got)
	}
}
