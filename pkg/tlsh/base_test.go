package tlsh

import "testing"

func TestInspectReportsWarmUpCount(t *testing.T) {
	d := newDigester5(128, 1)
	d.Update([]byte("ab"))

	st := d.inspect()
	if st.Count != 2 {
		t.Errorf("Count = %d, want 2", st.Count)
	}
	for _, c := range st.Checksum {
		if c != 0 {
			t.Errorf("checksum updated during warm-up: %+v", st.Checksum)
			break
		}
	}
	for i, b := range st.Bucket {
		if b != 0 {
			t.Errorf("bucket[%d] = %d, want 0 during warm-up", i, b)
		}
	}
}

func TestInspectReportsRunningState(t *testing.T) {
	// 256 buckets, so that inspect exposes every slot mix3 can increment.
	d := newDigester4(256, 1)
	d.Update([]byte("the quick brown fox"))

	st := d.inspect()
	if st.Count != 19 {
		t.Errorf("Count = %d, want 19", st.Count)
	}
	if len(st.Bucket) != 256 {
		t.Fatalf("len(Bucket) = %d, want 256", len(st.Bucket))
	}

	var total uint64
	for _, b := range st.Bucket {
		total += b
	}
	// digester4 increments 3 buckets per byte past warm-up (windowLength4-1 = 3 bytes).
	want := uint64(3 * (19 - (windowLength4 - 1)))
	if total != want {
		t.Errorf("sum(Bucket) = %d, want %d", total, want)
	}

	allZero := true
	for _, c := range st.Checksum {
		if c != 0 {
			allZero = false
		}
	}
	if allZero {
		t.Errorf("checksum is still zero after running past warm-up")
	}
}

func TestInspectAfterResetIsZero(t *testing.T) {
	d := newDigester6(128, 3)
	d.Update([]byte("some content to populate the histogram and checksum"))
	d.Reset()

	st := d.inspect()
	if st.Count != 0 {
		t.Errorf("Count after Reset = %d, want 0", st.Count)
	}
	for _, c := range st.Checksum {
		if c != 0 {
			t.Errorf("checksum after Reset is nonzero: %+v", st.Checksum)
			break
		}
	}
	for i, b := range st.Bucket {
		if b != 0 {
			t.Errorf("bucket[%d] after Reset = %d, want 0", i, b)
		}
	}
}
