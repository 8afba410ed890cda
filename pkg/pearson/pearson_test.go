package pearson

import "testing"

func TestDefaultTableIsPermutation(t *testing.T) {
	var seen [256]bool
	for _, v := range Default {
		if seen[v] {
			t.Fatalf("value %d appears more than once in the default table", v)
		}
		seen[v] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("value %d missing from the default table", i)
		}
	}
}

func TestHashSeqAllDistinct(t *testing.T) {
	table := Default
	seen := make(map[byte]bool, 256)
	for i := 0; i < 256; i++ {
		h := table.HashSeq([]byte{byte(i)})
		if seen[h] {
			t.Fatalf("Hash1-equivalent output %d repeated for input %d", h, i)
		}
		seen[h] = true
	}
	if len(seen) != 256 {
		t.Fatalf("expected 256 distinct outputs, got %d", len(seen))
	}
}

func TestHash1MatchesTable(t *testing.T) {
	table := Default
	for i := 0; i < 256; i++ {
		if got, want := table.Hash1(byte(i)), Default[i]; got != want {
			t.Errorf("Hash1(%d) = %d, want %d", i, got, want)
		}
	}
}

func TestHash2Chains(t *testing.T) {
	table := Default
	for _, a := range []byte{0, 1, 42, 255} {
		for _, b := range []byte{0, 7, 128, 200} {
			want := table.Hash1(table.Hash1(a) ^ b)
			if got := table.Hash2(a, b); got != want {
				t.Errorf("Hash2(%d, %d) = %d, want %d", a, b, got, want)
			}
		}
	}
}

func TestHash3Chains(t *testing.T) {
	table := Default
	a, b, c := byte(3), byte(200), byte(17)
	want := table.Hash1(table.Hash1(table.Hash1(a)^b) ^ c)
	if got := table.Hash3(a, b, c); got != want {
		t.Errorf("Hash3(%d, %d, %d) = %d, want %d", a, b, c, got, want)
	}
}

func TestHashSeqMatchesChainedHash(t *testing.T) {
	table := Default
	seq := []byte("The quick brown fox jumps over the lazy dog")
	got := table.HashSeq(seq)
	var want byte
	for _, x := range seq {
		want = table.Hash1(want ^ x)
	}
	if got != want {
		t.Errorf("HashSeq(%q) = %d, want %d", seq, got, want)
	}
}

func TestHashSeqEmpty(t *testing.T) {
	table := Default
	if h := table.HashSeq(nil); h != 0 {
		t.Errorf("HashSeq(nil) = %d, want 0", h)
	}
}

func TestNewTableRejectsDuplicates(t *testing.T) {
	var perm [256]byte
	for i := range perm {
		perm[i] = 0 // every slot maps to zero: not a permutation
	}
	if _, err := NewTable(perm); err == nil {
		t.Fatal("expected NewTable to reject a non-permutation, got nil error")
	}
}

func TestNewTableAcceptsValidPermutation(t *testing.T) {
	var perm [256]byte
	for i := range perm {
		perm[i] = byte(255 - i) // a trivial but valid permutation
	}
	table, err := NewTable(perm)
	if err != nil {
		t.Fatalf("NewTable rejected a valid permutation: %v", err)
	}
	if table.Hash1(0) != 255 {
		t.Errorf("Hash1(0) = %d, want 255", table.Hash1(0))
	}
}

func TestNewTableAcceptsDefault(t *testing.T) {
	if _, err := NewTable(Default); err != nil {
		t.Fatalf("NewTable rejected the default permutation: %v", err)
	}
}
