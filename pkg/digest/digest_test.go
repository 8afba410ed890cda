package digest

import (
	"bytes"
	"errors"
	"testing"

	"tlsh-go/pkg/tlsherr"
)

func sampleValue(checksumLen, bodyLen int) Value {
	checksum := make([]byte, checksumLen)
	for i := range checksum {
		checksum[i] = byte(0x10 + i)
	}
	body := make([]byte, bodyLen)
	for i := range body {
		body[i] = byte(i * 3 % 256)
	}
	return Value{
		Checksum: checksum,
		LValue:   0x42,
		Q1Ratio:  7,
		Q2Ratio:  13,
		Body:     body,
	}
}

func TestPackUnpackRoundTrip(t *testing.T) {
	cases := []struct {
		name       string
		checksum   int
		body       int
		wantLength int
	}{
		{"48-bucket-1-byte", 1, 12, 15},
		{"128-bucket-1-byte", 1, 32, 35},
		{"128-bucket-3-byte", 3, 32, 37},
		{"256-bucket-1-byte", 1, 64, 67},
		{"256-bucket-3-byte", 3, 64, 69},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := sampleValue(c.checksum, c.body)
			packed := Pack(v)
			if len(packed) != c.wantLength {
				t.Fatalf("Pack length = %d, want %d", len(packed), c.wantLength)
			}
			got, err := Unpack(packed)
			if err != nil {
				t.Fatalf("Unpack: %v", err)
			}
			if !got.Equal(v) {
				t.Fatalf("round trip mismatch: got %+v, want %+v", got, v)
			}
			if repacked := Pack(got); !bytes.Equal(repacked, packed) {
				t.Fatalf("repack mismatch: got % x, want % x", repacked, packed)
			}
		})
	}
}

func TestUnpackBadLength(t *testing.T) {
	_, err := Unpack(make([]byte, 20))
	if !errors.Is(err, tlsherr.ErrBadFormat) {
		t.Fatalf("Unpack(20 bytes) error = %v, want ErrBadFormat", err)
	}
}

func TestPackLayout(t *testing.T) {
	v := Value{
		Checksum: []byte{0x12},
		LValue:   0x34,
		Q1Ratio:  0xA,
		Q2Ratio:  0xB,
		Body:     []byte{0x01, 0x02, 0x03},
	}
	packed := Pack(v)
	want := []byte{0x21, 0x43, 0xAB, 0x03, 0x02, 0x01}
	if !bytes.Equal(packed, want) {
		t.Fatalf("Pack layout = % x, want % x", packed, want)
	}
}

func TestToHexUpperCase(t *testing.T) {
	packed := []byte{0xde, 0xad, 0xbe, 0xef}
	if got, want := ToHex(packed), "DEADBEEF"; got != want {
		t.Errorf("ToHex = %q, want %q", got, want)
	}
}

func TestToHexT1Prefix(t *testing.T) {
	packed := []byte{0xde, 0xad}
	if got, want := ToHexT1(packed), "T1DEAD"; got != want {
		t.Errorf("ToHexT1 = %q, want %q", got, want)
	}
}

func TestFromHexRoundTrip(t *testing.T) {
	packed := []byte{0x01, 0x02, 0x03, 0xff}
	hexStr := ToHex(packed)
	got, err := FromHex(hexStr)
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if !bytes.Equal(got, packed) {
		t.Fatalf("FromHex(ToHex(b)) = % x, want % x", got, packed)
	}
}

func TestFromHexAcceptsT1Prefix(t *testing.T) {
	packed := []byte{0x01, 0x02}
	got, err := FromHex(ToHexT1(packed))
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if !bytes.Equal(got, packed) {
		t.Fatalf("FromHex(ToHexT1(b)) = % x, want % x", got, packed)
	}
}

func TestFromHexRejectsNonHex(t *testing.T) {
	_, err := FromHex("not-hex-zz")
	if !errors.Is(err, tlsherr.ErrBadFormat) {
		t.Fatalf("FromHex error = %v, want ErrBadFormat", err)
	}
}

func TestEqual(t *testing.T) {
	a := sampleValue(1, 32)
	b := sampleValue(1, 32)
	if !a.Equal(b) {
		t.Fatal("expected two identically-constructed values to be equal")
	}
	b.LValue++
	if a.Equal(b) {
		t.Fatal("expected values with different LValue to be unequal")
	}
}
