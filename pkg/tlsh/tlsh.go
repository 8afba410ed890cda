// Package tlsh implements the TLSH locality-sensitive fuzzy hash: a
// streaming digester that folds a byte sequence into a sliding-window
// triplet histogram and a running checksum, then compresses the
// histogram into a compact digest value comparable with a bounded
// integer distance. It is grounded on the ktlsh Java reference
// implementation, re-expressed with Go's usual streaming-hash shape
// (an Update/Reset/Sum-style object rather than a one-shot function).
package tlsh

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"tlsh-go/internal/tlog"
	"tlsh-go/pkg/digest"
	"tlsh-go/pkg/tlsherr"
)

// Digester is the streaming interface every window-specialized digester
// satisfies. Update may be called any number of times with arbitrarily
// sized chunks; Update(a); Update(b) must produce the same state as a
// single Update(append(a, b...)). Finalize does not mutate the
// digester's state and may be called at any point, including before
// any byte has been written.
type Digester interface {
	Update(p []byte)
	Reset()
	Finalize() digest.Value
}

// bucketCountFor and checksumLenFor validate and translate the public
// (b, c) parameters into the internal sizes used by base and digest.Pack.
func bucketCountFor(b int) (int, error) {
	switch b {
	case 48, 128, 256:
		return b, nil
	default:
		return 0, fmt.Errorf("tlsh: bucket count %d is not one of 48/128/256: %w", b, tlsherr.ErrInvalidParameter)
	}
}

func checksumLenFor(c int) (int, error) {
	switch c {
	case 1, 3:
		return c, nil
	default:
		return 0, fmt.Errorf("tlsh: checksum length %d is not one of 1/3: %w", c, tlsherr.ErrInvalidParameter)
	}
}

// New constructs a Digester for window length w, bucket count b, and
// checksum length c. w must be in [4,8], b must be one of 48/128/256,
// and c must be one of 1/3; b=48 additionally requires c=1, since no
// packed digest layout exists for a 48-bucket body with a 3-byte
// checksum.
func New(w, b, c int) (Digester, error) {
	bucketCount, err := bucketCountFor(b)
	if err != nil {
		return nil, err
	}
	checksumLen, err := checksumLenFor(c)
	if err != nil {
		return nil, err
	}
	if bucketCount == 48 && checksumLen != 1 {
		return nil, fmt.Errorf("tlsh: bucket count 48 requires checksum length 1, got %d: %w", c, tlsherr.ErrInvalidParameter)
	}

	switch w {
	case 4:
		return newDigester4(bucketCount, checksumLen), nil
	case 5:
		return newDigester5(bucketCount, checksumLen), nil
	case 6:
		return newDigester6(bucketCount, checksumLen), nil
	case 7:
		return newDigester7(bucketCount, checksumLen), nil
	case 8:
		return newDigester8(bucketCount, checksumLen), nil
	default:
		return nil, fmt.Errorf("tlsh: window length %d is not in [4,8]: %w", w, tlsherr.ErrInvalidParameter)
	}
}

// nameGrammar matches "TLSH-(48|128|256)-(1|3)[/([4-8])]". The leading
// "TLSH" is required; the "-b-c" segment is optional, so "TLSH" alone
// (and "TLSH/w") also match.
var nameGrammar = regexp.MustCompile(`^TLSH(?:-(48|128|256)-(1|3))?(?:/([4-8]))?$`)

// NewFromName constructs a Digester from an algorithm name of the form
// "TLSH-(48|128|256)-(1|3)[/([4-8])]". The window suffix defaults to 5
// when omitted, and the bare name "TLSH" is an alias for "TLSH-128-1/5".
func NewFromName(name string) (Digester, error) {
	m := nameGrammar.FindStringSubmatch(name)
	if m == nil {
		tlog.Warn().Str("name", name).Msg("rejecting algorithm name")
		return nil, fmt.Errorf("tlsh: algorithm name %q does not match TLSH-(48|128|256)-(1|3)[/(4-8)]: %w", name, tlsherr.ErrInvalidParameter)
	}

	b, c := 128, 1
	if m[1] != "" {
		b, _ = strconv.Atoi(m[1])
		c, _ = strconv.Atoi(m[2])
	}
	w := 5
	if m[3] != "" {
		w, _ = strconv.Atoi(m[3])
	}

	return New(w, b, c)
}

// HashBytes hashes data in one call using the digester named by algo,
// per NewFromName's grammar.
func HashBytes(algo string, data []byte) (digest.Value, error) {
	d, err := NewFromName(algo)
	if err != nil {
		return digest.Value{}, err
	}
	d.Update(data)
	return d.Finalize(), nil
}

// HashReader streams r through the digester named by algo, reading in
// fixed-size chunks so arbitrarily large inputs need only bounded
// memory, mirroring the io.Copy-driven streaming-hash idiom used
// elsewhere in the retrieval corpus for whole-file hashing.
func HashReader(algo string, r io.Reader) (digest.Value, error) {
	d, err := NewFromName(algo)
	if err != nil {
		return digest.Value{}, err
	}

	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			d.Update(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return digest.Value{}, fmt.Errorf("tlsh: reading input: %w", err)
		}
	}
	return d.Finalize(), nil
}
