// Package corpus keeps a small in-memory set of named, hashed samples
// and finds the nearest one to a query digest. It exists to give the
// digest/score packages a caller that exercises them together, and to
// give corpus archives a stable per-entry identity that survives a
// rename -- something a filename alone cannot do.
package corpus

import (
	"bytes"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"

	"tlsh-go/pkg/digest"
	"tlsh-go/pkg/score"
	"tlsh-go/pkg/tlsh"
)

// Entry is one named, hashed sample held by a Corpus.
type Entry struct {
	ID     uuid.UUID
	Name   string
	Digest digest.Value
}

// Corpus is an unordered set of Entry values, searchable by nearest
// digest distance.
type Corpus struct {
	entries []Entry
}

// New returns an empty Corpus.
func New() *Corpus {
	return &Corpus{}
}

// Add hashes data with the named algorithm, assigns it a fresh random
// identity, and appends it to the corpus.
func (c *Corpus) Add(name string, data []byte, algo string) (Entry, error) {
	v, err := tlsh.HashBytes(algo, data)
	if err != nil {
		return Entry{}, fmt.Errorf("corpus: hashing %q: %w", name, err)
	}
	e := Entry{ID: uuid.New(), Name: name, Digest: v}
	c.entries = append(c.entries, e)
	return e, nil
}

// Len reports the number of entries in the corpus.
func (c *Corpus) Len() int { return len(c.entries) }

// Nearest returns the entry whose digest is closest to target by
// score.ScoreValues, along with that score. It returns an error if the
// corpus is empty or if no entry's digest is comparable to target
// (differing checksum or body length).
func (c *Corpus) Nearest(target digest.Value, includeLength bool) (Entry, int, error) {
	if len(c.entries) == 0 {
		return Entry{}, 0, fmt.Errorf("corpus: Nearest called on an empty corpus")
	}

	var best Entry
	bestScore := -1
	var lastErr error
	for _, e := range c.entries {
		s, err := score.ScoreValues(target, e.Digest, includeLength)
		if err != nil {
			lastErr = err
			continue
		}
		if bestScore < 0 || s < bestScore {
			best, bestScore = e, s
		}
	}
	if bestScore < 0 {
		return Entry{}, 0, fmt.Errorf("corpus: no comparable entry: %w", lastErr)
	}
	return best, bestScore, nil
}

// CompressArchive zstd-compresses data for on-disk storage of a corpus
// snapshot.
func CompressArchive(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("corpus: creating zstd encoder: %w", err)
	}
	if _, err := enc.Write(data); err != nil {
		_ = enc.Close()
		return nil, fmt.Errorf("corpus: compressing archive: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("corpus: closing zstd encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// DecompressArchive reverses CompressArchive, reading a zstd-compressed
// corpus snapshot from r.
func DecompressArchive(r io.Reader) ([]byte, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("corpus: creating zstd decoder: %w", err)
	}
	defer dec.Close()

	data, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("corpus: decompressing archive: %w", err)
	}
	return data, nil
}
