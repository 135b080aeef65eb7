package driver

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"ember/internal/diag"
	"ember/internal/source"
)

// Cache is the on-disk parse cache. Entries are msgpack files keyed by
// the SHA-256 of the file content, so a hit is always exact.
type Cache struct {
	dir string
}

// CachedDiag is the serializable form of a diagnostic. Sub-diagnostics
// nest the same way they do in memory.
type CachedDiag struct {
	Severity   uint8        `msgpack:"sev"`
	Code       uint16       `msgpack:"code"`
	Message    string       `msgpack:"msg"`
	Positioned bool         `msgpack:"pos"`
	StartByte  uint32       `msgpack:"sb"`
	EndByte    uint32       `msgpack:"eb"`
	StartLine  uint32       `msgpack:"sl"`
	StartCol   uint32       `msgpack:"sc"`
	EndLine    uint32       `msgpack:"el"`
	EndCol     uint32       `msgpack:"ec"`
	Subs       []CachedDiag `msgpack:"subs,omitempty"`
}

// CacheEntry is one cached parse outcome.
type CacheEntry struct {
	TokenCount int          `msgpack:"tokens"`
	Diags      []CachedDiag `msgpack:"diags"`
}

// OpenCache opens (creating if needed) a cache directory.
func OpenCache(dir string) (*Cache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	return &Cache{dir: dir}, nil
}

func (c *Cache) entryPath(hash [32]byte) string {
	return filepath.Join(c.dir, hex.EncodeToString(hash[:])+".emc")
}

// Load reads the entry for a content hash, if present and readable.
func (c *Cache) Load(hash [32]byte) (*CacheEntry, bool) {
	f, err := os.Open(c.entryPath(hash))
	if err != nil {
		return nil, false
	}
	defer f.Close()

	var entry CacheEntry
	if err := msgpack.NewDecoder(f).Decode(&entry); err != nil {
		return nil, false
	}
	return &entry, true
}

// Store writes the entry for a content hash.
func (c *Cache) Store(hash [32]byte, entry *CacheEntry) error {
	f, err := os.CreateTemp(c.dir, "entry-*")
	if err != nil {
		return err
	}
	if err := msgpack.NewEncoder(f).Encode(entry); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), c.entryPath(hash))
}

// cacheDiags converts a bag for storage.
func cacheDiags(bag *diag.Bag) []CachedDiag {
	items := bag.Items()
	out := make([]CachedDiag, 0, len(items))
	for _, d := range items {
		out = append(out, toCached(d))
	}
	return out
}

func toCached(d diag.Diagnostic) CachedDiag {
	c := CachedDiag{
		Severity:   uint8(d.Severity),
		Code:       uint16(d.Code),
		Message:    d.Message,
		Positioned: d.Positioned,
	}
	if d.Positioned {
		c.StartByte = d.Pos.Start.Offset
		c.EndByte = d.Pos.End.Offset
		c.StartLine = d.Pos.Start.Line
		c.StartCol = d.Pos.Start.Col
		c.EndLine = d.Pos.End.Line
		c.EndCol = d.Pos.End.Col
	}
	for _, sub := range d.Subs {
		c.Subs = append(c.Subs, toCached(sub))
	}
	return c
}

// restoreDiags rebuilds a bag from cached diagnostics.
func restoreDiags(cached []CachedDiag, file source.FileID, bag *diag.Bag) {
	for _, c := range cached {
		bag.Add(fromCached(c, file))
	}
}

func fromCached(c CachedDiag, file source.FileID) diag.Diagnostic {
	d := diag.Diagnostic{
		Severity:   diag.Severity(c.Severity),
		Code:       diag.Code(c.Code),
		Message:    c.Message,
		Positioned: c.Positioned,
		File:       source.NoFileID,
	}
	if c.Positioned {
		d.File = file
		d.Pos = source.NewPosition(
			source.Point{Offset: c.StartByte, Line: c.StartLine, Col: c.StartCol},
			source.Point{Offset: c.EndByte, Line: c.EndLine, Col: c.EndCol},
		)
	}
	for _, sub := range c.Subs {
		d.Subs = append(d.Subs, fromCached(sub, file))
	}
	return d
}
