// Package store provides the durable stores backing the application: the
// record collection, the user collection, and the single-slot filter snapshot.
// Each collection is serialized as one JSON document on disk and rewritten in
// full on every mutation. This centralizes persistence concerns the same way a
// database package would, with the stores handing typed values to the rest of
// the application.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// readJSONFile decodes the JSON document at path into v.
// A missing file is reported as-is (callers translate fs.ErrNotExist into the
// empty-collection first-run case); any other open or decode failure means the
// durable medium is unreadable or corrupt.
// Numbers are decoded as json.Number so numeric fields round-trip verbatim
// instead of being coerced to float64.
func readJSONFile(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

// writeJSONFile serializes v and replaces the document at path.
// The document is written to a temporary file in the same directory and then
// renamed into place; rename is atomic on POSIX filesystems, so a crash
// mid-write never leaves a half-written collection behind.
func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
