// Package fs provides file-based storage for extracted records.
package fs

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/orgscrape"
)

// EncodeRecords writes records to w as an indented JSON array in the
// directory export shape. A nil slice is written as an empty array.
func EncodeRecords(w io.Writer, records []*orgscrape.Record) error {
	if records == nil {
		records = []*orgscrape.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}

// DecodeRecords reads a JSON array of records written by EncodeRecords.
func DecodeRecords(r io.Reader) ([]*orgscrape.Record, error) {
	var records []*orgscrape.Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, orgscrape.Errorf(orgscrape.EINVALID, "invalid records file: %v", err)
	}
	return records, nil
}

// Ensure RecordWriter implements orgscrape.RecordSink at compile time.
var _ orgscrape.RecordSink = (*RecordWriter)(nil)

// RecordWriter collects records and writes them to a JSON file with atomic
// update semantics. Records are written to path.tmp, then moved to path on Commit.
type RecordWriter struct {
	path string

	mu      sync.Mutex
	records []*orgscrape.Record
}

// NewRecordWriter creates a new RecordWriter for the given output path.
func NewRecordWriter(path string) *RecordWriter {
	return &RecordWriter{path: path}
}

func (w *RecordWriter) tempPath() string {
	return w.path + ".tmp"
}

// SaveRecords appends records to the pending output.
func (w *RecordWriter) SaveRecords(ctx context.Context, records []*orgscrape.Record) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.records = append(w.records, records...)
	return nil
}

// Commit writes all saved records and atomically replaces the output file.
func (w *RecordWriter) Commit() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if dir := filepath.Dir(w.path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(w.tempPath())
	if err != nil {
		return err
	}
	if err := EncodeRecords(f, w.records); err != nil {
		f.Close()
		os.Remove(w.tempPath())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(w.tempPath())
		return err
	}

	return os.Rename(w.tempPath(), w.path)
}

// Abort discards saved records and any partially written output.
func (w *RecordWriter) Abort() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.records = nil

	if err := os.Remove(w.tempPath()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
