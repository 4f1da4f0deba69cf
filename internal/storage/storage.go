// Package storage is the persistence boundary: a flat comma-delimited
// snapshot file with one record per account. The format is lossy by
// construction, dropping credentials and transaction history; the ledger
// seeds placeholders on restore rather than inventing recovered state.
package storage

import (
	"bytes"
	"os"

	"github.com/sirupsen/logrus"
)

// Store reads and writes the snapshot file.
type Store struct {
	path   string
	logger *logrus.Logger
}

// NewStore creates a store for the given file path.
func NewStore(path string, logger *logrus.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Load reads the snapshot. A missing file is a clean empty start, not an
// error.
func (s *Store) Load() ([]Record, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		s.logger.WithField("path", s.path).Info("Storage.Load.no existing data file, starting fresh")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := Decode(f)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"path": s.path, "accounts": len(records)}).Info("Storage.Load.complete")
	return records, nil
}

// Save writes the snapshot atomically: the records go to a temp file that
// replaces the real one via rename, so a crash mid-write never corrupts
// the previous snapshot.
func (s *Store) Save(records []Record) error {
	var buf bytes.Buffer
	if err := Encode(&buf, records); err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"path": s.path, "accounts": len(records)}).Info("Storage.Save.complete")
	return nil
}
