/*
A golang embeddable record store backed by a single structured text file (YAML by
default). Records are {id, text} pairs, ids are assigned by [RecordStore.Append] as
the highest existing id plus one.

Every operation opens, reads or replaces and closes the backing file, nothing is cached
between calls. Writes and appends of the same [RecordStore] value are serialized, but
there is no locking across different RecordStore values or processes: two concurrent
appends over the same path may compute the same id and one of them will overwrite the
other. Use a single writer per file.

Failures are logged once, at error level, and then returned. Read failures go to the
console logger and write or append failures go to the file logger, see the logging
package for the sinks.
*/
package recordstore

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gustapinto/go-record-store/codec"
	"github.com/gustapinto/go-record-store/logging"
	"go.uber.org/zap"
)

// Operation names, found in [Error.Op] and used as the logger name of failures
const (
	OpNew    = "new"
	OpRead   = "read"
	OpWrite  = "write"
	OpAppend = "append"
)

// RecordStore A record store over a single backing file
type RecordStore struct {
	mu            sync.RWMutex
	path          string
	codec         codec.Codec
	writeMode     WriteMode
	consoleLogger *zap.Logger
	fileLogger    *zap.Logger
}

// New Create a [RecordStore] for the file at path. If the file does not exist it is
// created holding an empty sequence, an existing file is not validated until it is read
func New(path string, opts ...Option) (*RecordStore, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, corrupted(OpNew, path, err)
	}

	store := &RecordStore{
		path:          absPath,
		codec:         codec.ForPath(absPath),
		writeMode:     Sync,
		consoleLogger: logging.Console(),
		fileLogger:    logging.File(logging.DefaultFilePath),
	}

	for _, opt := range opts {
		opt(store)
	}

	_, err = os.Stat(absPath)
	if err == nil {
		return store, nil
	}

	if !errors.Is(err, fs.ErrNotExist) {
		return nil, corrupted(OpNew, absPath, err)
	}

	if err := store.save(Sanitize(nil)); err != nil {
		return nil, corrupted(OpNew, absPath, err)
	}

	return store, nil
}

// Path Returns the absolute path of the backing file
func (s *RecordStore) Path() string {
	return s.path
}

// Read Returns every valid record of the backing file in file order. It fails with
// [ErrFileNotFound] when the file was removed after construction and with
// [ErrFileCorrupted] when it cannot be read or decoded. Malformed entries are dropped
// silently, see [Sanitize]
func (s *RecordStore) Read() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records, err := s.load()
	if err != nil {
		s.consoleLogger.Named(OpRead).Error(err.Error())
		return nil, err
	}

	return records, nil
}

// Write Replaces the backing file content with the valid subset of records
func (s *RecordStore) Write(records []Record) error {
	return s.WriteValue(records)
}

// WriteValue Replaces the backing file content with the valid subset of an arbitrary
// decoded document, see [Sanitize]
func (s *RecordStore) WriteValue(value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(Sanitize(value)); err != nil {
		err = corrupted(OpWrite, s.path, err)
		s.fileLogger.Named(OpWrite).Error(err.Error())
		return err
	}

	return nil
}

// Append Adds a record holding text with the next id and replaces the backing file with
// the resulting sequence. Any failure, including a failed read, is reported as
// [ErrFileCorrupted]
func (s *RecordStore) Append(text string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.append(text)
	if err != nil {
		err = corrupted(OpAppend, s.path, err)
		s.fileLogger.Named(OpAppend).Error(err.Error())
		return Record{}, err
	}

	return record, nil
}

func (s *RecordStore) append(text string) (Record, error) {
	records, err := s.load()
	if err != nil {
		return Record{}, causeOf(err)
	}

	record := Record{
		ID:   nextID(records),
		Text: text,
	}

	if err := s.save(append(records, record)); err != nil {
		return Record{}, err
	}

	return record, nil
}

// load Reads and sanitizes the backing file, returning an [*Error] on failure
func (s *RecordStore) load() ([]Record, error) {
	if _, err := os.Stat(s.path); errors.Is(err, fs.ErrNotExist) {
		return nil, notFound(OpRead, s.path)
	}

	buffer, err := readFile(s.path)
	if err != nil {
		return nil, corrupted(OpRead, s.path, err)
	}

	value, err := s.codec.Unmarshal(buffer)
	if err != nil {
		return nil, corrupted(OpRead, s.path, err)
	}

	return Sanitize(value), nil
}

// causeOf Strips the [*Error] of a failed load so the append error only carries its
// cause, a missing file must not surface as [ErrFileNotFound] from Append
func causeOf(err error) error {
	var loadErr *Error
	if !errors.As(err, &loadErr) {
		return err
	}

	if loadErr.Err != nil {
		return loadErr.Err
	}

	return errors.New(loadErr.Error())
}

func (s *RecordStore) save(records []Record) error {
	buffer, err := s.codec.Marshal(records)
	if err != nil {
		return err
	}

	return replaceFile(s.path, buffer, s.writeMode)
}
