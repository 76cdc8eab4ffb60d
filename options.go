package recordstore

import (
	"github.com/gustapinto/go-record-store/codec"
	"go.uber.org/zap"
)

// Option Configures a [RecordStore] created with [New]
type Option func(*RecordStore)

// WithCodec Sets the backing file format, by default it is chosen from the file extension
// with [codec.ForPath]
func WithCodec(c codec.Codec) Option {
	return func(s *RecordStore) {
		if c != nil {
			s.codec = c
		}
	}
}

// WithConsoleLogger Sets the logger used for read failures
func WithConsoleLogger(logger *zap.Logger) Option {
	return func(s *RecordStore) {
		if logger != nil {
			s.consoleLogger = logger
		}
	}
}

// WithFileLogger Sets the logger used for write and append failures
func WithFileLogger(logger *zap.Logger) Option {
	return func(s *RecordStore) {
		if logger != nil {
			s.fileLogger = logger
		}
	}
}

// WithWriteMode Sets the [WriteMode], invalid modes fallback to [Sync]
func WithWriteMode(mode WriteMode) Option {
	return func(s *RecordStore) {
		if mode > Buffered {
			mode = Sync
		}

		s.writeMode = mode
	}
}
