// Package logging builds the error sinks used by the record store. Every sink writes
// one line per entry in the fixed format
//
//	timestamp - operation_name - level - message
//
// where operation_name is the logger name, usually set with [zap.Logger.Named].
package logging

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	// DefaultFilePath The persistent log file used when no other path is configured
	DefaultFilePath = "file_log.txt"

	// TimeLayout The layout of the first column of every line
	TimeLayout = "2006-01-02 15:04:05,000"

	separator = " - "
)

var pool = buffer.NewPool()

// Console Create a logger writing to the process standard error
func Console() *zap.Logger {
	return New(zapcore.Lock(os.Stderr))
}

// File Create a logger appending to the file at path. The file is opened in append mode
// for every entry and closed right after, so it is only created once something is logged
func File(path string) *zap.Logger {
	return New(&appendFile{path: path})
}

// New Create an error level logger over an arbitrary [zapcore.WriteSyncer]
func New(ws zapcore.WriteSyncer) *zap.Logger {
	core := zapcore.NewCore(lineEncoder{zapcore.NewJSONEncoder(zapcore.EncoderConfig{})}, ws, zapcore.ErrorLevel)

	return zap.New(core)
}

// lineEncoder Renders entries as fixed format lines. Structured fields are not part of
// the format and are dropped
type lineEncoder struct {
	zapcore.Encoder
}

func (e lineEncoder) Clone() zapcore.Encoder {
	return lineEncoder{e.Encoder.Clone()}
}

func (e lineEncoder) EncodeEntry(entry zapcore.Entry, _ []zapcore.Field) (*buffer.Buffer, error) {
	line := pool.Get()

	line.AppendString(entry.Time.Format(TimeLayout))
	line.AppendString(separator)
	line.AppendString(entry.LoggerName)
	line.AppendString(separator)
	line.AppendString(entry.Level.CapitalString())
	line.AppendString(separator)
	line.AppendString(entry.Message)
	line.AppendString(zapcore.DefaultLineEnding)

	return line, nil
}

// appendFile A [zapcore.WriteSyncer] that holds no file handle between writes
type appendFile struct {
	mu   sync.Mutex
	path string
}

func (f *appendFile) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	return file.Write(p)
}

func (f *appendFile) Sync() error {
	return nil
}
