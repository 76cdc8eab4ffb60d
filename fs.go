package recordstore

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const defaultFilePermission = fs.FileMode(0666)

// readFile Reads the whole backing file, the handle is released before returning
func readFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}

// replaceFile Writes buffer into a temporary file next to path and renames it over path,
// so readers either see the previous document or the new one, never a truncated one.
// A symlinked path is resolved first, the link is kept and its target is replaced
func replaceFile(path string, buffer []byte, mode WriteMode) (err error) {
	if resolved, evalErr := filepath.EvalSymlinks(path); evalErr == nil {
		path = resolved
	}

	perm := defaultFilePermission
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(statErr, fs.ErrNotExist) {
		return statErr
	}

	builder := strings.Builder{}
	builder.WriteString(".")
	builder.WriteString(filepath.Base(path))
	builder.WriteString(".")
	builder.WriteString(uuid.NewString())
	builder.WriteString(".tmp")

	tempFilePath := filepath.Join(filepath.Dir(path), builder.String())
	tempFile, err := os.OpenFile(tempFilePath, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			tempFile.Close()
			os.Remove(tempFilePath)
		}
	}()

	if _, err = tempFile.Write(buffer); err != nil {
		return err
	}

	if mode == Sync {
		if err = tempFile.Sync(); err != nil {
			return err
		}
	}

	if err = tempFile.Close(); err != nil {
		return err
	}

	return os.Rename(tempFilePath, path)
}
