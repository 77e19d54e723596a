package chunked

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/custodia-labs/extracttext/internal/core/domain"
)

// ReadFile reads path, reporting failures as protocol statuses:
// missing or unreadable files are StatusAccess, permission failures are
// StatusAccessDenied and directories are StatusInvalidArg.
func ReadFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, StatError(path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory: %w", path, domain.StatusInvalidArg)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, StatError(path, err)
	}
	return data, nil
}

// StatError wraps a file system error with its protocol status.
func StatError(path string, err error) error {
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("open %s: %w", path, errors.Join(err, domain.StatusAccessDenied))
	}
	return fmt.Errorf("open %s: %w", path, errors.Join(err, domain.StatusAccess))
}

// Corrupt reports unparseable content as StatusFail.
func Corrupt(format string, err error) error {
	return fmt.Errorf("parse %s: %w", format, errors.Join(err, domain.StatusFail))
}
