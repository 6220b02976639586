// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

const (
	backupSuffix = ".bak"
	defaultMode  = fs.FileMode(0o644)
)

// 📄 FileInfo contains metadata about a file
type FileInfo struct {
	Path     string      // Path as given by the caller
	Size     int64       // File size in bytes
	Mode     os.FileMode // File permissions
	Checksum string      // SHA-256 of the content
}

// 💾 FileManager handles all file system operations
type FileManager interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	WriteFile(ctx context.Context, path string, content []byte) error
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
	Stat(ctx context.Context, path string) (FileInfo, error)

	// BackupFile copies path to path.bak and returns the backup path
	BackupFile(ctx context.Context, path string) (string, error)
	RestoreFile(ctx context.Context, path string) error
}

// 🔧 Manager implements FileManager on the local filesystem.
// Relative paths are resolved against baseDir.
type Manager struct {
	baseDir string
}

var _ FileManager = (*Manager)(nil)

// 🏭 New creates a new file manager
func New(baseDir string) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
	}
}

// 🔒 getAbsPath returns the path to operate on
func (m *Manager) getAbsPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(m.baseDir, path)
}

// 🔍 calculateChecksum generates a SHA-256 hash of the content
func calculateChecksum(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// modeOf returns the permissions of an existing file, or the default for a new one
func modeOf(path string) fs.FileMode {
	if fi, err := os.Stat(path); err == nil {
		return fi.Mode().Perm()
	}
	return defaultMode
}

func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	absPath := m.getAbsPath(path)
	zerolog.Ctx(ctx).Debug().Str("path", absPath).Msg("reading file")

	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// WriteFile truncates and rewrites the file in place, keeping its permissions.
// A failure part way through can leave the file truncated.
func (m *Manager) WriteFile(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)
	zerolog.Ctx(ctx).Debug().Str("path", absPath).Int("bytes", len(content)).Msg("writing file")

	if err := os.MkdirAll(filepath.Dir(absPath), 0o755); err != nil {
		return errors.Errorf("creating parent directories: %w", err)
	}

	if err := os.WriteFile(absPath, content, modeOf(absPath)); err != nil {
		return errors.Errorf("writing file: %w", err)
	}
	return nil
}

// WriteFileAtomic writes to a temp file in the same directory and renames it over path
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath := m.getAbsPath(path)
	zerolog.Ctx(ctx).Debug().Str("path", absPath).Int("bytes", len(content)).Msg("writing file atomically")

	mode := modeOf(absPath)

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".*.tmp")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tempPath)
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tempPath, mode); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("setting temp file mode: %w", err)
	}

	if err := os.Rename(tempPath, absPath); err != nil {
		os.Remove(tempPath)
		return errors.Errorf("renaming temp file: %w", err)
	}

	return nil
}

func (m *Manager) FileExists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(m.getAbsPath(path))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, errors.Errorf("checking file existence: %w", err)
}

func (m *Manager) Stat(ctx context.Context, path string) (FileInfo, error) {
	absPath := m.getAbsPath(path)

	fi, err := os.Stat(absPath)
	if err != nil {
		return FileInfo{}, errors.Errorf("stat file: %w", err)
	}

	content, err := os.ReadFile(absPath)
	if err != nil {
		return FileInfo{}, errors.Errorf("reading file: %w", err)
	}

	return FileInfo{
		Path:     path,
		Size:     fi.Size(),
		Mode:     fi.Mode().Perm(),
		Checksum: calculateChecksum(content),
	}, nil
}

func (m *Manager) BackupFile(ctx context.Context, path string) (string, error) {
	absPath := m.getAbsPath(path)
	backupPath := absPath + backupSuffix

	if err := copyFile(absPath, backupPath); err != nil {
		return "", errors.Errorf("creating backup: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", absPath).Str("backup", backupPath).Msg("backed up file")
	return backupPath, nil
}

func (m *Manager) RestoreFile(ctx context.Context, path string) error {
	absPath := m.getAbsPath(path)
	backupPath := absPath + backupSuffix

	ok, err := m.FileExists(ctx, backupPath)
	if err != nil {
		return errors.Errorf("checking backup existence: %w", err)
	}
	if !ok {
		return errors.Errorf("checking backup existence: %s not found", backupPath)
	}

	if err := copyFile(backupPath, absPath); err != nil {
		return errors.Errorf("restoring from backup: %w", err)
	}

	if err := os.Remove(backupPath); err != nil {
		return errors.Errorf("removing backup: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("path", absPath).Msg("restored file from backup")
	return nil
}

// Helper functions

func copyFile(src, dst string) error {
	source, err := os.Open(src)
	if err != nil {
		return errors.Errorf("opening source file: %w", err)
	}
	defer source.Close()

	fi, err := source.Stat()
	if err != nil {
		return errors.Errorf("stat source file: %w", err)
	}

	destination, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fi.Mode().Perm())
	if err != nil {
		return errors.Errorf("creating destination file: %w", err)
	}
	defer destination.Close()

	if _, err := io.Copy(destination, source); err != nil {
		return errors.Errorf("copying file: %w", err)
	}

	return destination.Close()
}
