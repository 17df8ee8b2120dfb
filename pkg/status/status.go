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
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 💾 FileManager handles all file system operations
type FileManager interface {
	// ListFiles returns the files under the base directory whose base name matches glob
	ListFiles(ctx context.Context, glob string) ([]string, error)

	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFileAtomic replaces the content of an existing file, keeping its permissions
	WriteFileAtomic(ctx context.Context, path string, content []byte) error
}

// 🔧 Manager implements FileManager rooted at a base directory
type Manager struct {
	baseDir string // Base directory for all operations
}

var _ FileManager = (*Manager)(nil)

// 🏭 New creates a new status manager
func New(baseDir string) *Manager {
	return &Manager{
		baseDir: filepath.Clean(baseDir),
	}
}

// BaseDir returns the directory all paths are relative to
func (m *Manager) BaseDir() string {
	return m.baseDir
}

// 🔒 getAbsPath returns the absolute path for a given relative path
func (m *Manager) getAbsPath(path string) string {
	return filepath.Join(m.baseDir, path)
}

// 🔍 ListFiles walks the base directory and returns matching paths relative to it.
// Directories reached through symlinks are not descended into.
func (m *Manager) ListFiles(ctx context.Context, glob string) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	info, err := os.Stat(m.baseDir)
	if os.IsNotExist(err) {
		logger.Debug().Str("root", m.baseDir).Msg("root does not exist, nothing to walk")
		return nil, nil
	}
	if err != nil {
		return nil, errors.Errorf("checking root %s: %w", m.baseDir, err)
	}
	if !info.IsDir() {
		return nil, nil
	}

	// WalkDir does not descend into a symlinked root
	walkRoot, err := filepath.EvalSymlinks(m.baseDir)
	if err != nil {
		return nil, errors.Errorf("resolving root %s: %w", m.baseDir, err)
	}

	var files []string
	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.Errorf("walking %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}

		matched, err := doublestar.Match(glob, d.Name())
		if err != nil {
			return errors.Errorf("matching %q against %s: %w", glob, d.Name(), err)
		}
		if !matched {
			return nil
		}

		ok, err := m.isFile(path, d)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return errors.Errorf("relativizing %s: %w", path, err)
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug().Str("glob", glob).Int("files", len(files)).Msg("listed files")
	return files, nil
}

// isFile reports whether a walked entry is a regular file, following symlinks
func (m *Manager) isFile(path string, d fs.DirEntry) (bool, error) {
	if d.Type().IsRegular() {
		return true, nil
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Errorf("resolving symlink %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}

// 📖 ReadFile reads the full content of a file
func (m *Manager) ReadFile(ctx context.Context, path string) ([]byte, error) {
	content, err := os.ReadFile(m.getAbsPath(path))
	if err != nil {
		return nil, errors.Errorf("reading file: %w", err)
	}
	return content, nil
}

// ✍️ WriteFileAtomic writes content to a temp file next to the target and renames it into place
func (m *Manager) WriteFileAtomic(ctx context.Context, path string, content []byte) error {
	absPath, err := filepath.EvalSymlinks(m.getAbsPath(path))
	if err != nil {
		return errors.Errorf("resolving file: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return errors.Errorf("checking file: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(absPath), "."+filepath.Base(absPath)+".renamerc-*")
	if err != nil {
		return errors.Errorf("creating temp file: %w", err)
	}
	tempPath := tmp.Name()

	cleanup := func() {
		_ = os.Remove(tempPath)
	}

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		cleanup()
		return errors.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Chmod(info.Mode().Perm()); err != nil {
		tmp.Close()
		cleanup()
		return errors.Errorf("setting temp file mode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return errors.Errorf("closing temp file: %w", err)
	}

	// Rename temp file to target (atomic operation)
	if err := os.Rename(tempPath, absPath); err != nil {
		cleanup()
		return errors.Errorf("renaming temp file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().Str("file", path).Int("bytes", len(content)).Msg("rewrote file")
	return nil
}
