// SPDX-License-Identifier: MIT

package meshio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/lvmesh/mesh"
)

const extOBJ = ".obj"

// Load reads the mesh stored at path, choosing the format by extension
// (case-insensitive). Open failures keep their *fs.PathError.
func Load(path string, opts ...Option) (*mesh.Mesh, error) {
	if err := checkExt("Load", path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer f.Close()

	m, err := ReadOBJ(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("Load %s: %w", path, err)
	}

	return m, nil
}

// Save writes m to path, choosing the format by extension. An existing file
// is truncated.
func Save(path string, m *mesh.Mesh, opts ...Option) (err error) {
	if err := checkExt("Save", path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("Save: %w", cerr))
		}
	}()

	if err := WriteOBJ(f, m, opts...); err != nil {
		return fmt.Errorf("Save %s: %w", path, err)
	}

	return nil
}

func checkExt(method, path string) error {
	ext := filepath.Ext(path)
	switch {
	case ext == "":
		return fmt.Errorf("%s %q: %w", method, path, ErrNoExtension)
	case strings.EqualFold(ext, extOBJ):
		return nil
	default:
		return fmt.Errorf("%s %q: extension %q: %w", method, path, strings.TrimPrefix(ext, "."), ErrUnknownExtension)
	}
}
