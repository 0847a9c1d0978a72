// This file is part of Gramarye.
//
// Gramarye is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gramarye is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gramarye.  If not, see <https://www.gnu.org/licenses/>.

package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// keys that have been set from the command line stack. these values are
	// not overwritten by Load() and are not written by Save()
	commandLine map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:        path,
		entries:     make(map[string]pref),
		commandLine: make(map[string]bool),
	}
	return dsk, nil
}

func (dsk *Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// Add preference value to list of values to store/load. If the command line
// stack has a value for the key then it is applied immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: %s: key already exists", key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
		dsk.commandLine[key] = true
	}

	return nil
}

// Load preference values from disk. A missing file is not an error, the
// values are left as they are. Keys in the file that have not been added to
// the Disk instance are ignored, as are keys that were set from the command
// line.
func (dsk *Disk) Load() error {
	stored, err := dsk.read()
	if err != nil {
		return err
	}

	for k, v := range stored {
		if dsk.commandLine[k] {
			continue
		}
		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		}
	}

	return nil
}

// Save current preference values to disk. Keys in the existing file that
// have not been added to the Disk instance are preserved.
func (dsk *Disk) Save() error {
	stored, err := dsk.read()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if dsk.commandLine[k] {
			continue
		}
		stored[k] = p.Get()
	}

	data, err := toml.Marshal(nest(stored))
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	if err := os.WriteFile(dsk.path, data, 0o600); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// read the preferences file and return a flattened map of values.
func (dsk *Disk) read() (map[string]any, error) {
	flat := make(map[string]any)

	data, err := os.ReadFile(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return flat, nil
		}
		return nil, fmt.Errorf("prefs: %w", err)
	}

	var tree map[string]any
	if err := toml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("prefs: %s: %w", dsk.path, err)
	}

	flatten("", tree, flat)
	return flat, nil
}

func flatten(prefix string, tree map[string]any, flat map[string]any) {
	for k, v := range tree {
		if prefix != "" {
			k = prefix + "." + k
		}
		if sub, ok := v.(map[string]any); ok {
			flatten(k, sub, flat)
			continue
		}
		flat[k] = v
	}
}

func nest(flat map[string]any) map[string]any {
	tree := make(map[string]any)
	for k, v := range flat {
		parts := strings.Split(k, ".")
		t := tree
		for _, p := range parts[:len(parts)-1] {
			sub, ok := t[p].(map[string]any)
			if !ok {
				sub = make(map[string]any)
				t[p] = sub
			}
			t = sub
		}
		t[parts[len(parts)-1]] = v
	}
	return tree
}
