package scene

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"windingcircle/curve"
	"windingcircle/export"
)

// Dir is a Store backed by a directory. Every object is kept as <name>.json,
// which is what Get reads back; when Preview is set, a <name>.<ext> file in
// that format is written next to it.
type Dir struct {
	Path    string
	Preview export.Encoder

	mu sync.Mutex
}

// OpenDir creates path if needed and returns a store over it
func OpenDir(path string, preview export.Encoder) (*Dir, error) {
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, fmt.Errorf("open store %s: %w", path, err)
	}
	return &Dir{Path: path, Preview: preview}, nil
}

func (d *Dir) record(name string) string {
	return filepath.Join(d.Path, name+".json")
}

func (d *Dir) preview(name string) string {
	if d.Preview == nil || d.Preview.Ext() == "json" {
		return ""
	}
	return filepath.Join(d.Path, name+"."+d.Preview.Ext())
}

func (d *Dir) exists(name string) bool {
	_, err := os.Stat(d.record(name))
	return err == nil
}

func (d *Dir) Upsert(name string, seq curve.Sequence) (bool, error) {
	if err := CheckName(name); err != nil {
		return false, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	replaced := d.exists(name)
	if err := d.write(name, seq); err != nil {
		return false, err
	}
	return replaced, nil
}

func (d *Dir) Create(name string, seq curve.Sequence) (string, error) {
	if err := CheckName(name); err != nil {
		return "", err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	name = FreeName(name, d.exists)
	return name, d.write(name, seq)
}

func (d *Dir) Get(name string) (curve.Sequence, error) {
	if err := CheckName(name); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	f, err := os.Open(d.record(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	_, seq, err := export.ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return seq, nil
}

func (d *Dir) Delete(name string) (bool, error) {
	if err := CheckName(name); err != nil {
		return false, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.exists(name) {
		return false, nil
	}
	return true, d.remove(name)
}

func (d *Dir) Names() []string {
	d.mu.Lock()
	defer d.mu.Unlock()

	entries, err := os.ReadDir(d.Path)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		name, ok := strings.CutSuffix(e.Name(), ".json")
		if !ok || e.IsDir() || CheckName(name) != nil {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (d *Dir) remove(name string) error {
	for _, path := range []string{d.record(name), d.preview(name)} {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("delete %s: %w", name, err)
		}
	}
	return nil
}

type objectFile struct {
	path string
	enc  export.Encoder
}

// write encodes every file of the object before renaming any of them into
// place, so a failed encode leaves the previous object untouched
func (d *Dir) write(name string, seq curve.Sequence) error {
	files := []objectFile{{d.record(name), export.JSON{Indent: true}}}
	if path := d.preview(name); path != "" {
		files = append(files, objectFile{path, d.Preview})
	}

	staged := make([]string, 0, len(files))
	defer func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}()
	for _, f := range files {
		tmp, err := stage(f.path, f.enc, name, seq)
		if err != nil {
			return err
		}
		staged = append(staged, tmp)
	}
	for i, f := range files {
		if err := os.Rename(staged[i], f.path); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// stage encodes into a hidden temp file next to path and returns its name
func stage(path string, enc export.Encoder, name string, seq curve.Sequence) (string, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	if err := enc.Encode(tmp, name, seq); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("encode %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return tmp.Name(), nil
}
