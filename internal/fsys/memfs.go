package fsys

import (
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"time"
)

// MemFS is an in-memory FS for tests. Paths use forward slashes. It
// records every successful Rename and MkdirAll, and individual
// operations can be made to fail via the error maps.
type MemFS struct {
	files map[string]int64 // path -> size
	dirs  map[string]bool

	// Renames holds [old, new] pairs in call order.
	Renames [][2]string
	// Mkdirs holds created directory paths in call order.
	Mkdirs []string

	// RenameErr and MkdirErr inject failures keyed by source path and
	// directory path respectively.
	RenameErr map[string]error
	MkdirErr  map[string]error
}

// NewMemFS returns an empty in-memory file system.
func NewMemFS() *MemFS {
	return &MemFS{
		files:     make(map[string]int64),
		dirs:      make(map[string]bool),
		RenameErr: make(map[string]error),
		MkdirErr:  make(map[string]error),
	}
}

func clean(p string) string {
	return path.Clean(strings.ReplaceAll(p, "\\", "/"))
}

// AddFile creates a file with the given size, creating parents as needed.
func (m *MemFS) AddFile(p string, size int64) {
	p = clean(p)
	m.files[p] = size
	m.addParents(p)
}

// AddDir creates a directory, creating parents as needed.
func (m *MemFS) AddDir(p string) {
	p = clean(p)
	m.dirs[p] = true
	m.addParents(p)
}

func (m *MemFS) addParents(p string) {
	for dir := path.Dir(p); dir != "." && dir != "/"; dir = path.Dir(dir) {
		m.dirs[dir] = true
	}
}

// Exists reports whether a file or directory exists at p.
func (m *MemFS) Exists(p string) bool {
	p = clean(p)
	_, isFile := m.files[p]
	return isFile || m.dirs[p]
}

func (m *MemFS) ReadDir(name string) ([]os.DirEntry, error) {
	name = clean(name)
	if !m.dirs[name] {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	var entries []os.DirEntry
	for p, size := range m.files {
		if path.Dir(p) == name {
			entries = append(entries, memEntry{info: memInfo{name: path.Base(p), size: size}})
		}
	}
	for p := range m.dirs {
		if path.Dir(p) == name {
			entries = append(entries, memEntry{info: memInfo{name: path.Base(p), dir: true}})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
	return entries, nil
}

func (m *MemFS) Stat(name string) (os.FileInfo, error) {
	name = clean(name)
	if size, ok := m.files[name]; ok {
		return memInfo{name: path.Base(name), size: size}, nil
	}
	if m.dirs[name] {
		return memInfo{name: path.Base(name), dir: true}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

func (m *MemFS) MkdirAll(p string, perm os.FileMode) error {
	p = clean(p)
	if err := m.MkdirErr[p]; err != nil {
		return err
	}
	m.AddDir(p)
	m.Mkdirs = append(m.Mkdirs, p)
	return nil
}

func (m *MemFS) Rename(oldpath, newpath string) error {
	oldpath, newpath = clean(oldpath), clean(newpath)
	if err := m.RenameErr[oldpath]; err != nil {
		return err
	}
	size, ok := m.files[oldpath]
	if !ok {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	if !m.dirs[path.Dir(newpath)] {
		return &fs.PathError{Op: "rename", Path: newpath, Err: fs.ErrNotExist}
	}
	delete(m.files, oldpath)
	m.files[newpath] = size
	m.Renames = append(m.Renames, [2]string{oldpath, newpath})
	return nil
}

type memInfo struct {
	name string
	size int64
	dir  bool
}

func (i memInfo) Name() string { return i.name }
func (i memInfo) Size() int64  { return i.size }
func (i memInfo) Mode() os.FileMode {
	if i.dir {
		return os.ModeDir | 0755
	}
	return 0644
}
func (i memInfo) ModTime() time.Time { return time.Time{} }
func (i memInfo) IsDir() bool        { return i.dir }
func (i memInfo) Sys() interface{}   { return nil }

type memEntry struct {
	info memInfo
}

func (e memEntry) Name() string               { return e.info.name }
func (e memEntry) IsDir() bool                { return e.info.dir }
func (e memEntry) Type() os.FileMode          { return e.info.Mode().Type() }
func (e memEntry) Info() (os.FileInfo, error) { return e.info, nil }
