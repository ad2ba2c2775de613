package filesystem

import (
	"io"
	"os"
)

// GacheFs lets gache caches (history, version check) persist through the active backend,
// so tests that swap in a memory filesystem never touch the disk.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return backend.OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return backend.MkdirAll(path, perm)
}
