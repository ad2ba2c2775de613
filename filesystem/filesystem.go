// Package filesystem routes every disk access of the application through one afero backend.
//
// Downloads, logs, history and config all go through API(), so tests can run the
// whole pipeline against an in-memory tree.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetFs installs fs as the backend, e.g. a read-only filter in tests.
func SetFs(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs restores the operating system backend.
func SetOsFs() {
	SetFs(afero.NewOsFs())
}

// SetMemMapFs switches to a fresh in-memory backend.
func SetMemMapFs() {
	SetFs(afero.NewMemMapFs())
}
