// Package filesystem holds the afero backend every other package reads and writes through.
//
// Production code runs on the OS filesystem; tests switch to an in-memory one
// so bundles, logs and config never touch the disk.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the native filesystem.
func SetOsFs() {
	Use(afero.NewOsFs())
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	Use(afero.NewMemMapFs())
}

// Use installs an arbitrary afero filesystem, for example a read-only or base-path overlay.
func Use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}
