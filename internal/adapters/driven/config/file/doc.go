// Package file provides the file-based implementation of the
// ConfigStore driven port: TOML-based configuration storage.
package file
