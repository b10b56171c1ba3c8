// Package file implements the RecordSource port over a local file.
package file
