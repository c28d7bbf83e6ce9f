// Package fileutil provides shared file permission constants.
package fileutil

import "os"

// ReadableByAll is the file permission mode for generated schema documents
// and index files, which are consumed by UI build steps and other users.
const ReadableByAll os.FileMode = 0o644

// OwnerWritableDir is the directory permission mode for generated output
// directories.
const OwnerWritableDir os.FileMode = 0o755
