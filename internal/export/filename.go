package export

import (
	"errors"
	"strings"
)

// DefaultFilename is used when the caller does not name the export at all.
const DefaultFilename = "exported-document"

var (
	// ErrFilenameRequired is returned for an empty export filename.
	ErrFilenameRequired = errors.New("filename is required")
	// ErrInvalidFilename is returned for names that would leave the download directory.
	ErrInvalidFilename = errors.New("invalid filename")
)

// Filename validates a base name and appends ext. A name that already ends
// with the extension is not extended twice.
func Filename(name, ext string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrFilenameRequired
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", ErrInvalidFilename
	}

	suffix := "." + ext
	if strings.HasSuffix(strings.ToLower(name), suffix) {
		name = name[:len(name)-len(suffix)]
		if name == "" {
			return "", ErrFilenameRequired
		}
	}
	return name + suffix, nil
}
