package utils

import (
	"net/url"
	"os"
	"strings"
)

// FileExist reports whether filePath exists. Stat errors other than
// 'not exist' are treated as the file being present.
func FileExist(filePath string) bool {
	_, err := os.Stat(filePath)
	return !os.IsNotExist(err)
}

// CreateDirIfNotExist creates 'dir' & any missing parents, readable only by the owner
func CreateDirIfNotExist(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0700)
		if err != nil {
			return err
		}
	}

	return nil
}

// EncodeURIComponent escapes 's' the way JavaScript's encodeURIComponent does
func EncodeURIComponent(s string) string {
	return uriComponentReplacer.Replace(url.QueryEscape(s))
}

var uriComponentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)
