package storage

import (
	"path/filepath"
	"strings"
)

// isSafeFileName accepts only names produced by utils.GenerateFileName: a
// single path element that cannot walk out of the upload root.
func isSafeFileName(fileName string) bool {
	if fileName == "" || fileName == "." || fileName == ".." {
		return false
	}
	if strings.ContainsAny(fileName, `/\`) || strings.Contains(fileName, "..") {
		return false
	}
	return filepath.Base(fileName) == fileName
}
