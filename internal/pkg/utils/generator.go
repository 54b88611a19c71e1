package utils

import (
	"fmt"
	"hospital-records-service/internal/pkg/constvars"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]`)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateFileName prefixes the client file name with the arrival time in
// milliseconds. The client name is reduced to its base name and stripped of
// anything outside [A-Za-z0-9._-], so the result never contains a path
// separator.
func GenerateFileName(originalName string, now time.Time) string {
	baseName := filepath.Base(strings.ReplaceAll(originalName, "\\", "/"))
	baseName = unsafeFileNameChars.ReplaceAllString(baseName, "_")
	baseName = strings.TrimLeft(baseName, ".")
	if baseName == "" {
		baseName = "image"
	}
	return fmt.Sprintf("%d-%s", now.UnixMilli(), baseName)
}
