package models

import (
	"io"
	"time"
)

// StoredFile is an uploaded object opened for serving. Callers must close
// Content.
type StoredFile struct {
	Content     io.ReadSeekCloser
	Name        string
	ContentType string
	Size        int64
	ModTime     time.Time
}
