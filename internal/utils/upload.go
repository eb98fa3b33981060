package utils

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Extensions accepted for ticket attachments.
var allowedUploadExt = map[string]struct{}{
	".txt": {}, ".pdf": {}, ".png": {}, ".jpg": {}, ".jpeg": {},
	".gif": {}, ".doc": {}, ".docx": {},
}

func AllowedUpload(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	_, ok := allowedUploadExt[ext]
	return ok
}

// SanitizeFilename strips any path components and reduces the name to a
// safe character set so a crafted filename cannot escape the upload dir.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "._")
	if out == "" {
		out = "file"
	}
	return out
}

// SaveUpload stores the stream under dir with a sanitized, uuid-prefixed
// name and returns the stored relative path.
func SaveUpload(dir, filename string, src io.Reader) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	stored := uuid.NewString()[:8] + "_" + SanitizeFilename(filename)
	path := filepath.Join(dir, stored)

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}
