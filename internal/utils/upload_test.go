package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAllowedUpload(t *testing.T) {
	t.Parallel()

	allowed := []string{"notes.txt", "scan.PDF", "photo.jpeg", "spec.docx"}
	for _, name := range allowed {
		if !AllowedUpload(name) {
			t.Errorf("%s should be allowed", name)
		}
	}
	denied := []string{"run.exe", "script.sh", "archive.zip", "noext", "trailing."}
	for _, name := range denied {
		if AllowedUpload(name) {
			t.Errorf("%s should be denied", name)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"report.pdf":            "report.pdf",
		"../../etc/passwd":      "passwd",
		"my file (final).docx":  "my_file__final_.docx",
		"..":                    "file",
		"résumé.pdf":            "r_sum_.pdf",
		"/abs/path/invoice.png": "invoice.png",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSaveUpload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path, err := SaveUpload(dir, "../sneaky/../report.pdf", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("SaveUpload: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("stored outside upload dir: %s", path)
	}
	if !strings.HasSuffix(path, "_report.pdf") {
		t.Errorf("unexpected stored name: %s", path)
	}
	b, err := os.ReadFile(path)
	if err != nil || string(b) != "content" {
		t.Errorf("stored content = %q, err = %v", b, err)
	}
}
