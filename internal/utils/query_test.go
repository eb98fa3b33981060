package utils

import (
	"net/url"
	"testing"
)

func TestQueryInt(t *testing.T) {
	t.Parallel()

	q := url.Values{"limit": {"14"}, "junk": {"fourteen"}}
	if got := QueryInt(q, "limit", 7); got != 14 {
		t.Errorf("limit = %d, want 14", got)
	}
	if got := QueryInt(q, "missing", 7); got != 7 {
		t.Errorf("missing key = %d, want default", got)
	}
	if got := QueryInt(q, "junk", 7); got != 7 {
		t.Errorf("unparsable value = %d, want default", got)
	}
}

func TestFormPtr(t *testing.T) {
	t.Parallel()

	if FormPtr("  ") != nil {
		t.Error("blank value must become nil")
	}
	if p := FormPtr(" SAP ECC "); p == nil || *p != "SAP ECC" {
		t.Errorf("got %v", p)
	}
}
