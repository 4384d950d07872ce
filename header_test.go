package emberhttp

import "testing"

func TestExtraHeadersAddAndGet(t *testing.T) {
	var h ExtraHeaders
	if err := h.Add("X-Request-Id", "abc123"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	v, ok := h.Get("x-request-id")
	if !ok || v != "abc123" {
		t.Fatalf("Get = %q, %v", v, ok)
	}
}

func TestExtraHeadersCapacity(t *testing.T) {
	var h ExtraHeaders
	for i := 0; i < maxExtraHeaders; i++ {
		if err := h.Add("X-N", "v"); err != nil {
			t.Fatalf("Add %d: %v", i, err)
		}
	}
	if err := h.Add("X-Overflow", "v"); err == nil {
		t.Fatalf("expected the 9th header to be rejected")
	}
}
