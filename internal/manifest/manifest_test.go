package manifest

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNewIcon(t *testing.T) {
	icon := NewIcon("icons/icon-192x192.png", 192)
	if icon.Src != "icons/icon-192x192.png" {
		t.Errorf("Src = %q", icon.Src)
	}
	if icon.Sizes != "192x192" {
		t.Errorf("Sizes = %q", icon.Sizes)
	}
	if icon.Type != "image/png" {
		t.Errorf("Type = %q", icon.Type)
	}
	if icon.Purpose != "any maskable" {
		t.Errorf("Purpose = %q", icon.Purpose)
	}
}

func TestRender(t *testing.T) {
	out, err := Render([]Icon{NewIcon("icons/icon-72x72.png", 72)})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	var fragment struct {
		Icons []Icon `json:"icons"`
	}
	if err := json.Unmarshal(out, &fragment); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(fragment.Icons) != 1 {
		t.Fatalf("got %d entries, want 1", len(fragment.Icons))
	}
	if !strings.Contains(string(out), "\n") {
		t.Error("output is not pretty-printed")
	}
}
