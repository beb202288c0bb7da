// Package manifest emits the "icons" fragment of a web app manifest
// for a generated icon set.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/pretty"
)

// Icon is one entry of a web app manifest "icons" array.
type Icon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose"`
}

// NewIcon builds the entry for one square PNG icon. src is the path
// the manifest should reference, relative to the app root.
func NewIcon(src string, size int) Icon {
	return Icon{
		Src:     src,
		Sizes:   fmt.Sprintf("%dx%d", size, size),
		Type:    "image/png",
		Purpose: "any maskable",
	}
}

// Render marshals the entries as a pretty-printed manifest fragment,
// ready to paste into (or merge with) a manifest.webmanifest.
func Render(icons []Icon) ([]byte, error) {
	raw, err := json.Marshal(struct {
		Icons []Icon `json:"icons"`
	}{Icons: icons})
	if err != nil {
		return nil, err
	}
	return pretty.Pretty(raw), nil
}

// Write renders the fragment and writes it to path.
func Write(path string, icons []Icon) error {
	b, err := Render(icons)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
