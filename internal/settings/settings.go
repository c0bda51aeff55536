// Package settings persists the small per-user JSON document that carries
// the analytics opt-out and the installation identifier across runs.
package settings

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Recognized document keys.
const (
	KeySkipAnalytics = "skipAnalytics"
	KeyInstall       = "install"
)

// ErrMalformed reports a settings document that is not a JSON object.
var ErrMalformed = errors.New("settings document is not a JSON object")

// Document is an immutable JSON object. Only the recognized keys are
// interpreted; every other key is carried through untouched on rewrite.
type Document struct {
	raw []byte
}

// Empty returns a document with no keys.
func Empty() Document {
	return Document{}
}

// Parse validates data as a JSON object.
func Parse(data []byte) (Document, error) {
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return Empty(), ErrMalformed
	}
	raw := make([]byte, len(data))
	copy(raw, data)
	return Document{raw: raw}, nil
}

// MustParse is Parse for literals known to be valid.
func MustParse(s string) Document {
	doc, err := Parse([]byte(s))
	if err != nil {
		panic(fmt.Sprintf("settings: %v: %q", err, s))
	}
	return doc
}

// SkipAnalytics returns the stored opt-out flag. ok is false when the key
// is absent or not a boolean.
func (d Document) SkipAnalytics() (value, ok bool) {
	r := d.get(KeySkipAnalytics)
	if r.Type != gjson.True && r.Type != gjson.False {
		return false, false
	}
	return r.Bool(), true
}

// Install returns the stored installation identifier. Empty strings and
// non-string values count as absent.
func (d Document) Install() (string, bool) {
	r := d.get(KeyInstall)
	if r.Type != gjson.String || r.Str == "" {
		return "", false
	}
	return r.Str, true
}

// WithInstall returns a copy of d with the install key set to id.
func (d Document) WithInstall(id string) (Document, error) {
	out, err := sjson.SetBytes(d.Bytes(), KeyInstall, id)
	if err != nil {
		return d, fmt.Errorf("set %s: %w", KeyInstall, err)
	}
	return Document{raw: out}, nil
}

// Bytes returns the compact JSON encoding; an empty document encodes as {}.
func (d Document) Bytes() []byte {
	if len(d.raw) == 0 {
		return []byte("{}")
	}
	out := make([]byte, len(d.raw))
	copy(out, d.raw)
	return out
}

// String implements fmt.Stringer.
func (d Document) String() string {
	return string(d.Bytes())
}

func (d Document) get(key string) gjson.Result {
	if len(d.raw) == 0 {
		return gjson.Result{}
	}
	return gjson.GetBytes(d.raw, key)
}
