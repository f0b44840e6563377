package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// documentKeys are the top-level keys every persisted record must carry.
var documentKeys = []string{
	"lang",
	"showAddress",
	"showTabs",
	"onTop",
	"rememberSession",
	"borderPx",
	"ribbon",
	"hud",
	"snap",
	"bookmarks",
}

var ribbonKeys = []string{"enabled", "width", "height"}

// UnmarshalJSON decodes a complete settings document. Missing or null keys
// are errors; unknown keys are ignored.
func (s *Settings) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, "settings", documentKeys); err != nil {
		return err
	}
	type plain Settings
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*s = Settings(p)
	return nil
}

// UnmarshalJSON decodes a complete ribbon object.
func (r *Ribbon) UnmarshalJSON(data []byte) error {
	if err := requireKeys(data, "ribbon", ribbonKeys); err != nil {
		return err
	}
	type plain Ribbon
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Ribbon(p)
	return nil
}

func requireKeys(data []byte, what string, keys []string) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		return fmt.Errorf("%s: expected an object, got null", what)
	}
	for _, key := range keys {
		v, ok := raw[key]
		if !ok {
			return fmt.Errorf("%s: missing field %q", what, key)
		}
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return fmt.Errorf("%s: field %q is null", what, key)
		}
	}
	return nil
}

// Merge overlays the keys present in the JSON object data onto a copy of
// base. Ribbon keys merge one level deep. Any decode failure, including a
// value of the wrong type, is reported as ErrInvalid.
func Merge(base *Settings, data []byte) (*Settings, error) {
	var patch map[string]json.RawMessage
	if err := json.Unmarshal(data, &patch); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if patch == nil {
		return nil, fmt.Errorf("%w: expected an object, got null", ErrInvalid)
	}

	encoded, err := json.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(encoded, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	for key, value := range patch {
		if key == "ribbon" {
			merged, err := mergeObject(doc[key], value)
			if err != nil {
				return nil, fmt.Errorf("%w: ribbon: %v", ErrInvalid, err)
			}
			value = merged
		}
		doc[key] = value
	}

	combined, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	out := &Settings{}
	if err := json.Unmarshal(combined, out); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return out, nil
}

func mergeObject(base, patch json.RawMessage) (json.RawMessage, error) {
	var over map[string]json.RawMessage
	if err := json.Unmarshal(patch, &over); err != nil || over == nil {
		// not an object: let the final decode report it
		return patch, nil
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(base, &doc); err != nil {
		return nil, err
	}
	for k, v := range over {
		doc[k] = v
	}
	return json.Marshal(doc)
}
