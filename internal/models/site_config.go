package models

import (
	"bytes"
	"encoding/json"
)

// SiteConfig is the loosely typed config.json bag. Only resumeUrl is
// interpreted; every key is retained in Fields.
type SiteConfig struct {
	ResumeURL Text
	Fields    map[string]json.RawMessage
}

// UnmarshalJSON decodes an object into the bag. Non-object documents
// yield an empty bag.
func (c *SiteConfig) UnmarshalJSON(data []byte) error {
	*c = SiteConfig{Fields: map[string]json.RawMessage{}}

	raw := bytes.TrimSpace(data)
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}
	if err := json.Unmarshal(raw, &c.Fields); err != nil {
		return err
	}
	if v, ok := c.Fields["resumeUrl"]; ok {
		if err := c.ResumeURL.UnmarshalJSON(v); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON writes the original keys back out
func (c SiteConfig) MarshalJSON() ([]byte, error) {
	if c.Fields == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(c.Fields)
}

// DecodeSiteConfig decodes config.json
func DecodeSiteConfig(data []byte) (SiteConfig, error) {
	raw := bytes.TrimSpace(data)
	if !json.Valid(raw) {
		return SiteConfig{}, ErrMalformed
	}
	if isAbsent(raw) {
		return SiteConfig{}, ErrAbsent
	}

	var cfg SiteConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return SiteConfig{}, err
	}
	return cfg, nil
}
