package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// flexID accepts both numeric and string identifiers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*f = flexID(n.String())
	return nil
}

func (f flexID) Int64() int64 {
	n, _ := strconv.ParseInt(string(f), 10, 64)
	return n
}

// flexTime accepts plain dates as well as RFC 3339 timestamps.
type flexTime time.Time

func (f *flexTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil || s == "" {
		*f = flexTime{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, dateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			*f = flexTime(t)
			return nil
		}
	}
	return fmt.Errorf("unsupported time %q", s)
}

// flatten turns a Strapi v4 resource {id, attributes:{...}} into the
// flat v5 shape {id, ...}. Flat resources pass through unchanged.
func flatten(raw json.RawMessage) (json.RawMessage, error) {
	var probe struct {
		ID         json.RawMessage `json:"id"`
		DocumentID json.RawMessage `json:"documentId"`
		Attributes json.RawMessage `json:"attributes"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	if len(probe.Attributes) == 0 {
		return raw, nil
	}
	attrs := map[string]json.RawMessage{}
	if err := json.Unmarshal(probe.Attributes, &attrs); err != nil {
		return nil, err
	}
	if len(probe.ID) > 0 {
		attrs["id"] = probe.ID
	}
	if len(probe.DocumentID) > 0 {
		attrs["documentId"] = probe.DocumentID
	}
	return json.Marshal(attrs)
}

// decodeOne decodes a single resource, flattening it first.
func decodeOne(raw json.RawMessage, out any) error {
	flat, err := flatten(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(flat, out)
}

func decodeList[T any](raw json.RawMessage) ([]T, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		var v T
		if err := decodeOne(item, &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// relationID reads a relation that may be a bare id, a flat object or
// a {data:{id}} wrapper.
func relationID(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var id flexID
	if err := json.Unmarshal(raw, &id); err == nil {
		return string(id)
	}
	var wrapped struct {
		Data json.RawMessage `json:"data"`
		ID   flexID          `json:"id"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return ""
	}
	if len(wrapped.Data) > 0 {
		return relationID(wrapped.Data)
	}
	return string(wrapped.ID)
}

// mediaURLs collects the url of every file in a media field, in any of
// the shapes Strapi produces.
func mediaURLs(raw json.RawMessage) []string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	switch raw[0] {
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil
		}
		var out []string
		for _, item := range items {
			out = append(out, mediaURLs(item)...)
		}
		return out
	case '{':
		var m struct {
			URL        string          `json:"url"`
			Data       json.RawMessage `json:"data"`
			Attributes json.RawMessage `json:"attributes"`
		}
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil
		}
		switch {
		case m.URL != "":
			return []string{m.URL}
		case len(m.Data) > 0:
			return mediaURLs(m.Data)
		case len(m.Attributes) > 0:
			return mediaURLs(m.Attributes)
		}
	case '"':
		var s string
		if json.Unmarshal(raw, &s) == nil && s != "" {
			return []string{s}
		}
	}
	return nil
}

func firstMedia(raw json.RawMessage) string {
	if urls := mediaURLs(raw); len(urls) > 0 {
		return urls[0]
	}
	return ""
}

var htmlTag = regexp.MustCompile(`<[^>]+>`)

func stripTags(s string) string {
	return strings.TrimSpace(htmlTag.ReplaceAllString(s, ""))
}
