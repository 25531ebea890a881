package fs

import (
	"errors"
	"testing"

	"github.com/aretw0/jadof/pkg/core"
)

func TestExtractHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantBody string
		wantMeta core.Metadata
	}{
		{
			name:     "No header",
			input:    "Hello World!\n",
			wantBody: "Hello World!\n",
			wantMeta: core.Metadata{},
		},
		{
			name:     "Simple header",
			input:    "---\nfoo: bar\n---\nHello World!",
			wantBody: "Hello World!",
			wantMeta: core.Metadata{"foo": "bar"},
		},
		{
			name:     "Interior blank lines survive",
			input:    "---\ntitle: T\n---\n\nfirst\n\n\nsecond\n",
			wantBody: "\nfirst\n\n\nsecond\n",
			wantMeta: core.Metadata{"title": "T"},
		},
		{
			name:     "Empty header",
			input:    "---\n---\nbody",
			wantBody: "body",
			wantMeta: core.Metadata{},
		},
		{
			name:     "Only the first closing line ends the header",
			input:    "---\na: 1\n---\nbody\n---\nmore\n",
			wantBody: "body\n---\nmore\n",
			wantMeta: core.Metadata{"a": 1},
		},
		{
			name:     "Closing line without newline is not a header",
			input:    "---\na: 1\n---",
			wantBody: "---\na: 1\n---",
			wantMeta: core.Metadata{},
		},
		{
			name:     "Header must start the file",
			input:    "intro\n---\na: 1\n---\nbody",
			wantBody: "intro\n---\na: 1\n---\nbody",
			wantMeta: core.Metadata{},
		},
		{
			name:     "Opening line must be exactly three hyphens",
			input:    "----\na: 1\n---\nbody",
			wantBody: "----\na: 1\n---\nbody",
			wantMeta: core.Metadata{},
		},
		{
			name:     "CRLF delimiters",
			input:    "---\r\nfoo: bar\r\n---\r\nbody\r\n",
			wantBody: "body\r\n",
			wantMeta: core.Metadata{"foo": "bar"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			body, meta, err := ExtractHeader([]byte(tc.input))
			if err != nil {
				t.Fatalf("ExtractHeader failed: %v", err)
			}
			if body != tc.wantBody {
				t.Errorf("body mismatch. Want %q, got %q", tc.wantBody, body)
			}
			if len(meta) != len(tc.wantMeta) {
				t.Fatalf("metadata mismatch. Want %v, got %v", tc.wantMeta, meta)
			}
			for k, v := range tc.wantMeta {
				if meta[k] != v {
					t.Errorf("metadata %q mismatch. Want %v, got %v", k, v, meta[k])
				}
			}
		})
	}
}

func TestExtractHeader_StructuredValues(t *testing.T) {
	input := "---\ntags: [a, b]\nauthor:\n  name: Jane\n  admin: true\n---\n"

	body, meta, err := ExtractHeader([]byte(input))
	if err != nil {
		t.Fatalf("ExtractHeader failed: %v", err)
	}
	if body != "" {
		t.Errorf("expected empty body, got %q", body)
	}

	tags, ok := meta["tags"].([]interface{})
	if !ok || len(tags) != 2 || tags[0] != "a" {
		t.Errorf("tags mismatch: %#v", meta["tags"])
	}

	author, ok := meta["author"].(map[string]interface{})
	if !ok {
		t.Fatalf("author is %T, want map[string]interface{}", meta["author"])
	}
	if author["name"] != "Jane" || author["admin"] != true {
		t.Errorf("author mismatch: %#v", author)
	}
}

func TestExtractHeader_Malformed(t *testing.T) {
	for _, input := range []string{
		"---\nfoo: [unclosed\n---\nbody",
		"---\n- just\n- a list\n---\nbody",
		"---\njust a scalar\n---\nbody",
	} {
		_, _, err := ExtractHeader([]byte(input))
		if !errors.Is(err, core.ErrMalformedHeader) {
			t.Errorf("expected ErrMalformedHeader for %q, got %v", input, err)
		}
	}
}
