package fs

import (
	"bytes"
	"fmt"

	"github.com/aretw0/jadof/pkg/core"
	"gopkg.in/yaml.v3"
)

// delimiter opens and closes a header block.
const delimiter = "---"

// ExtractHeader splits raw file content into its body and header metadata.
//
// A header is recognized only at the very start of the content: a "---" line,
// a YAML mapping, and a closing "---" line terminated by a newline. The first
// closing line ends the header. Without a header the body is the content
// unchanged and the metadata is empty.
func ExtractHeader(data []byte) (string, core.Metadata, error) {
	meta := make(core.Metadata)

	open, ok := lineEnd(data, 0)
	if !ok || string(bytes.TrimRight(data[:open], "\r\n")) != delimiter {
		return string(data), meta, nil
	}

	// The opening newline is part of the search so an empty header ("---\n---\n") closes at once.
	start := open - 1
	for i := start; i < len(data); {
		end, ok := lineEnd(data, i+1)
		if !ok {
			break
		}
		line := bytes.TrimRight(data[i+1:end], "\r\n")
		if string(line) == delimiter {
			if err := parseYAML(data[open:i+1], meta); err != nil {
				return "", nil, err
			}
			return string(data[end:]), meta, nil
		}
		i = end - 1
	}

	// Opened but never closed: not a header.
	return string(data), meta, nil
}

// lineEnd returns the index just past the newline ending the line that starts at from.
func lineEnd(data []byte, from int) (int, bool) {
	if from >= len(data) {
		return 0, false
	}
	i := bytes.IndexByte(data[from:], '\n')
	if i < 0 {
		return 0, false
	}
	return from + i + 1, true
}

func parseYAML(block []byte, meta core.Metadata) error {
	var payload map[string]any
	if err := yaml.Unmarshal(block, &payload); err != nil {
		return fmt.Errorf("%w: %v", core.ErrMalformedHeader, err)
	}
	for k, v := range payload {
		meta[k] = v
	}
	return nil
}
