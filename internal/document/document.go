// Package document decodes untyped input documents into top-level field maps.
package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format names a supported input encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported document format")
	ErrDecode            = errors.New("failed to decode document")
	ErrNotObject         = errors.New("document is not an object")
)

// ParseFormat accepts json, yaml and yml in any case.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// Decode reads a single object from r. JSON numbers are kept as json.Number
// so integers are not widened to float64. An empty input decodes to an empty
// map.
func Decode(r io.Reader, f Format) (map[string]any, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var doc any
	switch f {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err = dec.Decode(&doc); err == nil {
			var extra json.RawMessage
			if dec.Decode(&extra) != io.EOF {
				return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrDecode)
			}
		}
	case FormatYAML:
		err = yaml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, errors.Join(ErrDecode, err)
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNotObject, doc)
	}
	return obj, nil
}

// Lookup returns the value stored under key, or nil when the key is absent.
// Absent and explicit null are indistinguishable to callers.
func Lookup(doc map[string]any, key string) any {
	return doc[key]
}
