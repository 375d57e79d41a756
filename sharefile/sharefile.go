// Package sharefile loads share sets from JSON or YAML documents.
//
// A document is an object keyed by x-coordinate plus a "keys" record:
//
//	{
//	  "keys": {"n": 3, "k": 2},
//	  "1": {"base": "10", "value": "100"},
//	  "2": {"base": "16", "value": "96"},
//	  "3": {"base": "2", "value": "100101100"}
//	}
//
// JSON documents may carry comments and trailing commas.
package sharefile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/shamirkit/shamir"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const keysRecord = "keys"

// Format is the encoding of a share document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: extension %q", ErrUnsupportedFormat, ext)
	}
}

// File is a decoded share document.
type File struct {
	Path string
	// Threshold is k, the number of shares needed to reconstruct.
	Threshold int
	// Total is n, the number of shares in the document.
	Total int
	// Shares are sorted by ascending x-coordinate.
	Shares []*shamir.Share
}

// Redundant reports whether the document carries more shares than needed.
func (f *File) Redundant() bool {
	return f.Total > f.Threshold
}

// scalar accepts both quoted and bare scalars, so "16" and 16 decode alike.
type scalar string

func (s *scalar) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = scalar(str)
		return nil
	}

	*s = scalar(data)
	return nil
}

func (s *scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", node.Line)
	}

	*s = scalar(node.Value)
	return nil
}

type entry struct {
	N     *int    `json:"n" yaml:"n"`
	K     *int    `json:"k" yaml:"k"`
	Base  *scalar `json:"base" yaml:"base"`
	Value *scalar `json:"value" yaml:"value"`
}

// Load reads and decodes the share document at path.
func Load(path string) (*File, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	file, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	file.Path = path
	return file, nil
}

// Parse decodes a share document.
func Parse(data []byte, format Format) (*File, error) {
	var doc map[string]entry

	switch format {
	case FormatJSON:
		standard, err := standardizeJSON(data)
		if err != nil {
			return nil, fmt.Errorf("standardize json: %w", err)
		}
		if err := json.Unmarshal(standard, &doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}

	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return build(doc)
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return nil, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}

func build(doc map[string]entry) (*File, error) {
	keys, ok := doc[keysRecord]
	if !ok || keys.N == nil || keys.K == nil {
		return nil, ErrMissingKeys
	}

	n, k := *keys.N, *keys.K
	if k < 1 || n < k {
		return nil, fmt.Errorf("%w: n=%d k=%d", ErrInvalidKeys, n, k)
	}

	shares := make([]*shamir.Share, 0, len(doc)-1)
	seen := make(map[string]string, len(doc)-1)

	for key, e := range doc {
		if key == keysRecord {
			continue
		}

		s, err := buildShare(key, e)
		if err != nil {
			return nil, err
		}

		id := s.X.String()
		if prev, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: keys %q and %q", ErrDuplicateX, prev, key)
		}
		seen[id] = key

		shares = append(shares, s)
	}

	if len(shares) != n {
		return nil, fmt.Errorf("%w: n=%d, found %d", ErrCountMismatch, n, len(shares))
	}

	sort.Slice(shares, func(i, j int) bool {
		return shares[i].X.Cmp(shares[j].X) < 0
	})

	return &File{
		Threshold: k,
		Total:     n,
		Shares:    shares,
	}, nil
}

func buildShare(key string, e entry) (*shamir.Share, error) {
	x, err := parseX(key)
	if err != nil {
		return nil, err
	}

	if e.Base == nil || e.Value == nil {
		return nil, fmt.Errorf("share %s: %w: base and value are required", key, ErrInvalidValue)
	}

	base, err := ParseBase(string(*e.Base))
	if err != nil {
		return nil, fmt.Errorf("share %s: %w", key, err)
	}

	y, err := DecodeValue(string(*e.Value), base)
	if err != nil {
		return nil, fmt.Errorf("share %s: %w", key, err)
	}

	return shamir.NewShare(x, y)
}
