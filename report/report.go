// Package report prints recovery results.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/vitalvas/shamirkit/recovery"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var ErrUnknownFormat = errors.New("report: unknown format")

// Writer prints one result at a time.
type Writer interface {
	Write(result *recovery.Result) error
}

// New returns a writer for the given format: "text" or "json".
func New(format string, w io.Writer) (Writer, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return &textWriter{w: w}, nil
	case "json":
		return &jsonWriter{enc: json.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteAll writes results in order and stops at the first write error.
func WriteAll(w Writer, results []*recovery.Result) error {
	for _, result := range results {
		if err := w.Write(result); err != nil {
			return err
		}
	}
	return nil
}

type textWriter struct {
	w io.Writer
}

func (t *textWriter) Write(result *recovery.Result) error {
	if result.Failed() {
		_, err := fmt.Fprintf(t.w, "Error processing %s: %v\n", result.Path, result.Err)
		return err
	}

	if _, err := fmt.Fprintf(t.w, "Secret for %s: %s\n", result.Path, result.Secret); err != nil {
		return err
	}

	if !result.Checked {
		return nil
	}

	points := make([]string, len(result.WrongPoints))
	for i, p := range result.WrongPoints {
		points[i] = p.Share.String()
	}

	_, err := fmt.Fprintf(t.w, "Wrong Points in %s: [%s]\n", result.Path, strings.Join(points, ", "))
	return err
}

type jsonWrongPoint struct {
	X        string `json:"x"`
	Y        string `json:"y"`
	Expected string `json:"expected,omitempty"`
}

type jsonResult struct {
	File        string            `json:"file"`
	N           int               `json:"n,omitempty"`
	K           int               `json:"k,omitempty"`
	Secret      string            `json:"secret,omitempty"`
	WrongPoints *[]jsonWrongPoint `json:"wrong_points,omitempty"`
	Error       string            `json:"error,omitempty"`
}

type jsonWriter struct {
	enc *jsoniter.Encoder
}

func (j *jsonWriter) Write(result *recovery.Result) error {
	out := jsonResult{
		File: result.Path,
		N:    result.Total,
		K:    result.Threshold,
	}

	if result.Failed() {
		out.Error = result.Err.Error()
		return j.enc.Encode(out)
	}

	out.Secret = result.Secret.String()

	if result.Checked {
		points := make([]jsonWrongPoint, 0, len(result.WrongPoints))
		for _, p := range result.WrongPoints {
			point := jsonWrongPoint{
				X: p.Share.X.String(),
				Y: p.Share.Y.String(),
			}
			if p.Expected != nil {
				point.Expected = p.Expected.String()
			}
			points = append(points, point)
		}
		out.WrongPoints = &points
	}

	return j.enc.Encode(out)
}
