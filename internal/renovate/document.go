// Package renovate loads Renovate configuration documents and decodes their
// packageRules into typed records.
//
// Documents are JSON5: line and block comments, trailing commas, unquoted
// keys and single-quoted strings are accepted. Only the packageRules key is consulted, and within each rule
// only matchManagers and matchPackageNames.
//
// Decoding is lenient. Missing keys default to empty lists, and entries of the
// wrong shape are recorded as Problems instead of failing the whole document.
package renovate

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/titanous/json5"
)

// Keys consulted in the document
const (
	KeyPackageRules      = "packageRules"
	KeyMatchManagers     = "matchManagers"
	KeyMatchPackageNames = "matchPackageNames"
)

// ErrNotObject is returned when the top-level value is not an object
var ErrNotObject = errors.New("top-level value is not an object")

// ParseError wraps any failure to open, read or parse a document
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Rule is one decoded entry of packageRules
type Rule struct {
	// Index is the 0-based position of the entry in packageRules
	Index             int
	MatchManagers     []string
	MatchPackageNames []string
}

// Problem describes a packageRules entry (or the list itself) whose shape
// did not match what the decoder expected.
type Problem struct {
	// Index is the entry position, or -1 when the problem concerns packageRules itself
	Index   int
	Message string
	// Skipped is true when the entry was dropped from the rule list
	Skipped bool
}

// Document is a decoded Renovate configuration
type Document struct {
	Path     string
	Rules    []Rule
	Problems []Problem
}

// Load opens path and parses its content as a JSON5 Renovate document
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return Parse(path, data)
}

// Parse decodes JSON5 data. path is only used for error messages and is
// stored on the returned Document.
func Parse(path string, data []byte) (*Document, error) {
	var raw interface{}
	if err := json5.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	obj, ok := raw.(map[string]interface{})
	if !ok {
		return nil, &ParseError{Path: path, Err: fmt.Errorf("%w (got %s)", ErrNotObject, typeName(raw))}
	}

	doc := &Document{Path: path, Rules: []Rule{}}
	doc.decodeRules(obj[KeyPackageRules])
	return doc, nil
}

func (d *Document) decodeRules(value interface{}) {
	if value == nil {
		return
	}

	entries, ok := value.([]interface{})
	if !ok {
		d.Problems = append(d.Problems, Problem{
			Index:   -1,
			Message: fmt.Sprintf("%s is not an array (got %s)", KeyPackageRules, typeName(value)),
			Skipped: true,
		})
		return
	}

	for i, entry := range entries {
		obj, ok := entry.(map[string]interface{})
		if !ok {
			d.Problems = append(d.Problems, Problem{
				Index:   i,
				Message: fmt.Sprintf("entry is not an object (got %s)", typeName(entry)),
				Skipped: true,
			})
			continue
		}

		d.Rules = append(d.Rules, Rule{
			Index:             i,
			MatchManagers:     d.stringList(i, KeyMatchManagers, obj[KeyMatchManagers]),
			MatchPackageNames: d.stringList(i, KeyMatchPackageNames, obj[KeyMatchPackageNames]),
		})
	}
}

// stringList converts a raw field to a string slice. Absent fields become
// an empty slice; wrong shapes are reported and dropped.
func (d *Document) stringList(index int, key string, value interface{}) []string {
	result := []string{}
	if value == nil {
		return result
	}

	items, ok := value.([]interface{})
	if !ok {
		d.Problems = append(d.Problems, Problem{
			Index:   index,
			Message: fmt.Sprintf("%s is not an array (got %s), treated as empty", key, typeName(value)),
		})
		return result
	}

	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			d.Problems = append(d.Problems, Problem{
				Index:   index,
				Message: fmt.Sprintf("%s contains a non-string value %v, ignored", key, item),
			})
			continue
		}
		result = append(result, s)
	}
	return result
}

func typeName(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]interface{}:
		return "object"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
