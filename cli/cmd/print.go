package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// printValue writes a resolved value to w in YAML flow notation.
// Strings are written verbatim so shell substitution stays quote-free.
func printValue(w io.Writer, v any) error {
	switch t := v.(type) {
	case nil:
		_, err := fmt.Fprintln(w, "null")

		return err

	case string:
		_, err := fmt.Fprintln(w, t)

		return err

	default:
		data, err := yaml.MarshalWithOptions(t, yaml.Flow(true))
		if err != nil {
			return ErrYAMLMarshal.Wrap(err)
		}

		_, err = fmt.Fprintln(w, strings.TrimRight(string(data), "\n"))

		return err
	}
}

// printDocument writes the full document to w in block YAML notation.
func printDocument(w io.Writer, doc map[string]any) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return ErrYAMLMarshal.Wrap(err)
	}

	_, err = w.Write(data)

	return err
}

// parseValue interprets a command-line argument as a YAML scalar or flow
// value, so "3" assigns an int, "true" a bool, and "[1, 2]" a sequence.
func parseValue(text string) (any, error) {
	var v any

	err := yaml.Unmarshal([]byte(text), &v)
	if err != nil {
		return nil, ErrParseValue.Wrap(err)
	}

	return v, nil
}
