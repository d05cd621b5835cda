package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jsamuelsen11/solace-autoconfig/internal/platform/jsoncodec"
)

// printValue writes v to w as YAML, or JSON when asJSON is set.
func printValue(w io.Writer, v any, asJSON bool) error {
	if asJSON {
		if err := jsoncodec.Encode(w, v); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}
