package main

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeOutput encodes v to w as indented JSON or YAML.
func writeOutput(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return eris.Wrap(enc.Encode(v), "encode json")
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return eris.Wrap(err, "encode yaml")
		}
		return eris.Wrap(enc.Close(), "encode yaml")
	default:
		return eris.Errorf("unsupported format %q (want json or yaml)", format)
	}
}

func printResult(cmd *cobra.Command, v any) error {
	format, _ := cmd.Flags().GetString("format")
	return writeOutput(cmd.OutOrStdout(), format, v)
}

// readInput reads path, or stdin when path is empty or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		return data, eris.Wrap(err, "read stdin")
	}
	data, err := os.ReadFile(path)
	return data, eris.Wrapf(err, "read %s", path)
}

// decodeInput unmarshals a JSON or, for .yaml/.yml paths, YAML document.
func decodeInput(path string, data []byte, v any) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return eris.Wrapf(yaml.Unmarshal(data, v), "parse %s", path)
	default:
		return eris.Wrapf(json.Unmarshal(data, v), "parse %s", displayName(path))
	}
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
