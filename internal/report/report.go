// Package report renders migration insights.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vignesh-tw/migration-analysis/internal/insights"
	"gopkg.in/yaml.v2"
)

// Format is an output format of a report.
type Format string

// Supported formats.
const (
	TextFormat  Format = "text"
	TableFormat Format = "table"
	JSONFormat  Format = "json"
	YAMLFormat  Format = "yaml"
)

// Formats lists every supported format.
var Formats = []Format{TextFormat, TableFormat, JSONFormat, YAMLFormat}

// ParseFormat converts s to a Format.
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q. Options: text, table, json, yaml", s)
}

// Write renders the insight to dst in the given format.
func Write(dst io.Writer, i insights.Insight, f Format) error {
	switch f {
	case TextFormat:
		_, err := io.WriteString(dst, i.String())
		return err
	case TableFormat:
		renderTable(dst, i)
		return nil
	case JSONFormat:
		return json.NewEncoder(dst).Encode(i)
	case YAMLFormat:
		b, err := yaml.Marshal(i)
		if err != nil {
			return err
		}
		_, err = dst.Write(b)
		return err
	}
	return fmt.Errorf("unknown output format %q", f)
}
