// Package render turns fetched platform resources into the text the CLI
// prints. All render functions return output without a trailing newline,
// emitting it is up to the caller.
package render

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/samber/lo"
	"github.com/vesselhq/vessel/pkg/api"
	"gopkg.in/yaml.v3"
)

// Secrets renders a full secret list, values included.
func Secrets(secrets []api.Secret, format ListFormat) (string, error) {
	switch format {
	case ListFormatJSON:
		return marshalJSON(secrets)
	case ListFormatYAML:
		return marshalYAML(secrets)
	case ListFormatTable:
		rows := lo.Map(secrets, func(s api.Secret, _ int) []string {
			return []string{s.Name, s.Value}
		})
		return table([]string{"NAME", "VALUE"}, rows), nil
	case ListFormatItemTable:
		items := lo.Map(secrets, func(s api.Secret, _ int) string {
			out, _ := Secret(s, ItemFormatTable)
			return out
		})
		return strings.Join(items, "\n\n"), nil
	default:
		return "", fmt.Errorf("unknown output format %q", format)
	}
}

// Secret renders a single secret.
func Secret(secret api.Secret, format ItemFormat) (string, error) {
	switch format {
	case ItemFormatJSON:
		return marshalJSON(secret)
	case ItemFormatYAML:
		return marshalYAML(secret)
	default:
		return table(nil, [][]string{
			{"NAME", secret.Name},
			{"VALUE", secret.Value},
		}), nil
	}
}

// SecretNames renders secret metadata without values.
func SecretNames(secrets []api.Secret, format ListFormat) (string, error) {
	switch format {
	case ListFormatJSON:
		return marshalJSON(secrets)
	case ListFormatYAML:
		return marshalYAML(secrets)
	case ListFormatItemTable:
		items := lo.Map(secrets, func(s api.Secret, _ int) string {
			return table(nil, [][]string{
				{"NAME", s.Name},
				{"UPDATED", updatedAt(s)},
			})
		})
		return strings.Join(items, "\n\n"), nil
	default:
		rows := lo.Map(secrets, func(s api.Secret, _ int) []string {
			return []string{s.Name, updatedAt(s)}
		})
		return table([]string{"NAME", "UPDATED"}, rows), nil
	}
}

func updatedAt(s api.Secret) string {
	if s.UpdatedAt == nil {
		return "-"
	}
	return s.UpdatedAt.UTC().Format(time.RFC3339)
}

// SanitizeValue escapes a secret value so that it cannot break out of the
// NAME="VALUE" shape of the plain listing: backslashes and double quotes
// are escaped and control characters never appear raw.
func SanitizeValue(value string) string {
	var b strings.Builder
	b.Grow(len(value))
	for _, r := range value {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func marshalYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func table(headers []string, rows [][]string) string {
	var buf strings.Builder
	w := tabwriter.NewWriter(&buf, 10, 1, 3, ' ', 0)
	if len(headers) > 0 {
		_, _ = w.Write([]byte(strings.Join(headers, "\t") + "\n"))
	}
	for _, row := range rows {
		_, _ = w.Write([]byte(strings.Join(row, "\t") + "\n"))
	}
	_ = w.Flush()
	return strings.TrimRight(buf.String(), "\n")
}
