package render

import (
	"errors"
	"fmt"
)

// ListFormat is the output vocabulary shared by every listing command.
type ListFormat string

const (
	ListFormatJSON      ListFormat = "json"
	ListFormatYAML      ListFormat = "yaml"
	ListFormatTable     ListFormat = "table"
	ListFormatItemTable ListFormat = "item-table"
)

// ItemFormat is the subset valid for a single item.
type ItemFormat string

const (
	ItemFormatJSON  ItemFormat = "json"
	ItemFormatYAML  ItemFormat = "yaml"
	ItemFormatTable ItemFormat = "table"
)

var ErrItemTableUnsupported = errors.New("the 'item-table' format is not available for single values")

// Options is the flag group embedded by commands that render lists. An
// empty Format selects each command's plain rendering path.
type Options struct {
	Format string `usage:"Output format (json, yaml, table, item-table)" short:"f"`
}

func (o Options) ListFormat() (ListFormat, error) {
	switch f := ListFormat(o.Format); f {
	case "", ListFormatJSON, ListFormatYAML, ListFormatTable, ListFormatItemTable:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q", o.Format)
	}
}

// ItemFormat narrows a list format for single item output. The item-table
// layout only makes sense for collections and is rejected.
func (f ListFormat) ItemFormat() (ItemFormat, error) {
	switch f {
	case ListFormatJSON:
		return ItemFormatJSON, nil
	case ListFormatYAML:
		return ItemFormatYAML, nil
	case ListFormatTable:
		return ItemFormatTable, nil
	case ListFormatItemTable:
		return "", ErrItemTableUnsupported
	default:
		return "", fmt.Errorf("unknown output format %q", f)
	}
}
