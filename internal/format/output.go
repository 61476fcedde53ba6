package format

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"shoplist/internal/model"
)

// WriteItems writes the list in the requested format.
//
// Supported formats:
// - json: {"items":[...]} using the model's json tags
// - text: one tab-aligned "id name quantity" row per item
func WriteItems(w io.Writer, items []model.ShoppingItem, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, listEnvelope{Items: nonNil(items)}, pretty)
	case "text":
		return writeText(w, items)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

type listEnvelope struct {
	Items []model.ShoppingItem `json:"items"`
}

func nonNil(items []model.ShoppingItem) []model.ShoppingItem {
	if items == nil {
		return []model.ShoppingItem{}
	}
	return items
}

// WriteJSON writes strict JSON followed by a newline.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeText(w io.Writer, items []model.ShoppingItem) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, it := range items {
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%d\n", it.ID, it.Name, it.Quantity); err != nil {
			return err
		}
	}
	return tw.Flush()
}
