package structdiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// FormatPrettyString is a convenience wrapper that outputs to a string
// instead of an io.Writer
func FormatPrettyString(delta Delta, colorTTY bool) (string, error) {
	buf := &bytes.Buffer{}
	if err := FormatPretty(buf, delta, colorTTY); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// FormatPretty writes a text report of a delta to w. if colorTTY is
// true it will write
// red "-" for deletions
// green "+" for insertions
// blue "~" for replacements & "!" for variant changes
func FormatPretty(w io.Writer, delta Delta, colorTTY bool) error {
	return formatPretty(w, delta, "", 0, colorTTY)
}

var (
	insertColor = color.New(color.FgGreen)
	deleteColor = color.New(color.FgRed)
	updateColor = color.New(color.FgBlue)
)

func paint(c *color.Color, colorTTY bool, format string, args ...interface{}) string {
	if colorTTY {
		return c.Sprintf(format, args...)
	}
	return fmt.Sprintf(format, args...)
}

// formatPretty renders one delta. label carries the "name: " prefix a
// parent product or map assigned this delta, empty at the root
func formatPretty(w io.Writer, delta Delta, label string, indent int, colorTTY bool) error {
	ind := strings.Repeat("  ", indent)

	switch d := delta.(type) {
	case NoChange:
		fmt.Fprintf(w, "%s%sunchanged\n", ind, label)

	case Replace:
		data, err := json.Marshal(d.Value)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s%s\n", ind, paint(updateColor, colorTTY, "~ %s%s", label, data))

	case FieldsChanged:
		if label != "" {
			fmt.Fprintf(w, "%s%s\n", ind, strings.TrimSuffix(label, " "))
			indent++
		}
		for _, f := range d.Fields {
			if err := formatPretty(w, f.Delta, f.Name+": ", indent, colorTTY); err != nil {
				return err
			}
		}

	case VariantChanged:
		data, err := json.Marshal(d.Payload)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s%s\n", ind, paint(updateColor, colorTTY, "! %s%s %s", label, d.Tag, data))

	case SameVariant:
		fmt.Fprintf(w, "%s%s%s:\n", ind, label, d.Tag)
		return formatPretty(w, d.Fields, "", indent+1, colorTTY)

	case SequenceEdits:
		if label != "" {
			fmt.Fprintf(w, "%s%s\n", ind, strings.TrimSuffix(label, " "))
			indent++
			ind = strings.Repeat("  ", indent)
		}
		for _, e := range d.Edits {
			switch e.Op {
			case OpKeep:
				fmt.Fprintf(w, "%s%s %d\n", ind, OpKeep, e.Count)
			case OpDelete:
				fmt.Fprintf(w, "%s%s\n", ind, paint(deleteColor, colorTTY, "- %d", e.Count))
			case OpInsert:
				data, err := json.Marshal(e.Values)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s%s\n", ind, paint(insertColor, colorTTY, "+ %s", data))
			}
		}

	case MapEdits:
		if label != "" {
			fmt.Fprintf(w, "%s%s\n", ind, strings.TrimSuffix(label, " "))
			indent++
			ind = strings.Repeat("  ", indent)
		}
		for _, e := range d.Edits {
			switch e.Op {
			case OpDelete:
				fmt.Fprintf(w, "%s%s\n", ind, paint(deleteColor, colorTTY, "- %v", e.Key))
			case OpInsert:
				data, err := json.Marshal(e.Value)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s%s\n", ind, paint(insertColor, colorTTY, "+ %v: %s", e.Key, data))
			case OpPatch:
				if err := formatPretty(w, e.Delta, fmt.Sprintf("%v: ", e.Key), indent, colorTTY); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// FormatPrettyStats prints a string of stats info
func FormatPrettyStats(st *Stats) string {
	return formatStats(st, false)
}

// FormatPrettyStatsColor prints a string of stats info with ANSI colors
func FormatPrettyStatsColor(st *Stats) string {
	return formatStats(st, true)
}

func formatStats(st *Stats, colorTTY bool) string {
	if st == nil {
		return "<nil>"
	}

	buf := &bytes.Buffer{}
	part := func(c *color.Color, count int, singular, plural string) {
		if count == 0 {
			return
		}
		word := plural
		if count == 1 {
			word = singular
		}
		if buf.Len() > 0 {
			buf.WriteRune(' ')
		}
		buf.WriteString(paint(c, colorTTY, "%d %s.", count, word))
	}

	part(updateColor, st.Replaces, "replace", "replaces")
	part(updateColor, st.FieldChanges, "field change", "field changes")
	part(updateColor, st.VariantChanges, "variant change", "variant changes")
	part(insertColor, st.Inserts, "insert", "inserts")
	part(deleteColor, st.Deletes, "delete", "deletes")
	part(insertColor, st.Sets, "key set", "keys set")
	part(deleteColor, st.Removes, "key removed", "keys removed")

	if buf.Len() == 0 {
		buf.WriteString("no changes.")
	}
	buf.WriteRune('\n')

	return buf.String()
}
