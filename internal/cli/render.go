package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/mesh-intelligence/buckets/pkg/buckets"
	"github.com/mesh-intelligence/buckets/pkg/types"
)

var (
	headerColor = color.New(color.FgBlue, color.Bold)
	matchColor  = color.New(color.FgYellow)
	focusColor  = color.New(color.FgYellow, color.Bold, color.Underline)
	dimColor    = color.New(color.FgHiBlack)
)

// Item markers in board listings.
const (
	markPlain = "  "
	markMatch = "* "
	markFocus = "> "
)

// itemLabel returns the text shown for an item: its title, else its id.
func itemLabel(it types.Item) string {
	if it.Title != "" {
		return it.Title
	}
	return it.ID.String()
}

// itemMark returns the marker and color for an item in a listing.
func itemMark(it buckets.ItemElement) (string, *color.Color) {
	switch {
	case it.IsFilterFocus:
		return markFocus, focusColor
	case it.InGlobalFilter:
		return markMatch, matchColor
	default:
		return markPlain, nil
	}
}

// printBoard writes every bucket with its items, one item per line.
func printBoard(w io.Writer, in *buckets.Instance) {
	for i, b := range in.GetBuckets() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		headerColor.Fprintf(w, "%s (%d)\n", b.Title, len(b.Items))
		if len(b.Items) == 0 {
			dimColor.Fprintln(w, markPlain+"(empty)")
			continue
		}
		for _, it := range b.Items {
			mark, c := itemMark(it)
			if c == nil {
				fmt.Fprintf(w, "%s%s\n", mark, itemLabel(it.Item))
				continue
			}
			c.Fprintf(w, "%s%s\n", mark, itemLabel(it.Item))
		}
	}
}

// printBoardTable writes the buckets side by side, one column per bucket.
func printBoardTable(w io.Writer, in *buckets.Instance) {
	projection := in.GetBuckets()

	tbl := uitable.New()
	tbl.Separator = "  "

	header := make([]any, 0, len(projection))
	rows := 0
	for _, b := range projection {
		header = append(header, fmt.Sprintf("%s (%d)", b.Title, len(b.Items)))
		rows = max(rows, len(b.Items))
	}
	tbl.AddRow(header...)

	for r := range rows {
		cells := make([]any, 0, len(projection))
		for _, b := range projection {
			if r >= len(b.Items) {
				cells = append(cells, "")
				continue
			}
			mark, _ := itemMark(b.Items[r])
			cells = append(cells, mark+itemLabel(b.Items[r].Item))
		}
		tbl.AddRow(cells...)
	}
	fmt.Fprintln(w, tbl)
}

// printFilterResults writes one line per filter match in result order.
func printFilterResults(w io.Writer, in *buckets.Instance) {
	state := in.GetState()
	if len(state.FilterResults) == 0 {
		dimColor.Fprintf(w, "no items match %q\n", state.GlobalFilter)
		return
	}
	for i, pair := range state.FilterResults {
		bucket, _ := in.GetBucket(pair.Bucket)
		item, _ := in.GetItem(pair.Item)
		if i == state.FilterFocusIndex {
			focusColor.Fprintf(w, "%s%s / %s\n", markFocus, bucket.Title, itemLabel(item))
			continue
		}
		fmt.Fprintf(w, "%s%s / %s\n", markPlain, bucket.Title, itemLabel(item))
	}
}

// applyFilter sets the global filter and presses Enter next times.
func applyFilter(in *buckets.Instance, text string, next int) {
	in.SetGlobalFilter(text)
	for range next {
		in.OnFilterEnter(types.KeyEvent{Key: types.KeyEnter})
	}
}
