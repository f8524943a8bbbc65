// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export renders CiNii search results for the CLI: a text table,
// indented JSON, a CSL-YAML bibliography and saved-search YAML files.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/cinii-research/pkg/types"
)

// FormatTable writes result items as a human-readable table to w.
func FormatTable(res *types.Result, w io.Writer) {
	if res == nil || len(res.Items) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	fmt.Fprintf(w, "%-4s  %-50s  %-20s  %-10s  %-8s  %s\n",
		"Rank", "Title", "Creators", "Date", "Type", "Identifier")
	fmt.Fprintln(w, strings.Repeat("-", 120))

	first := max(res.StartIndex, 1)
	for i, it := range res.Items {
		fmt.Fprintf(w, "%-4d  %s  %s  %-10s  %-8s  %s\n",
			first+i,
			pad(truncate(it.Title, 50), 50),
			pad(formatCreators(it.Creators), 20),
			it.PublicationDate,
			it.DcType,
			primaryIdentifier(it))
	}

	fmt.Fprintf(w, "\n%d of %d results\n", len(res.Items), res.TotalResults)
}

// FormatJSON writes the envelope as indented JSON to w, keeping the
// server's JSON-LD keys.
func FormatJSON(res *types.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(res)
}

// primaryIdentifier picks the most citable identifier of an item.
func primaryIdentifier(it types.Item) string {
	for _, t := range []types.IdentifierType{
		types.IdentifierDOI, types.IdentifierISBN, types.IdentifierNCID,
		types.IdentifierNAID, types.IdentifierKAKEN,
	} {
		if v := it.IdentifierOf(t); v != "" {
			return strings.TrimPrefix(string(t), "cir:") + ":" + v
		}
	}
	return it.ID
}

func formatCreators(creators []string) string {
	switch len(creators) {
	case 0:
		return ""
	case 1:
		return truncate(creators[0], 20)
	default:
		return truncate(creators[0], 14) + " et al."
	}
}

// truncate shortens s to max runes so multibyte titles are never split.
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}

// pad right-pads s with spaces to width runes.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
