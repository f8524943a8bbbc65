package export

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/cinii-research/pkg/types"
)

// CSLItem represents a bibliographic entry in CSL (Citation Style Language)
// format. The field names and structure follow the CSL-JSON/CSL-YAML schema
// so that output is consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Volume         string    `yaml:"volume,omitempty"`
	Issue          string    `yaml:"issue,omitempty"`
	Page           string    `yaml:"page,omitempty"`
	Publisher      string    `yaml:"publisher,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	Abstract       string    `yaml:"abstract,omitempty"`
	DOI            string    `yaml:"DOI,omitempty"`
	ISBN           string    `yaml:"ISBN,omitempty"`
	ISSN           string    `yaml:"ISSN,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName represents a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate represents a date in CSL format using date-parts.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// FormatCSL writes result items as a CSL-YAML list to w.
func FormatCSL(res *types.Result, w io.Writer) error {
	items := make([]CSLItem, 0)
	if res != nil {
		for _, it := range res.Items {
			items = append(items, toCSLItem(it))
		}
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

var cslTypes = map[types.DcType]string{
	types.DcTypeArticle: "article-journal",
	types.DcTypeBook:    "book",
	types.DcTypeDataset: "dataset",
	types.DcTypeProject: "report",
}

// toCSLItem converts a CiNii item to a CSLItem.
func toCSLItem(it types.Item) CSLItem {
	item := CSLItem{
		ID:             it.ID,
		Type:           "document",
		Title:          it.Title,
		ContainerTitle: it.PublicationName,
		Volume:         it.Volume,
		Issue:          it.Number,
		Page:           pageRange(it.StartingPage, it.EndingPage),
		Publisher:      it.Publisher,
		Issued:         parseIssued(it.PublicationDate),
		Abstract:       it.Description,
		DOI:            it.IdentifierOf(types.IdentifierDOI),
		ISBN:           it.IdentifierOf(types.IdentifierISBN),
		ISSN:           it.ISSN,
		URL:            it.Link.ID,
	}
	if it.DcType.Known() {
		item.Type = cslTypes[it.DcType]
	}
	for _, a := range it.Creators {
		item.Author = append(item.Author, parseAuthorName(a))
	}
	return item
}

func pageRange(start, end string) string {
	switch {
	case start != "" && end != "" && start != end:
		return start + "-" + end
	case start != "":
		return start
	}
	return end
}

// parseIssued reads YYYY, YYYY-MM or YYYY-MM-DD into CSL date-parts.
// Unparseable dates are dropped.
func parseIssued(date string) *CSLDate {
	if date == "" {
		return nil
	}
	var parts []int
	for _, f := range strings.SplitN(date, "-", 3) {
		n, err := strconv.Atoi(f)
		if err != nil {
			break
		}
		parts = append(parts, n)
	}
	if len(parts) == 0 {
		return nil
	}
	return &CSLDate{DateParts: [][]int{parts}}
}

// parseAuthorName splits a name into CSL family/given parts. CiNii lists
// Japanese names family-first separated by a space; "Family, Given" is
// split on the comma; other names split on the last space. Single-token
// names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	if family, given, ok := strings.Cut(name, ","); ok {
		return CSLName{Family: strings.TrimSpace(family), Given: strings.TrimSpace(given)}
	}
	fields := strings.Fields(name)
	if len(fields) < 2 {
		return CSLName{Literal: name}
	}
	if isCJK(name) {
		return CSLName{Family: fields[0], Given: strings.Join(fields[1:], " ")}
	}
	idx := strings.LastIndex(name, " ")
	return CSLName{
		Given:  strings.TrimSpace(name[:idx]),
		Family: name[idx+1:],
	}
}

func isCJK(s string) bool {
	for _, r := range s {
		if unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul) {
			return true
		}
	}
	return false
}
