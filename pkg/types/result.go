// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the cinii-research client:
// the JSON search envelope returned by CiNii Research OpenSearch and the
// configuration structs consumed by the client and the CLI.
//
// Field tags carry the JSON-LD keys exactly as the server emits them, so a
// decoded Result re-encodes to the same document.
package types

// Result is the envelope returned for format=json.
type Result struct {
	Context     Context `json:"@context" yaml:"context"`
	ID          string  `json:"@id" yaml:"id"`
	Type        string  `json:"@type" yaml:"type"`
	Title       string  `json:"title" yaml:"title"`
	Description string  `json:"description" yaml:"description"`
	Link        Link    `json:"link" yaml:"link"`

	// Date is the response timestamp as sent by the server (ISO 8601).
	Date string `json:"dc:date" yaml:"date"`

	TotalResults int `json:"opensearch:totalResults" yaml:"total_results"`
	StartIndex   int `json:"opensearch:startIndex" yaml:"start_index"`
	ItemsPerPage int `json:"opensearch:itemsPerPage" yaml:"items_per_page"`

	Items []Item `json:"items" yaml:"items"`
}

// Context is the JSON-LD vocabulary block of the envelope.
type Context struct {
	Vocab      string `json:"@vocab" yaml:"vocab"`
	RDF        string `json:"rdf" yaml:"rdf"`
	RDFS       string `json:"rdfs" yaml:"rdfs"`
	DC         string `json:"dc" yaml:"dc"`
	Prism      string `json:"prism" yaml:"prism"`
	NDL        string `json:"ndl" yaml:"ndl"`
	OpenSearch string `json:"opensearch" yaml:"opensearch"`
	CIR        string `json:"cir" yaml:"cir"`
	Language   string `json:"@language" yaml:"language"`
}

// Link wraps a JSON-LD node reference.
type Link struct {
	ID string `json:"@id" yaml:"id"`
}

// Item is a single search hit.
type Item struct {
	ID      string   `json:"@id" yaml:"id"`
	Type    ItemType `json:"@type" yaml:"type"`
	Title   string   `json:"title" yaml:"title"`
	Link    Link     `json:"link" yaml:"link"`
	SeeAlso *Link    `json:"rdfs:seeAlso,omitempty" yaml:"see_also,omitempty"`

	// Creators lists author names in server order.
	Creators []string `json:"dc:creator,omitempty" yaml:"creators,omitempty"`
	DcType   DcType   `json:"dc:type" yaml:"dc_type"`

	PublicationName string `json:"prism:publicationName,omitempty" yaml:"publication_name,omitempty"`
	ISSN            string `json:"prism:issn,omitempty" yaml:"issn,omitempty"`
	Volume          string `json:"prism:volume,omitempty" yaml:"volume,omitempty"`
	Number          string `json:"prism:number,omitempty" yaml:"number,omitempty"`
	StartingPage    string `json:"prism:startingPage,omitempty" yaml:"starting_page,omitempty"`
	EndingPage      string `json:"prism:endingPage,omitempty" yaml:"ending_page,omitempty"`
	PublicationDate string `json:"prism:publicationDate,omitempty" yaml:"publication_date,omitempty"`
	Publisher       string `json:"dc:publisher,omitempty" yaml:"publisher,omitempty"`
	Description     string `json:"description,omitempty" yaml:"description,omitempty"`

	Identifiers []Identifier `json:"dc:identifier" yaml:"identifiers"`
	Subjects    []string     `json:"dc:subject,omitempty" yaml:"subjects,omitempty"`
	Sources     []Source     `json:"dc:source,omitempty" yaml:"sources,omitempty"`
}

// Identifier pairs an identifier kind with its value.
type Identifier struct {
	Type  IdentifierType `json:"@type" yaml:"type"`
	Value string         `json:"@value" yaml:"value"`
}

// Source references an upstream record the item was aggregated from.
type Source struct {
	ID    string `json:"@id" yaml:"id"`
	Title string `json:"dc:title,omitempty" yaml:"title,omitempty"`
}

// IdentifierOf returns the value of the first identifier of kind t, or ""
// when the item carries none.
func (it Item) IdentifierOf(t IdentifierType) string {
	for _, id := range it.Identifiers {
		if id.Type == t {
			return id.Value
		}
	}
	return ""
}

// ItemType tags the JSON-LD node type of an item.
type ItemType string

const ItemTypeItem ItemType = "item"

// DcType is the content type of an item.
type DcType string

const (
	DcTypeArticle DcType = "Article"
	DcTypeBook    DcType = "Book"
	DcTypeDataset DcType = "Dataset"
	DcTypeProject DcType = "Project"
)

// Known reports whether t is one of the documented content types.
func (t DcType) Known() bool {
	switch t {
	case DcTypeArticle, DcTypeBook, DcTypeDataset, DcTypeProject:
		return true
	}
	return false
}

// IdentifierType is the controlled vocabulary of identifier kinds. Values the
// server adds later decode unchanged; Known reports whether a value is one of
// the documented kinds.
type IdentifierType string

const (
	IdentifierDOI      IdentifierType = "cir:DOI"
	IdentifierHDL      IdentifierType = "cir:HDL"
	IdentifierISBN     IdentifierType = "cir:ISBN"
	IdentifierKAKEN    IdentifierType = "cir:KAKEN"
	IdentifierLCCN     IdentifierType = "cir:LCCN"
	IdentifierNAID     IdentifierType = "cir:NAID"
	IdentifierNCID     IdentifierType = "cir:NCID"
	IdentifierNDLBibID IdentifierType = "cir:NDL_BIB_ID"
	IdentifierURI      IdentifierType = "cir:URI"
)

// Known reports whether t is one of the documented identifier kinds.
func (t IdentifierType) Known() bool {
	switch t {
	case IdentifierDOI, IdentifierHDL, IdentifierISBN, IdentifierKAKEN,
		IdentifierLCCN, IdentifierNAID, IdentifierNCID, IdentifierNDLBibID,
		IdentifierURI:
		return true
	}
	return false
}
