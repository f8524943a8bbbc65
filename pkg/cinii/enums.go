// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cinii

import "fmt"

// SearchType selects the OpenSearch endpoint path.
type SearchType string

const (
	SearchAll           SearchType = "all"
	SearchData          SearchType = "data"
	SearchArticles      SearchType = "articles"
	SearchBooks         SearchType = "books"
	SearchDissertations SearchType = "dissertations"
	SearchProjects      SearchType = "projects"
)

// SearchTypes lists every endpoint in documentation order.
var SearchTypes = []SearchType{
	SearchAll, SearchData, SearchArticles, SearchBooks, SearchDissertations, SearchProjects,
}

// ParseSearchType maps a CLI argument to a SearchType.
func ParseSearchType(s string) (SearchType, error) {
	for _, st := range SearchTypes {
		if string(st) == s {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown search type %q", s)
}

// Format is the response representation requested from the server.
type Format string

const (
	FormatHTML Format = "html"
	FormatRSS  Format = "rss"
	FormatAtom Format = "atom"
	FormatJSON Format = "json"
)

// ParseFormat maps a CLI argument to a Format.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatHTML, FormatRSS, FormatAtom, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("unknown format %q (want html, rss, atom or json)", s)
}

// SortOrder is the caller-facing sort order. The wire carries a numeric code.
type SortOrder string

const (
	SortNewest    SortOrder = "newest"
	SortOldest    SortOrder = "oldest"
	SortRelevance SortOrder = "relevance"
	SortCitations SortOrder = "citations"
)

// code returns the sortorder wire value. ok is false for the empty or an
// unknown order, in which case the parameter is left to the server default.
func (s SortOrder) code() (code int, ok bool) {
	switch s {
	case SortNewest:
		return 0, true
	case SortOldest:
		return 1, true
	case SortRelevance:
		return 4, true
	case SortCitations:
		return 10, true
	}
	return 0, false
}

// Lang selects the language of the response metadata.
type Lang string

const (
	LangJapanese Lang = "ja"
	LangEnglish  Lang = "en"
)

// DataSourceType names an upstream database aggregated by CiNii Research.
type DataSourceType string

const (
	DataSourceKAKEN    DataSourceType = "KAKEN"
	DataSourceJALC     DataSourceType = "JALC"
	DataSourceIRDB     DataSourceType = "IRDB"
	DataSourceCrossref DataSourceType = "CROSSREF"
	DataSourceDataCite DataSourceType = "DATACITE"
	DataSourceCID      DataSourceType = "CID"
	DataSourceCIB      DataSourceType = "CIB"
	DataSourceSSJDA    DataSourceType = "SSJDA"
	DataSourceNINJAL   DataSourceType = "NINJAL"
	DataSourceIDR      DataSourceType = "IDR"
	DataSourceDBpedia  DataSourceType = "DBPEDIA"
	DataSourceRUDA     DataSourceType = "RUDA"
)

// ResourceType is the resource kind filter vocabulary. Values are sent as-is,
// including the mixed casing the server expects.
type ResourceType string

const (
	ResourceConferencePaper           ResourceType = "conference paper"
	ResourceDataPaper                 ResourceType = "data paper"
	ResourceDepartmentalBulletinPaper ResourceType = "departmental bulletin paper"
	ResourceEditorial                 ResourceType = "editorial"
	ResourceJournalArticle            ResourceType = "journal article"
	ResourceNewspaper                 ResourceType = "newspaper"
	ResourcePeriodical                ResourceType = "periodical"
	ResourceReviewArticle             ResourceType = "review article"
	ResourceSoftwarePaper             ResourceType = "software paper"
	ResourceArticle                   ResourceType = "article"
	ResourceJournalArticleUnderscore  ResourceType = "journal_article"
	ResourceBook                      ResourceType = "book"
	ResourceAudiovisual               ResourceType = "Audiovisual"
	ResourceCollection                ResourceType = "Collection"
	ResourceDataset                   ResourceType = "Dataset"
	ResourceEvent                     ResourceType = "Event"
	ResourceImage                     ResourceType = "Image"
	ResourceInteractiveResource       ResourceType = "InteractiveResource"
	ResourceModel                     ResourceType = "Model"
	ResourcePhysicalObject            ResourceType = "PhysicalObject"
	ResourceService                   ResourceType = "Service"
	ResourceSoftware                  ResourceType = "Software"
	ResourceSound                     ResourceType = "Sound"
	ResourceText                      ResourceType = "Text"
	ResourceWorkflow                  ResourceType = "Workflow"
	ResourceOther                     ResourceType = "Other"
	ResourceJournal                   ResourceType = "journal"
)
