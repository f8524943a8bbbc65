// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cinii

import (
	"errors"
	"net/url"
	"reflect"
	"testing"
)

// --- BuildQuery ---

func TestBuildQueryEmptyOptions(t *testing.T) {
	got, err := BuildQuery(FormatJSON, SearchOptions{}, "app-123")
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}
	want := WireQuery{"appId": "app-123", "format": "json"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildQuery() = %v, want %v", got, want)
	}
}

func TestBuildQueryEmptyAppIDIsNotAnError(t *testing.T) {
	got, err := BuildQuery(FormatAtom, SearchOptions{}, "")
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}
	if v, ok := got["appId"]; !ok || v != "" {
		t.Errorf("appId = %q (present %v), want empty and present", v, ok)
	}
}

func TestBuildQuerySortOrder(t *testing.T) {
	tests := []struct {
		order SortOrder
		want  string
		sent  bool
	}{
		{SortNewest, "0", true},
		{SortOldest, "1", true},
		{SortRelevance, "4", true},
		{SortCitations, "10", true},
		{"", "", false},
		{"popularity", "", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			q, err := BuildQuery(FormatJSON, SearchOptions{SortOrder: tt.order}, "id")
			if err != nil {
				t.Fatalf("BuildQuery: %v", err)
			}
			got, ok := q["sortorder"]
			if ok != tt.sent || got != tt.want {
				t.Errorf("sortorder = %q (present %v), want %q (present %v)", got, ok, tt.want, tt.sent)
			}
			if _, leaked := q["sortOrder"]; leaked {
				t.Error("caller-side key sortOrder must not be sent")
			}
		})
	}
}

func TestBuildQueryDates(t *testing.T) {
	tests := []struct {
		name string
		opts SearchOptions
		key  string
		want string
	}{
		{"from year", SearchOptions{From: Year(2022)}, "from", "2022"},
		{"from year month", SearchOptions{From: YearMonth(2022, 4)}, "from", "202204"},
		{"until december", SearchOptions{Until: YearMonth(1999, 12)}, "until", "199912"},
		{"award year padded", SearchOptions{AwardYear: Year(987)}, "awardYear", "0987"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := BuildQuery(FormatJSON, tt.opts, "id")
			if err != nil {
				t.Fatalf("BuildQuery: %v", err)
			}
			if q[tt.key] != tt.want {
				t.Errorf("%s = %q, want %q", tt.key, q[tt.key], tt.want)
			}
		})
	}
}

func TestBuildQueryInvalidDate(t *testing.T) {
	opts := SearchOptions{Q: "x", Until: &CalendarPoint{Year: 2020, Month: 13}}
	q, err := BuildQuery(FormatJSON, opts, "id")
	if !errors.Is(err, ErrUnrecognizedDateType) {
		t.Fatalf("err = %v, want ErrUnrecognizedDateType", err)
	}
	if q != nil {
		t.Errorf("query = %v, want nil on error", q)
	}
}

func TestBuildQueryPages(t *testing.T) {
	tests := []struct {
		name  string
		pages PageSpec
		want  string
		sent  bool
	}{
		{"range", PageRange{Start: 10, End: 20}, "10-20", true},
		{"single", Page(5), "5", true},
		{"absent", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := BuildQuery(FormatJSON, SearchOptions{Pages: tt.pages}, "id")
			if err != nil {
				t.Fatalf("BuildQuery: %v", err)
			}
			got, ok := q["pages"]
			if ok != tt.sent || got != tt.want {
				t.Errorf("pages = %q (present %v), want %q (present %v)", got, ok, tt.want, tt.sent)
			}
		})
	}
}

func TestBuildQueryCollections(t *testing.T) {
	opts := SearchOptions{
		DataSourceType: []DataSourceType{DataSourceKAKEN, DataSourceJALC, DataSourceKAKEN},
		LanguageType:   []string{"ja"},
		ResourceType:   []ResourceType{ResourceConferencePaper, ResourceDataset},
	}
	q, err := BuildQuery(FormatJSON, opts, "id")
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}
	if q["datasourceType"] != "KAKEN,JALC,KAKEN" {
		t.Errorf("datasourceType = %q, want order preserved without dedup", q["datasourceType"])
	}
	if q["languageType"] != "ja" {
		t.Errorf("languageType = %q, want %q", q["languageType"], "ja")
	}
	if q["resourceType"] != "conference paper,Dataset" {
		t.Errorf("resourceType = %q", q["resourceType"])
	}
	if _, leaked := q["dataSourceType"]; leaked {
		t.Error("caller-side key dataSourceType must not be sent")
	}

	q, _ = BuildQuery(FormatJSON, SearchOptions{DataSourceType: []DataSourceType{DataSourceKAKEN}}, "id")
	if q["datasourceType"] != "KAKEN" {
		t.Errorf("datasourceType = %q, want %q", q["datasourceType"], "KAKEN")
	}

	q, _ = BuildQuery(FormatJSON, SearchOptions{DataSourceType: []DataSourceType{}}, "id")
	if _, ok := q["datasourceType"]; ok {
		t.Error("empty datasourceType collection should be omitted")
	}
}

func TestBuildQueryExactTitleMatch(t *testing.T) {
	tests := []struct {
		name string
		v    *bool
		want string
		sent bool
	}{
		{"true", Bool(true), "true", true},
		{"explicit false", Bool(false), "false", true},
		{"unset", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := BuildQuery(FormatJSON, SearchOptions{ExactTitleMatch: tt.v}, "id")
			if err != nil {
				t.Fatalf("BuildQuery: %v", err)
			}
			got, ok := q["isFullTitle"]
			if ok != tt.sent || got != tt.want {
				t.Errorf("isFullTitle = %q (present %v), want %q (present %v)", got, ok, tt.want, tt.sent)
			}
			if _, leaked := q["exactTitleMatch"]; leaked {
				t.Error("caller-side key exactTitleMatch must not be sent")
			}
		})
	}
}

func TestBuildQueryScalarPassThrough(t *testing.T) {
	opts := SearchOptions{
		Lang:              LangEnglish,
		Count:             Int(0),
		Start:             Int(-3),
		Q:                 "機械学習",
		Creator:           "山田 太郎",
		DatasetFormat:     "csv",
		HasLinkToFullText: Bool(false),
		Title:             "deep learning",
		ResearcherID:      "1000012345",
		Affiliation:       "東京大学",
		PublicationTitle:  "情報処理",
		ISSN:              "0447-8053",
		Volume:            "12",
		Number:            "3",
		ISBN:              "9784000000000",
		NCID:              "BN00000000",
		Category:          "007",
		Description:       "abstract text",
		AwardInstitution:  "京都大学",
		Degree:            "博士(工学)",
		Publisher:         "岩波書店",
		ProjectID:         "22K12345",
		DOI:               "10.1234/abc",
	}
	got, err := BuildQuery(FormatRSS, opts, "id")
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}
	want := WireQuery{
		"appId":             "id",
		"format":            "rss",
		"lang":              "en",
		"count":             "0",
		"start":             "-3",
		"q":                 "機械学習",
		"creator":           "山田 太郎",
		"datasetFormat":     "csv",
		"hasLinkToFullText": "false",
		"title":             "deep learning",
		"researcherId":      "1000012345",
		"affiliation":       "東京大学",
		"publicationTitle":  "情報処理",
		"issn":              "0447-8053",
		"volume":            "12",
		"number":            "3",
		"isbn":              "9784000000000",
		"ncid":              "BN00000000",
		"category":          "007",
		"description":       "abstract text",
		"awardInstitution":  "京都大学",
		"degree":            "博士(工学)",
		"publisher":         "岩波書店",
		"projectId":         "22K12345",
		"doi":               "10.1234/abc",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BuildQuery() =\n%v\nwant\n%v", got, want)
	}
}

func TestBuildQueryNoEmptyValues(t *testing.T) {
	opts := SearchOptions{Q: "x", From: Year(2020), Pages: Page(3), LanguageType: []string{"ja", "en"}}
	q, err := BuildQuery(FormatJSON, opts, "id")
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}
	for k, v := range q {
		if k != "appId" && (v == "" || v == "undefined") {
			t.Errorf("key %q has empty value %q", k, v)
		}
	}
}

// --- WireQuery encoding ---

func TestWireQueryRoundTrip(t *testing.T) {
	opts := SearchOptions{
		Q:              "C++ & \"quoted\" 100%",
		Creator:        "a+b=c",
		Pages:          PageRange{Start: 1, End: 9},
		DataSourceType: []DataSourceType{DataSourceCrossref, DataSourceDataCite},
		ResourceType:   []ResourceType{ResourceJournalArticle},
		Until:          YearMonth(2023, 1),
		SortOrder:      SortCitations,
	}
	q, err := BuildQuery(FormatJSON, opts, "app/id?=1")
	if err != nil {
		t.Fatalf("BuildQuery: %v", err)
	}

	parsed, err := url.ParseQuery(q.Encode())
	if err != nil {
		t.Fatalf("ParseQuery: %v", err)
	}
	if len(parsed) != len(q) {
		t.Errorf("parsed %d keys, want %d", len(parsed), len(q))
	}
	for k, v := range q {
		if got := parsed[k]; len(got) != 1 || got[0] != v {
			t.Errorf("%s: parsed %v, want [%q]", k, got, v)
		}
	}
}
