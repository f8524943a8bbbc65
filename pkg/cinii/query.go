// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package cinii

import (
	"net/url"
	"strconv"
	"strings"
)

// SearchOptions is the caller-facing set of search filters. The zero value
// is a valid, empty search. Empty strings, nil pointers and empty slices
// are not sent.
type SearchOptions struct {
	// Lang selects the response metadata language (server default ja).
	Lang Lang

	// SortOrder defaults to relevance on the server when empty.
	SortOrder SortOrder

	// Count is the page size. The server clamps it to 1..200 and treats
	// values <= 0 as 20; it is sent unchanged.
	Count *int

	// Start is the 1-based offset of the first result.
	Start *int

	Q       string
	Creator string

	From  *CalendarPoint
	Until *CalendarPoint

	DatasetFormat     string
	HasLinkToFullText *bool

	Title string
	// ExactTitleMatch is sent as isFullTitle. An explicit false is sent.
	ExactTitleMatch *bool

	ResearcherID     string
	Affiliation      string
	PublicationTitle string
	ISSN             string
	Volume           string
	Number           string
	Pages            PageSpec
	ISBN             string
	NCID             string
	Category         string
	Description      string
	AwardInstitution string
	Degree           string
	AwardYear        *CalendarPoint
	Publisher        string
	ProjectID        string
	DOI              string

	DataSourceType []DataSourceType
	// LanguageType holds ISO 639-1 codes, e.g. {"ja", "en"}.
	LanguageType []string
	ResourceType []ResourceType
}

// Bool returns a pointer to b for optional boolean options.
func Bool(b bool) *bool { return &b }

// Int returns a pointer to n for optional integer options.
func Int(n int) *int { return &n }

// WireQuery is the flat parameter set sent to the server. Every key present
// has a value; absent options have no key.
type WireQuery map[string]string

// Values converts q to url.Values with one value per key.
func (q WireQuery) Values() url.Values {
	v := make(url.Values, len(q))
	for k, s := range q {
		v.Set(k, s)
	}
	return v
}

// Encode returns the URL-encoded query string, sorted by key.
func (q WireQuery) Encode() string {
	return q.Values().Encode()
}

// BuildQuery normalizes opts into the wire parameters for one request. It
// performs no I/O and does not validate appID. The only failure is a date
// option that is not a valid calendar point (ErrUnrecognizedDateType).
func BuildQuery(format Format, opts SearchOptions, appID string) (WireQuery, error) {
	q := WireQuery{
		"appId":  appID,
		"format": string(format),
	}

	setString(q, "lang", string(opts.Lang))
	if code, ok := opts.SortOrder.code(); ok {
		q["sortorder"] = strconv.Itoa(code)
	}
	setInt(q, "count", opts.Count)
	setInt(q, "start", opts.Start)

	setString(q, "q", opts.Q)
	setString(q, "creator", opts.Creator)

	dates := []struct {
		key string
		p   *CalendarPoint
	}{
		{"from", opts.From},
		{"until", opts.Until},
		{"awardYear", opts.AwardYear},
	}
	for _, d := range dates {
		s, ok, err := formatDate(d.p)
		if err != nil {
			return nil, err
		}
		if ok {
			q[d.key] = s
		}
	}

	setString(q, "datasetFormat", opts.DatasetFormat)
	setBool(q, "hasLinkToFullText", opts.HasLinkToFullText)
	setString(q, "title", opts.Title)
	setBool(q, "isFullTitle", opts.ExactTitleMatch)
	setString(q, "researcherId", opts.ResearcherID)
	setString(q, "affiliation", opts.Affiliation)
	setString(q, "publicationTitle", opts.PublicationTitle)
	setString(q, "issn", opts.ISSN)
	setString(q, "volume", opts.Volume)
	setString(q, "number", opts.Number)
	if opts.Pages != nil {
		q["pages"] = opts.Pages.wire()
	}
	setString(q, "isbn", opts.ISBN)
	setString(q, "ncid", opts.NCID)
	setString(q, "category", opts.Category)
	setString(q, "description", opts.Description)
	setString(q, "awardInstitution", opts.AwardInstitution)
	setString(q, "degree", opts.Degree)
	setString(q, "publisher", opts.Publisher)
	setString(q, "projectId", opts.ProjectID)
	setString(q, "doi", opts.DOI)

	setString(q, "datasourceType", join(opts.DataSourceType))
	setString(q, "languageType", join(opts.LanguageType))
	setString(q, "resourceType", join(opts.ResourceType))

	return q, nil
}

func setString(q WireQuery, key, v string) {
	if v != "" {
		q[key] = v
	}
}

func setInt(q WireQuery, key string, v *int) {
	if v != nil {
		q[key] = strconv.Itoa(*v)
	}
}

func setBool(q WireQuery, key string, v *bool) {
	if v != nil {
		q[key] = strconv.FormatBool(*v)
	}
}

// join comma-joins values in input order without deduplication.
func join[T ~string](vs []T) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = string(v)
	}
	return strings.Join(parts, ",")
}
