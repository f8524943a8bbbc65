package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pdiddy/cinii-research/internal/export"
	"github.com/pdiddy/cinii-research/pkg/cinii"
)

var searchDescriptions = map[cinii.SearchType]string{
	cinii.SearchAll:           "Search all CiNii Research resources",
	cinii.SearchData:          "Search research data",
	cinii.SearchArticles:      "Search papers and articles",
	cinii.SearchBooks:         "Search books",
	cinii.SearchDissertations: "Search doctoral dissertations",
	cinii.SearchProjects:      "Search research projects",
}

func init() {
	for _, st := range cinii.SearchTypes {
		rootCmd.AddCommand(newSearchCmd(st))
	}
}

// newSearchCmd builds the subcommand for one search type.
func newSearchCmd(st cinii.SearchType) *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(st) + " [query words...]",
		Short: searchDescriptions[st],
		Long: searchDescriptions[st] + ` with format=json and print the result.

Positional arguments are joined into the free-text query when --query is not
given. Dates accept YYYY, YYYYMM or YYYY-MM; --pages accepts 5 or 10-20.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, st, args)
		},
	}
	addSearchFlags(cmd.Flags())
	cmd.Flags().Bool("json", false, "output the envelope as JSON")
	cmd.Flags().Bool("csl", false, "output items as a CSL-YAML bibliography")
	cmd.Flags().String("save", "", "also save the search and its result to this YAML file")
	return cmd
}

func runSearch(cmd *cobra.Command, st cinii.SearchType, args []string) error {
	opts, err := optionsFromFlags(cmd.Flags(), args)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	res, err := client.Search(ctx, st, opts)
	if err != nil {
		return err
	}
	logger.Info().
		Str("search_type", string(st)).
		Int("total_results", res.TotalResults).
		Int("returned", len(res.Items)).
		Msg("search complete")

	if path, _ := cmd.Flags().GetString("save"); path != "" {
		cfg, err := clientConfig()
		if err != nil {
			return err
		}
		q, err := cinii.BuildQuery(cinii.FormatJSON, opts, cfg.AppID)
		if err != nil {
			return err
		}
		if err := export.WriteSavedSearch(path, st, q, res); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Saved search to %s\n", path)
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	cslOutput, _ := cmd.Flags().GetBool("csl")
	switch {
	case jsonOutput:
		return export.FormatJSON(res, os.Stdout)
	case cslOutput:
		return export.FormatCSL(res, os.Stdout)
	default:
		export.FormatTable(res, os.Stdout)
		return nil
	}
}

// addSearchFlags registers one flag per search option.
func addSearchFlags(fs *pflag.FlagSet) {
	fs.String("query", "", "free-text query (q)")
	fs.String("lang", "", "response language: ja or en")
	fs.String("sort", "", "sort order: newest, oldest, relevance or citations")
	fs.Int("count", 0, "results per page (server range 1-200, default 20)")
	fs.Int("start", 0, "1-based index of the first result")
	fs.String("creator", "", "person name")
	fs.String("title", "", "title or project name")
	fs.Bool("exact-title", false, "match the title exactly (isFullTitle)")
	fs.String("from", "", "start year: YYYY or YYYYMM")
	fs.String("until", "", "end year: YYYY or YYYYMM")
	fs.String("dataset-format", "", "dataset file format")
	fs.Bool("full-text", false, "only items linking to full text")
	fs.String("researcher-id", "", "researcher id")
	fs.String("affiliation", "", "affiliated institution")
	fs.String("publication-title", "", "publication (journal) title")
	fs.String("issn", "", "ISSN")
	fs.String("volume", "", "volume")
	fs.String("number", "", "issue number")
	fs.String("pages", "", "page (5) or page range (10-20)")
	fs.String("isbn", "", "ISBN")
	fs.String("ncid", "", "NCID")
	fs.String("category", "", "classification")
	fs.String("description", "", "notes or abstract")
	fs.String("award-institution", "", "degree-granting university")
	fs.String("degree", "", "degree")
	fs.String("award-year", "", "degree year: YYYY or YYYYMM")
	fs.String("publisher", "", "publisher")
	fs.String("project-id", "", "research project number")
	fs.String("doi", "", "DOI")
	fs.StringSlice("data-source", nil, "data source types, e.g. KAKEN,JALC")
	fs.StringSlice("language-type", nil, "ISO 639-1 language codes, e.g. ja,en")
	fs.StringSlice("resource-type", nil, "resource types, e.g. \"journal article\",Dataset")
}

// optionsFromFlags converts parsed flags into SearchOptions. Booleans and
// integers are only set when the flag was given, so --exact-title=false is
// sent while an absent flag is not.
func optionsFromFlags(fs *pflag.FlagSet, args []string) (cinii.SearchOptions, error) {
	str := func(name string) string {
		v, _ := fs.GetString(name)
		return v
	}

	opts := cinii.SearchOptions{
		Lang:             cinii.Lang(str("lang")),
		Q:                str("query"),
		Creator:          str("creator"),
		Title:            str("title"),
		DatasetFormat:    str("dataset-format"),
		ResearcherID:     str("researcher-id"),
		Affiliation:      str("affiliation"),
		PublicationTitle: str("publication-title"),
		ISSN:             str("issn"),
		Volume:           str("volume"),
		Number:           str("number"),
		ISBN:             str("isbn"),
		NCID:             str("ncid"),
		Category:         str("category"),
		Description:      str("description"),
		AwardInstitution: str("award-institution"),
		Degree:           str("degree"),
		Publisher:        str("publisher"),
		ProjectID:        str("project-id"),
		DOI:              str("doi"),
	}
	if opts.Q == "" && len(args) > 0 {
		opts.Q = strings.Join(args, " ")
	}

	switch l := opts.Lang; l {
	case "", cinii.LangJapanese, cinii.LangEnglish:
	default:
		return opts, fmt.Errorf("unknown language %q (want ja or en)", l)
	}

	if s := str("sort"); s != "" {
		switch o := cinii.SortOrder(s); o {
		case cinii.SortNewest, cinii.SortOldest, cinii.SortRelevance, cinii.SortCitations:
			opts.SortOrder = o
		default:
			return opts, fmt.Errorf("unknown sort order %q (want newest, oldest, relevance or citations)", s)
		}
	}

	for _, name := range []string{"count", "start"} {
		if !fs.Changed(name) {
			continue
		}
		n, _ := fs.GetInt(name)
		if name == "count" {
			opts.Count = cinii.Int(n)
		} else {
			opts.Start = cinii.Int(n)
		}
	}
	if fs.Changed("exact-title") {
		b, _ := fs.GetBool("exact-title")
		opts.ExactTitleMatch = cinii.Bool(b)
	}
	if fs.Changed("full-text") {
		b, _ := fs.GetBool("full-text")
		opts.HasLinkToFullText = cinii.Bool(b)
	}

	dates := []struct {
		flag string
		dst  **cinii.CalendarPoint
	}{
		{"from", &opts.From},
		{"until", &opts.Until},
		{"award-year", &opts.AwardYear},
	}
	for _, d := range dates {
		s := str(d.flag)
		if s == "" {
			continue
		}
		p, err := cinii.ParseCalendarPoint(s)
		if err != nil {
			return opts, fmt.Errorf("--%s: %w", d.flag, err)
		}
		*d.dst = p
	}

	if s := str("pages"); s != "" {
		p, err := cinii.ParsePageSpec(s)
		if err != nil {
			return opts, fmt.Errorf("--pages: %w", err)
		}
		opts.Pages = p
	}

	sources, _ := fs.GetStringSlice("data-source")
	for _, s := range sources {
		opts.DataSourceType = append(opts.DataSourceType, cinii.DataSourceType(strings.ToUpper(s)))
	}
	opts.LanguageType, _ = fs.GetStringSlice("language-type")
	resources, _ := fs.GetStringSlice("resource-type")
	for _, r := range resources {
		opts.ResourceType = append(opts.ResourceType, cinii.ResourceType(r))
	}

	return opts, nil
}
