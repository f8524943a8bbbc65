package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cinii-research/internal/export"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Display a saved search without querying the API",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	showCmd.Flags().Bool("json", false, "output the saved envelope as JSON")
	showCmd.Flags().Bool("csl", false, "output saved items as a CSL-YAML bibliography")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	ss, err := export.ReadSavedSearch(args[0])
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	cslOutput, _ := cmd.Flags().GetBool("csl")
	switch {
	case jsonOutput:
		return export.FormatJSON(ss.Result, os.Stdout)
	case cslOutput:
		return export.FormatCSL(ss.Result, os.Stdout)
	}

	keys := make([]string, 0, len(ss.Search.Params))
	for k := range ss.Search.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Printf("Search: %s (saved %s)\n", ss.Search.SearchType, ss.Summary.Timestamp.Format("2006-01-02 15:04"))
	for _, k := range keys {
		fmt.Printf("  %s=%s\n", k, ss.Search.Params[k])
	}
	fmt.Println()
	export.FormatTable(ss.Result, os.Stdout)
	return nil
}
