package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cinii-research/pkg/cinii"
)

var getCmd = &cobra.Command{
	Use:   "get <search-type> [query words...]",
	Short: "Fetch a raw OpenSearch response in any format",
	Long: `Get sends one request with the chosen --format (html, rss, atom or json) and
writes the response body to stdout unchanged. The HTTP status is printed to
stderr; a non-success status is not treated as a failure.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

func init() {
	addSearchFlags(getCmd.Flags())
	getCmd.Flags().String("format", string(cinii.FormatAtom), "response format: html, rss, atom or json")
	getCmd.Flags().Bool("print-url", false, "print the request URL (app id redacted) and exit")

	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	st, err := cinii.ParseSearchType(args[0])
	if err != nil {
		return err
	}
	formatFlag, _ := cmd.Flags().GetString("format")
	format, err := cinii.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	opts, err := optionsFromFlags(cmd.Flags(), args[1:])
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	if printURL, _ := cmd.Flags().GetBool("print-url"); printURL {
		u, err := client.URL(st, format, opts)
		if err != nil {
			return err
		}
		fmt.Println(cinii.RedactURL(u))
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	resp, err := client.Get(ctx, st, format, opts)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	fmt.Fprintf(os.Stderr, "HTTP %s\n", resp.Status)
	if _, err := io.Copy(os.Stdout, resp.Body); err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	return nil
}
