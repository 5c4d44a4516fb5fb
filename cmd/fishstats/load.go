package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ougirez/fishstats/internal/pkg/loader"
	"github.com/spf13/cobra"
)

func getLoadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load the datasets and print what was kept",
		Long: `Reads the three source files exactly as "serve" would and prints, per file,
how many rows were read, kept, dropped for being outside the macro-regions,
and skipped as malformed. Useful for checking new source files.`,
		RunE: runLoad,
	}

	cmd.Flags().String("data", "", "dataset directory, overrides data.base_path")

	return cmd
}

func runLoad(cmd *cobra.Command, _ []string) error {
	_, report, err := loader.LoadAll(cmd.Context(), cfg.Data)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DATASET\tROWS\tKEPT\tFILTERED\tMALFORMED\tPATH")
	for _, f := range report.Files {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			f.Name,
			humanize.Comma(int64(f.Total)),
			humanize.Comma(int64(f.Kept)),
			humanize.Comma(int64(f.Filtered)),
			humanize.Comma(int64(f.Malformed)),
			f.Path,
		)
	}
	if err = w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s records loaded in %s\n",
		humanize.Comma(int64(report.Kept())), report.Duration.Round(time.Millisecond))
	return nil
}
