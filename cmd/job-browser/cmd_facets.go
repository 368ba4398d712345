package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ruminaider/job-browser/internal/browser"
	"github.com/ruminaider/job-browser/internal/render"
)

var facetsCmd = &cobra.Command{
	Use:   "facets",
	Short: "Show the filter options found in the listings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp(cmd)
		if err != nil {
			return err
		}
		defer a.stop()

		s, err := loadSession(cmd.Context(), a)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		controls := s.Controls()
		if !controls.Populated {
			fmt.Fprintln(out, browser.MessageNoListings)
			return nil
		}

		fmt.Fprintf(out, "%d listings from %s\n\n", s.Counts().Total, a.source)
		printFacet(out, "ROLES", controls.Roles[1:])
		printFacet(out, "TECHNOLOGIES", controls.Technologies)
		printFacet(out, "EXPERIENCE", controls.Experience[1:])
		fmt.Fprintln(out, "COMPENSATION")
		fmt.Fprintf(out, "  %s to %s\n", render.FormatCTC(controls.CTCBounds.Min), render.FormatCTC(controls.CTCBounds.Max))
		return nil
	},
}

func printFacet(out io.Writer, title string, values []string) {
	fmt.Fprintln(out, title)
	fmt.Fprintf(out, "  %s\n\n", strings.Join(values, ", "))
}
