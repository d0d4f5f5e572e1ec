package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/TeneikaAskew/doha-sub000/pkg/sead4"
)

var guidelinesVerbose bool

// guidelinesCmd lists the 13 adjudicative guidelines.
var guidelinesCmd = &cobra.Command{
	Use:   "guidelines",
	Short: "List the SEAD-4 adjudicative guidelines",
	Long: `List the 13 SEAD-4 adjudicative guidelines with their codes and names.

Examples:
  # List codes and names
  doha guidelines

  # Include the security concern text
  doha guidelines --concerns`,
	RunE: runGuidelines,
}

func init() {
	guidelinesCmd.Flags().BoolVar(&guidelinesVerbose, "concerns", false, "include each guideline's security concern text")
}

func runGuidelines(cmd *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, code := range sead4.Codes() {
		g := sead4.Guidelines[code]
		if guidelinesVerbose {
			fmt.Fprintf(w, "%s\t%s\t%s\n", g.Code, g.Name, g.Concern)
		} else {
			fmt.Fprintf(w, "%s\t%s\n", g.Code, g.Name)
		}
	}
	return w.Flush()
}
