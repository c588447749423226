package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/docfab/docgen/internal/domain/counter"
	"github.com/spf13/cobra"
)

var countersCmd = &cobra.Command{
	Use:   "counters",
	Short: "Show the current value of every sequence counter",
	RunE:  runCounters,
}

func init() {
	rootCmd.AddCommand(countersCmd)
}

func runCounters(cmd *cobra.Command, args []string) error {
	app, err := openApp()
	if err != nil {
		return err
	}
	defer app.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render(app.loc.T("counter", "counters")))

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, name := range counter.KnownNames {
		value, err := app.alloc.Peek(cmd.Context(), name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\n", name, value)
	}
	return w.Flush()
}
