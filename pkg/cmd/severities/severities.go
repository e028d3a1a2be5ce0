package severities

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/security-tools/burp-control/internal/severity"
)

func NewCmdSeverities() *cobra.Command {
	return &cobra.Command{
		Use:   "severities",
		Short: "List the severity levels accepted by --severity-threshold.",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "RANK\tLEVEL")
			for _, level := range severity.Levels {
				fmt.Fprintf(w, "%d\t%s\n", level.Rank(), level)
			}
			w.Flush()
		},
	}
}
