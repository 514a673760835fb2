package pulse

import (
	"fmt"

	"mashcook/internal/tools"

	"github.com/spf13/cobra"
)

var Cmd = &cobra.Command{
	Use:   "pulse",
	Short: "Run the spice sync health check",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := &tools.Pulse{}
		out, err := p.Execute(cmd.Context(), "{}")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}
