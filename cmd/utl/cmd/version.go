package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/utl/errors"
	"github.com/kbukum/utl/version"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			w := cmd.OutOrStdout()
			switch a.cfg.Strings.Output {
			case "json":
				return writeJSON(w, info)
			case "yaml":
				return writeYAML(w, info)
			}
			if _, err := fmt.Fprintln(w, info.String()); err != nil {
				return errors.IO("write output", err)
			}
			return nil
		},
	}
}
