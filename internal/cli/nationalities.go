package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/randomuser"
	"github.com/wesleyorama2/randomuser/internal/output"
)

func newNationalitiesCmd(global *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "nationalities",
		Aliases: []string{"nats"},
		Short:   "List supported nationality codes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			f := output.NewTextFormatter(global.colorless(w))
			_, err := io.WriteString(w, f.FormatNationalities(randomuser.Nationalities()))
			return err
		},
	}
}
