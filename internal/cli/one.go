package cli

import (
	"github.com/spf13/cobra"

	"github.com/wesleyorama2/randomuser"
)

func newOneCmd(global *globalOptions) *cobra.Command {
	var (
		filters filterOptions
		field   string
	)

	cmd := &cobra.Command{
		Use:   "one",
		Short: "Fetch exactly one user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := filters.apply(cmd, global, global.generator().Get())
			if err != nil {
				return err
			}

			user, err := b.FetchOne(cmd.Context())
			if err != nil {
				return err
			}

			return printUsers(cmd.OutOrStdout(), global, []randomuser.User{user}, nil, field)
		},
	}

	filters.register(cmd)
	cmd.Flags().StringVar(&field, "field", "", "print one field, as a path such as name.first")

	return cmd
}
