package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPreviewCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "preview <file>",
		Short: "Print the decorated preview fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInputSource(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			svc, err := opts.documentService()
			if err != nil {
				return err
			}
			resp, err := svc.Preview(cmd.Context(), text)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.HTML)
			return err
		},
	}
}
