package cli

import (
	"fmt"

	"github.com/kleinwareio/liketype/logging"
	"github.com/spf13/cobra"
)

func newRenderCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Render a list of values",
		Long: `Reads a list of values from file (or stdin when file is omitted or "-"),
wraps it in a sequence named --type and prints it with --strategy.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			path := stdinName
			if len(args) == 1 {
				path = args[0]
			}

			seq, err := s.readValues(s.newKind(), path, cmd.InOrStdin())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), seq.String())
			s.logger.Info(s.ctx, "rendered", logging.String("path", path), logging.Int("count", seq.Count()))
			return nil
		},
	}
}
