package cli

import (
	"fmt"

	"github.com/kleinwareio/liketype/logging"
	"github.com/spf13/cobra"
)

func newCompareCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two lists of values",
		Long: `Reads two lists, wraps both in the sequence type named --type and reports
whether they are equal: same elements in the same order.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			kind := s.newKind()
			a, err := s.readValues(kind, args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			b, err := s.readValues(kind, args[1], cmd.InOrStdin())
			if err != nil {
				return err
			}

			verdict := "not equal"
			if a.Equal(b) {
				verdict = "equal"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, verdict)
			fmt.Fprintf(out, "%s %016x\n", a.String(), a.Hash())
			fmt.Fprintf(out, "%s %016x\n", b.String(), b.Hash())

			s.logger.Info(s.ctx, "compared",
				logging.String("a", args[0]),
				logging.String("b", args[1]),
				logging.Bool("equal", a.Equal(b)))
			return nil
		},
	}
}
