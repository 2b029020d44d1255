package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/born-ml/activations/internal/nn"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available functions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range nn.Names() {
				kind, _ := nn.KindOf(name)
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", name, kind); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
