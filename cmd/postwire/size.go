package main

import (
	"fmt"
	"strconv"

	"github.com/kungfusheep/postwire"
	"github.com/spf13/cobra"
)

// newSizeCmd exposes postwire.VarintLen so a caller can size a buffer
// before encoding, without pulling the core package into a script.
func newSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size <value>",
		Short: "Report how many bytes a varint-encoded unsigned value occupies",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse value: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), postwire.VarintLen(v))
			return nil
		},
	}
}
