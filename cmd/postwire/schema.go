package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/kungfusheep/postwire"
	"github.com/kungfusheep/postwire/schema"
	"github.com/spf13/cobra"
)

// newSchemaCmd groups tools over a wire-encoded schema.OwnedNamedType
// file (as written by schema.Encode) — printing its Rust-flavored type
// signature and computing its namespaced structural hash, without needing
// a Go type to exist for whatever the schema describes.
func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Inspect an encoded schema file",
	}
	cmd.AddCommand(newSchemaPrintCmd(), newSchemaHashCmd())
	return cmd
}

func readSchemaFile(path string) (*schema.OwnedNamedType, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema file: %w", err)
	}
	d := postwire.NewDeserializer(postwire.NewSliceSource(data))
	nt, err := schema.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("decode schema: %w", err)
	}
	return nt, nil
}

func newSchemaPrintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "print <schema-file>",
		Short: "Pretty-print an encoded schema's type signature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nt, err := readSchemaFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), schema.Pretty(nt))
			return nil
		},
	}
}

func newSchemaHashCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "hash <schema-file>",
		Short: "Print the namespaced structural hash of an encoded schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nt, err := readSchemaFile(args[0])
			if err != nil {
				return err
			}
			sum := schema.Hash(path, nt)
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(sum[:]))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "namespace path to hash the schema under")
	return cmd
}
