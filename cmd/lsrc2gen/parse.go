package main

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/doITmagic/lsrc2gen/internal/phpsig"
)

func newParseCmd(a *app) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Print the parsed function descriptors as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				source = a.cfg.Source.Path
			}
			if err := requireSource(source); err != nil {
				return err
			}
			data, err := os.ReadFile(source)
			if err != nil {
				return errors.Wrapf(err, "failed to read source %s", source)
			}

			res, err := phpsig.New(phpsig.WithLogger(a.log)).Parse(string(data))
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "", "PHP source file (default: source.path)")
	return cmd
}
