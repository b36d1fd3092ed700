package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/doITmagic/lsrc2gen/internal/pipeline"
)

// stdoutPath selects standard output as the generate destination.
const stdoutPath = "-"

type generateFlags struct {
	source   string
	output   string
	template string
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.source, "source", "s", "", "PHP source file (default: source.path)")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Client file, - for stdout (default: output.path)")
	cmd.Flags().StringVar(&f.template, "template", "", "Client template (default: output.template or embedded)")
}

func (f *generateFlags) resolve(a *app) {
	if f.source == "" {
		f.source = a.cfg.Source.Path
	}
	if f.output == "" {
		f.output = a.cfg.Output.Path
	}
	if f.template == "" {
		f.template = a.cfg.Output.Template
	}
}

func newGenerateCmd(a *app) *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the Python client from the PHP source",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.resolve(a)

			p, err := pipeline.New(a.log, flags.template)
			if err != nil {
				return err
			}
			if err := requireSource(flags.source); err != nil {
				return err
			}

			if flags.output == stdoutPath {
				data, err := os.ReadFile(flags.source)
				if err != nil {
					return errors.Wrapf(err, "failed to read source %s", flags.source)
				}
				out, err := p.Transform(string(data))
				if err != nil {
					return err
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out.Client)
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Generating %s from %s\n", flags.output, flags.source)
			report, err := p.GenerateFile(flags.source, flags.output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d methods (%d warnings)\n", report.Functions, len(report.Warnings))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func requireSource(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return errors.WithHint(
				errors.Newf("source %s does not exist", path),
				"run `lsrc2gen download` first or pass --source",
			)
		}
		return errors.Wrapf(err, "failed to stat %s", path)
	}
	return nil
}
