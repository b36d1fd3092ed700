package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/doITmagic/lsrc2gen/internal/pipeline"
	"github.com/doITmagic/lsrc2gen/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	flags := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the client whenever the PHP source changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags.resolve(a)
			if err := requireSource(flags.source); err != nil {
				return err
			}
			p, err := pipeline.New(a.log, flags.template)
			if err != nil {
				return err
			}

			regenerate := func() {
				report, err := p.GenerateFile(flags.source, flags.output)
				if err != nil {
					// Keep watching: the next save may fix the source.
					a.log.Error("Regeneration failed", zap.Error(err))
					return
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Regenerated %s (%d methods)\n", report.Target, report.Functions)
			}
			regenerate()

			fw, err := watch.NewFileWatcher(flags.source, a.cfg.Watch.Debounce, regenerate, a.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", flags.source)
			return fw.Run(cmd.Context())
		},
	}

	flags.register(cmd)
	return cmd
}
