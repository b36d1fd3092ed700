package main

import (
	"github.com/spf13/cobra"

	"github.com/doITmagic/lsrc2gen/internal/mcpserver"
	"github.com/doITmagic/lsrc2gen/internal/pipeline"
)

func newServeCmd(a *app) *cobra.Command {
	var template string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an MCP server on stdio",
		Long: `Run a Model Context Protocol server on stdin/stdout exposing the
parse_php_signatures and generate_python_client tools. Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if template == "" {
				template = a.cfg.Output.Template
			}
			p, err := pipeline.New(a.log, template)
			if err != nil {
				return err
			}
			server := mcpserver.New(p, a.log, version)
			a.log.Info("MCP server started (stdio mode)")
			return mcpserver.Serve(cmd.Context(), server)
		},
	}

	cmd.Flags().StringVar(&template, "template", "", "Client template (default: output.template or embedded)")
	return cmd
}
