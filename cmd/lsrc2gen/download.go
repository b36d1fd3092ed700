package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/doITmagic/lsrc2gen/internal/fetch"
	"github.com/doITmagic/lsrc2gen/internal/healthcheck"
)

func newDownloadCmd(a *app) *cobra.Command {
	var (
		url           string
		output        string
		skipPreflight bool
	)

	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the RemoteControl PHP handler",
		Long: `Download remotecontrol_handle.php to a local file.

The default source is the LimeSurvey master branch on GitHub. Transient
failures are retried with exponential backoff (fetch.max_retries).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				url = a.cfg.Source.URL
			}
			if output == "" {
				output = a.cfg.Source.Path
			}
			out := cmd.OutOrStdout()

			if a.cfg.Fetch.Preflight && !skipPreflight {
				check := healthcheck.CheckSource(cmd.Context(), url)
				if !check.OK() {
					fmt.Fprint(cmd.ErrOrStderr(), healthcheck.FormatResults([]healthcheck.CheckResult{check}))
					fmt.Fprint(cmd.ErrOrStderr(), healthcheck.GetRemediation([]healthcheck.CheckResult{check}))
					return errors.Newf("source %s is not reachable", url)
				}
				a.log.Debug(check.Message)
			}

			fmt.Fprintf(out, "Downloading %s\n", url)
			f := &fetch.Fetcher{
				URL:        url,
				Dest:       output,
				Timeout:    a.cfg.Fetch.Timeout,
				MaxRetries: a.cfg.Fetch.MaxRetries,
				RetryDelay: a.cfg.Fetch.RetryDelay,
				Logger:     a.log,
			}
			res, err := f.Fetch(cmd.Context())
			if err != nil {
				return errors.WithHint(err, "use --url or LSRC2_SOURCE_URL to point at a mirror")
			}
			fmt.Fprintf(out, "Saved %d bytes to %s\n", res.Bytes, output)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "Source URL (default: source.url)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (default: source.path)")
	cmd.Flags().BoolVar(&skipPreflight, "skip-preflight", false, "Do not probe the URL before downloading")
	return cmd
}
