// Command publicip prints the address this host is seen from on the internet.
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"anchorpoint-it.com/infopanel/internal/config"
	"anchorpoint-it.com/infopanel/internal/logging"
	"anchorpoint-it.com/infopanel/internal/network"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	json    bool
	url     string
	timeout time.Duration
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "publicip",
		Short:         "Print this host's public IP address",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := run(cmd, opts)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "publicip:", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.json, "json", false, `Print {"ip": "..."} instead of the bare address`)
	flags.StringVar(&opts.url, "url", "", "Lookup endpoint (default PUBLIC_IP_URL)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Request timeout (default PUBLIC_IP_TIMEOUT, 0 for none)")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if opts.url != "" {
		cfg.Lookup.URL = opts.url
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Lookup.Timeout = opts.timeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewTo(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Sync()

	resolver := network.NewResolver(cfg.Lookup.URL,
		network.WithHTTPClient(&http.Client{Timeout: cfg.Lookup.Timeout}),
		network.WithLogger(logger),
	)

	addr, err := resolver.Resolve(cmd.Context()).Value()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		return json.NewEncoder(out).Encode(map[string]string{"ip": addr})
	}
	_, err = fmt.Fprintln(out, addr)
	return err
}
