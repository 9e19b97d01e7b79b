package cmd

import (
	"context"
	"fmt"

	"github.com/foomo/contentadmin/client"
	"github.com/foomo/contentadmin/content"
	keelhttp "github.com/foomo/keel/net/http"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func NewPullCommand() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "pull <server-url>",
		Short: "Download the current exports from a running admin api",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var comps []string
			if len(args) == 0 {
				comps = cobra.AppendActiveHelp(comps, "You must specify the URL of the admin api, including its base path")
			} else {
				comps = cobra.AppendActiveHelp(comps, "This command does not take any more arguments")
			}
			return comps, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			l := zap.L().Named("pull")
			ctx, cancel := context.WithTimeout(cmd.Context(), repositoryTimeoutFlag(v))
			defer cancel()

			c, err := client.NewHTTPClient(args[0], keelhttp.NewHTTPClient(
				keelhttp.HTTPClientWithTimeout(repositoryTimeoutFlag(v)),
			))
			if err != nil {
				return err
			}
			defer c.ShutDown()

			output, err := createOutputStorage(ctx, v, l)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			defer func() {
				err = multierr.Append(err, output.Close())
			}()

			for _, collection := range content.Collections {
				download, err := c.Export(ctx, collection)
				if err != nil {
					return fmt.Errorf("failed to export %s: %w", collection, err)
				}
				if err := output.Write(ctx, download.Filename, download.Data); err != nil {
					return fmt.Errorf("failed to write %s: %w", download.Filename, err)
				}
				l.Info(download.Message, zap.String("file", download.Filename))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	addOutputFlags(flags, v)
	addRepositoryTimeoutFlag(flags, v)

	return cmd
}
