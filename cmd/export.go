package cmd

import (
	"context"
	"fmt"

	"github.com/foomo/contentadmin/pkg/repo"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func NewExportCommand() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Load all collections and write their clean documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			l := zap.L().Named("export")
			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			source, sourceStorage, err := createSource(ctx, v, l)
			if err != nil {
				return fmt.Errorf("failed to create source: %w", err)
			}
			if sourceStorage != nil {
				defer func() {
					err = multierr.Append(err, sourceStorage.Close())
				}()
			}
			output, err := createOutputStorage(ctx, v, l)
			if err != nil {
				return fmt.Errorf("failed to create output: %w", err)
			}
			defer func() {
				err = multierr.Append(err, output.Close())
			}()

			r := repo.New(l, source)
			go func() {
				_ = r.DispatchRoutine(ctx)
			}()

			resp := r.Load(ctx)
			if !resp.Success {
				return fmt.Errorf("failed to load collections: %s", resp.Notification.Message)
			}
			for collection, reason := range resp.Fallbacks {
				l.Warn("collection fell back to its default", zap.String("collection", string(collection)), zap.String("reason", reason))
			}

			downloads, err := r.ExportAll(ctx, output)
			if err != nil {
				return err
			}
			for _, download := range downloads {
				l.Info("written", zap.String("file", download.Filename), zap.Int("bytes", len(download.Data)))
			}
			return nil
		},
	}

	flags := cmd.Flags()
	addSourceFlags(flags, v)
	addOutputFlags(flags, v)

	return cmd
}
