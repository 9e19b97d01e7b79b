package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/foomo/contentadmin/pkg/handler"
	"github.com/foomo/contentadmin/pkg/repo"
	"github.com/foomo/keel"
	"github.com/foomo/keel/healthz"
	"github.com/foomo/keel/net/http/middleware"
	"github.com/foomo/keel/service"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewServeCommand() *cobra.Command {
	v := newViper()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the admin api",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svr := keel.NewServer(
				keel.WithHTTPPrometheusService(servicePrometheusEnabledFlag(v)),
				keel.WithHTTPHealthzService(serviceHealthzEnabledFlag(v)),
				keel.WithPrometheusMeter(servicePrometheusEnabledFlag(v)),
				keel.WithOTLPGRPCTracer(otelEnabledFlag(v)),
				keel.WithHTTPPProfService(servicePProfEnabledFlag(v)),
			)

			l := svr.Logger()

			source, storage, err := createSource(cmd.Context(), v, l)
			if err != nil {
				return fmt.Errorf("failed to create source: %w", err)
			}

			r := repo.New(l.Named("inst.repo"), source)

			isLoadedHealtherFn := healthz.NewHealthzerFn(func(ctx context.Context) error {
				if !r.Loaded() {
					return errors.New("repo not loaded yet")
				}
				return nil
			})
			svr.AddStartupHealthzers(isLoadedHealtherFn)
			svr.AddReadinessHealthzers(isLoadedHealtherFn)

			if storage != nil {
				svr.AddClosers(func(ctx context.Context) error {
					return storage.Close()
				})
			}

			h := handler.NewHTTP(l.Named("inst.handler"), r, handler.WithBasePath(basePathFlag(v)))
			h = handler.Session(l, loginURLFlag(v))(h)
			if origins := corsAllowedOriginsFlag(v); len(origins) > 0 {
				h = handler.CORS(origins)(h)
			}

			svr.AddServices(
				service.NewGoRoutine(l.Named("go.repo"), "repo", func(ctx context.Context, l *zap.Logger) error {
					return r.Start(ctx)
				}),
				service.NewHTTP(l.Named("svc.http"), "http", addressFlag(v),
					h,
					middleware.Telemetry(),
					middleware.Logger(),
					middleware.Recover(),
				),
			)

			svr.Run()
			return nil
		},
	}

	flags := cmd.Flags()
	addAddressFlag(flags, v)
	addBasePathFlag(flags, v)
	addLoginURLFlag(flags, v)
	addCORSAllowedOriginsFlag(flags, v)
	addSourceFlags(flags, v)
	addOtelEnabledFlag(flags, v)
	addServiceHealthzEnabledFlag(flags, v)
	addServicePrometheusEnabledFlag(flags, v)
	addServicePProfEnabledFlag(flags, v)

	return cmd
}
