package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/studioutils/studioutils/internal/config"
	"github.com/studioutils/studioutils/internal/dashboard"
	"github.com/studioutils/studioutils/internal/metrics"
	"github.com/studioutils/studioutils/internal/server"
)

var servePrint bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard JSON API with health and metrics endpoints",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (default from listen_addr)")
	serveCmd.Flags().BoolVar(&servePrint, "print", false, "Print launch targets instead of opening them")
	_ = viper.BindPFlag(config.KeyListenAddr, serveCmd.Flags().Lookup("addr"))
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	ns, err := dashboard.Namespace(buildVersion)
	if err != nil {
		return fmt.Errorf("composing exports: %w", err)
	}

	promReg := prometheus.NewRegistry()
	promReg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	rec := metrics.NewPrometheus(promReg)

	srv := server.New(server.Options{
		Addr:      config.Get(config.KeyListenAddr),
		Registry:  reg,
		Launcher:  newLauncher(reg, cmd.OutOrStdout(), servePrint, rec),
		Namespace: ns,
		Gatherer:  promReg,
		Metrics:   rec,
		Logger:    logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	fmt.Fprintf(cmd.ErrOrStderr(), "Listening on http://%s\n", config.Get(config.KeyListenAddr))
	return srv.Run(ctx)
}
