package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hrygo/timesense/internal/profile"
	"github.com/hrygo/timesense/server"
	"github.com/hrygo/timesense/server/timezone"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "timesense",
	Short: "中文模糊时间表达式解析服务 (Chinese fuzzy time expression parser)",
	RunE: func(_ *cobra.Command, _ []string) error {
		p := &profile.Profile{
			Mode:            viper.GetString("mode"),
			Addr:            viper.GetString("addr"),
			Port:            viper.GetInt("port"),
			DefaultTimezone: viper.GetString("timezone"),
			RateLimitRPS:    viper.GetInt("rate-limit-rps"),
			RateLimitBurst:  viper.GetInt("rate-limit-burst"),
			Version:         version,
		}
		if err := p.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		setupLogger(p)

		s := server.NewServer(p)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			errCh <- s.Start()
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			s.Shutdown(shutdownCtx)
			return nil
		}
	},
}

func setupLogger(p *profile.Profile) {
	level := slog.LevelInfo
	if p.IsDev() {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if p.IsDev() {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

func init() {
	rootCmd.PersistentFlags().String("mode", "dev", `mode of the server, can be "prod", "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "binding address for the server")
	rootCmd.PersistentFlags().Int("port", 8230, "binding port for the server")
	rootCmd.PersistentFlags().String("timezone", timezone.TimezoneAsiaShanghai, "default timezone for requests without one")
	rootCmd.PersistentFlags().Int("rate-limit-rps", 10, "per-client requests per second on the parse endpoint")
	rootCmd.PersistentFlags().Int("rate-limit-burst", 20, "per-client burst on the parse endpoint")

	for _, flag := range []string{"mode", "addr", "port", "timezone", "rate-limit-rps", "rate-limit-burst"} {
		if err := viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			panic(err)
		}
	}

	viper.SetEnvPrefix("timesense")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
