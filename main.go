package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"masqr-license/src/config"
	"masqr-license/src/license"
	"masqr-license/src/server"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Init()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	lvl, _ := cfg.Level()
	logger := server.NewLogger(lvl)
	issuer := license.NewIssuer(config.EnvProvider{})

	if len(os.Args) < 2 {
		runServer(cfg, logger, issuer)
		return
	}

	switch strings.ToLower(os.Args[1]) {
	case "server":
		runServer(cfg, logger, issuer)
	case "license":
		os.Exit(issueLicense(issuer, os.Args[2:], os.Stdout, os.Stderr))
	default:
		fmt.Println("unsupported command")
		os.Exit(2)
	}
}

// issueLicense runs the license subcommand and returns the process exit code.
func issueLicense(issuer *license.Issuer, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "usage: masqr license <psk>")
		return 2
	}

	grant, err := issuer.Issue(args[0])
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	if err := json.NewEncoder(stdout).Encode(grant); err != nil {
		fmt.Fprintf(stderr, "failed to write license: %v\n", err)
		return 1
	}
	return 0
}

func runServer(cfg config.Config, logger zerolog.Logger, issuer *license.Issuer) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.NewServe(cfg, logger, issuer).Run(ctx); err != nil {
		logger.Fatal().Err(err).Msg("web server stopped")
	}
}
