package main

import (
	"fmt"
	"math/big"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecarith/internal/config"
	"github.com/smallyu/go-ecarith/pkg/lenstra"
)

func getFactorCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factor N",
		Short: "Find a non-trivial factor of N with Lenstra's elliptic curve method",
		Args:  cobra.ExactArgs(1),
		RunE:  runFactor,
	}
	cmd.Flags().String("config", "", "path to a config file")
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func runFactor(cmd *cobra.Command, args []string) error {
	n, err := parseBig(args[0])
	if err != nil {
		return err
	}

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}
	if err := cfg.ApplyLogLevel(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	d, err := lenstra.New(cfg.FactorizerOptions()...).Factor(ctx, n)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"n":      n.String(),
		"factor": d.String(),
	}).Debug("factor: done")
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s * %s\n", n, d, new(big.Int).Quo(n, d))
	return nil
}
