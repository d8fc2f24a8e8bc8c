// cmd/game/headless.go
package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"

	"go-bowling/internal/app"
	"go-bowling/internal/config"

	"github.com/spf13/cobra"
)

var (
	headlessDuration float64
	headlessStep     float64
)

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run one level without a window and print a report",
	Long: `Presses Start and steps the simulation at a fixed rate until every
pin has fallen off the lane or --duration seconds of game time pass.

Examples:
  game headless --seed 42
  game headless --duration 120 --step 0.01`,
	PreRun: func(cmd *cobra.Command, args []string) {
		flags.SeedSet = cmd.Flags().Changed("seed")
		flags.Mute = true
	},
	RunE: runHeadless,
}

func init() {
	headlessCmd.Flags().Float64Var(&headlessDuration, "duration", 60, "Game time limit in seconds (0 = until cleared)")
	headlessCmd.Flags().Float64Var(&headlessStep, "step", 1.0/config.TargetFPS, "Fixed step in seconds")
}

func runHeadless(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, closeGame, err := app.Bootstrap(flags)
	if err != nil {
		return err
	}
	defer closeGame()

	rep, err := app.RunHeadless(ctx, g, app.HeadlessOptions{Step: headlessStep, Duration: headlessDuration})
	fmt.Fprintln(cmd.OutOrStdout(), rep.Render())
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
