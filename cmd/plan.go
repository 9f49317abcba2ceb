package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jmartal/chargeplan/app"
	"github.com/jmartal/chargeplan/config"
	"github.com/jmartal/chargeplan/infra/logger"
)

var tripPath string

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute a charging plan for a trip file",
	Long: `Reads a trip request (waypoints, starting charge percent, vehicle
profile) from a JSON file and prints the resulting charging plan as JSON.`,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&tripPath, "trip", "t", "trip.json", "trip request file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	data, err := os.ReadFile(tripPath)
	if err != nil {
		return fmt.Errorf("read trip file: %w", err)
	}
	var req app.TripRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("decode trip file: %w", err)
	}

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("plan-command").Errorf("service close: %v", err)
		}
	}()

	plan, err := svc.Plan(ctx, req)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("encode plan: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
