package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/Odongfelix/jweb/internal/core/domain"
	portssvc "github.com/Odongfelix/jweb/internal/core/ports/services"
	"github.com/Odongfelix/jweb/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Show or save the exchange rate",
}

var rateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the rate configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(cmd, func(ctx context.Context, cfg *config.Config, svc *portssvc.ServiceContainer) error {
			state, err := svc.ExchangeRate.Load(ctx)
			if err != nil {
				return err
			}
			printRateState(cmd, cfg, state)
			return nil
		})
	},
}

var rateSaveCmd = &cobra.Command{
	Use:   "save <rate>",
	Short: "Save a manual rate for today",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, err := decimal.NewFromString(args[0])
		if err != nil {
			return fmt.Errorf("invalid rate %q: %w", args[0], err)
		}
		return withServices(cmd, func(ctx context.Context, cfg *config.Config, svc *portssvc.ServiceContainer) error {
			state, err := svc.ExchangeRate.SaveManualRate(ctx, rate)
			if err != nil {
				return err
			}
			printRateState(cmd, cfg, state)
			return nil
		})
	},
}

var rateLiveCmd = &cobra.Command{
	Use:   "live",
	Short: "Fetch the live rate, optionally saving it for today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		save, _ := cmd.Flags().GetBool("save")
		return withServices(cmd, func(ctx context.Context, cfg *config.Config, svc *portssvc.ServiceContainer) error {
			var (
				state *domain.RateConfigState
				err   error
			)
			if save {
				state, err = svc.ExchangeRate.SaveLiveRate(ctx)
			} else {
				state, err = svc.ExchangeRate.FetchLiveRate(ctx)
			}
			if err != nil {
				return err
			}
			printRateState(cmd, cfg, state)
			return nil
		})
	},
}

func init() {
	rateLiveCmd.Flags().Bool("save", false, "save the fetched rate as today's rate")

	rateCmd.AddCommand(rateShowCmd)
	rateCmd.AddCommand(rateSaveCmd)
	rateCmd.AddCommand(rateLiveCmd)
}

func printRateState(cmd *cobra.Command, cfg *config.Config, state *domain.RateConfigState) {
	out := cmd.OutOrStdout()
	mode := "manual"
	if state.UseLiveRates {
		mode = "live"
	}
	pair := cfg.BaseCurrency + "/" + cfg.LocalCurrency

	fmt.Fprintf(out, "Mode:          %s\n", mode)
	if state.SavedRate != nil {
		fmt.Fprintf(out, "Saved rate:    %s %s (%s)\n", state.SavedRate.String(), pair, state.SavedRateSource)
	} else {
		fmt.Fprintf(out, "Saved rate:    (none)\n")
	}
	if state.LastUpdated != nil {
		fmt.Fprintf(out, "Last updated:  %s\n", state.LastUpdated.In(cfg.Location).Format(time.DateTime))
	}
	if state.LiveRate != nil {
		fmt.Fprintf(out, "Live rate:     %s %s\n", state.LiveRate.String(), pair)
	}
	if state.FetchError != "" {
		fmt.Fprintf(out, "Live rate:     %s\n", state.FetchError)
	}
	fmt.Fprintf(out, "Can save:      %t\n", state.CanSaveRate)
}
