// Package commands implements the pricing CLI, an offline view of the same
// price formula and courier rules the checkout API uses.
package commands

import (
	"github.com/spf13/cobra"

	"newspaper_checkout/internal/domain/pricing"
	"newspaper_checkout/internal/infrastructure/config"
	"newspaper_checkout/internal/usecase"
)

var (
	originPostalCode string
	courierMaxKm     float64

	quotes usecase.IQuoteUseCase
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	defaults := config.GetDefaultConfig()
	if cfg, err := config.Load(); err == nil {
		defaults = cfg
	}

	root := &cobra.Command{
		Use:          "pricing",
		Short:        "Newspaper subscription price and courier eligibility calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			quotes = usecase.NewQuoteUseCase(pricing.NewEligibilityPolicy(originPostalCode, courierMaxKm))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&originPostalCode, "origin", defaults.Eligibility.OriginPostalCode, "postal code of the publishing house")
	root.PersistentFlags().Float64Var(&courierMaxKm, "courier-radius", defaults.Eligibility.CourierMaxDistanceKm, "courier delivery radius in km")

	root.AddCommand(quoteCmd(), eligibilityCmd())
	return root
}
