package commands

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"newspaper_checkout/internal/domain/entities"
	"newspaper_checkout/internal/domain/pricing"
)

func quoteCmd() *cobra.Command {
	var (
		frequency string
		distance  float64
		billing   string
		delivery  string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print monthly and annual prices for a distance",
		RunE: func(cmd *cobra.Command, args []string) error {
			preview, err := quotes.Preview(distance, entities.BillingCycle(billing), entities.DeliveryMethod(delivery))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "distance: %.1f km, billing: %s, delivery: %s\n",
				preview.DistanceKm, preview.BillingCycle, pricing.DeliveryMethodLabel(preview.DeliveryMethod))

			freqs := make([]entities.Frequency, 0, len(preview.Quotes))
			for f := range preview.Quotes {
				if frequency != "" && string(f) != frequency {
					continue
				}
				freqs = append(freqs, f)
			}
			if len(freqs) == 0 {
				return errors.Newf("unknown frequency %q", frequency)
			}
			sort.Slice(freqs, func(i, j int) bool { return freqs[i] < freqs[j] })

			for _, f := range freqs {
				q := preview.Quotes[f]
				fmt.Fprintf(out, "%s: %s monthly, %s annually", f, pricing.FormatPrice(q.MonthlyPrice), pricing.FormatPrice(q.AnnualPrice))
				if q.ShowSavings {
					fmt.Fprintf(out, " (save %s)", pricing.FormatPrice(q.AnnualSavings))
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&frequency, "frequency", "", "Daily or Weekend (default both)")
	cmd.Flags().Float64Var(&distance, "distance", 0, "distance from the publishing house in km")
	cmd.Flags().StringVar(&billing, "billing", string(entities.BillingCycleMonthly), "Monthly or Annual")
	cmd.Flags().StringVar(&delivery, "delivery", string(entities.DeliveryMethodPost), "Post or DeliveryAgent")
	_ = cmd.MarkFlagRequired("distance")
	return cmd
}
