package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func eligibilityCmd() *cobra.Command {
	var (
		postalCode      string
		distance        float64
		hasLocalEdition bool
	)

	cmd := &cobra.Command{
		Use:   "eligibility",
		Short: "Check whether an address can be served by courier",
		RunE: func(cmd *cobra.Command, args []string) error {
			if quotes.CheckEligibility(postalCode, distance, hasLocalEdition) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: courier delivery available\n", postalCode)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: post only\n", postalCode)
			return nil
		},
	}

	cmd.Flags().StringVar(&postalCode, "plz", "", "delivery postal code")
	cmd.Flags().Float64Var(&distance, "distance", 0, "distance from the publishing house in km")
	cmd.Flags().BoolVar(&hasLocalEdition, "has-local-edition", false, "a local edition exists for the address")
	_ = cmd.MarkFlagRequired("plz")
	return cmd
}
