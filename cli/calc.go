package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"loan-calculator/domain"
	"loan-calculator/service"
)

func bindLoanFlags(cmd *cobra.Command, input *domain.LoanInput) {
	cmd.Flags().Float64VarP(&input.Principal, "principal", "p", 10000, "Loan amount")
	cmd.Flags().Float64VarP(&input.AnnualRatePercent, "rate", "r", 5, "Annual interest rate (%)")
	cmd.Flags().IntVarP(&input.TenureYears, "years", "y", 10, "Loan term in years")
}

func (cli *CLI) newEmiCmd() *cobra.Command {
	var input domain.LoanInput
	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Print the monthly installment",
		RunE: func(cmd *cobra.Command, _ []string) error {
			emi, err := service.ComputeEmi(input.Principal, input.AnnualRatePercent, input.TenureYears)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Monthly EMI: $%.2f\n", service.RoundTo2Decimals(emi))
			return nil
		},
	}
	bindLoanFlags(cmd, &input)
	return cmd
}

func (cli *CLI) newScheduleCmd() *cobra.Command {
	var (
		input  domain.LoanInput
		format string
	)
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Print the amortization schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc := service.NewLoanService(nil, 0)
			result, err := svc.Calculate(cmd.Context(), input)
			if err != nil {
				return err
			}

			switch format {
			case "table":
				return writeScheduleTable(cmd, result)
			case "csv":
				return writeScheduleCSV(cmd, result)
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			default:
				return fmt.Errorf("unknown format %q (table, csv, json)", format)
			}
		},
	}
	bindLoanFlags(cmd, &input)
	cmd.Flags().Float64VarP(&input.ExtraMonthlyPayment, "extra", "e", 0, "Extra payment applied to principal each month")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table, csv or json")
	return cmd
}

func writeScheduleTable(cmd *cobra.Command, result domain.LoanResult) error {
	out := cmd.OutOrStdout()
	schedule := result.Schedule

	fmt.Fprintf(out, "Monthly EMI:     $%.2f\n", service.RoundTo2Decimals(result.Emi))
	fmt.Fprintf(out, "Total interest:  $%.2f\n", service.RoundTo2Decimals(schedule.TotalInterest))
	fmt.Fprintf(out, "Total paid:      $%.2f\n", service.RoundTo2Decimals(schedule.TotalPaid))
	fmt.Fprintf(out, "Payoff:          %d of %d months\n", schedule.ActualTenureMonths, schedule.NominalTenureMonths)
	if result.Savings != nil {
		fmt.Fprintf(out, "Interest saved:  $%.2f (%d months sooner)\n",
			service.RoundTo2Decimals(result.Savings.InterestSaved), result.Savings.MonthsSaved)
	}
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Month\tPrincipal\tInterest\tBalance\t")
	for _, r := range schedule.Records {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t\n",
			r.MonthIndex,
			service.RoundTo2Decimals(r.PrincipalPaid),
			service.RoundTo2Decimals(r.InterestPaid),
			service.RoundTo2Decimals(r.RemainingBalance),
		)
	}
	return tw.Flush()
}

func writeScheduleCSV(cmd *cobra.Command, result domain.LoanResult) error {
	w := csv.NewWriter(cmd.OutOrStdout())
	if err := w.Write([]string{"month", "principal_paid", "interest_paid", "remaining_balance"}); err != nil {
		return err
	}
	for _, r := range result.Schedule.Records {
		row := []string{
			strconv.Itoa(r.MonthIndex),
			strconv.FormatFloat(service.RoundTo2Decimals(r.PrincipalPaid), 'f', 2, 64),
			strconv.FormatFloat(service.RoundTo2Decimals(r.InterestPaid), 'f', 2, 64),
			strconv.FormatFloat(service.RoundTo2Decimals(r.RemainingBalance), 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (cli *CLI) newRecommendCmd() *cobra.Command {
	var input domain.TenureRecommendationInput
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank tenures that fit a monthly budget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := service.NewTenureRecommendationService().RecommendTenure(cmd.Context(), input)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Recommended tenure: %d years\n\n", result.RecommendedTenureYears)
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "Years\tEMI\tTotal interest\tScore")
			for _, r := range result.Recommendations {
				fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\n", r.TenureYears, r.Emi, r.TotalInterest, r.Score)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Float64VarP(&input.Principal, "principal", "p", 10000, "Loan amount")
	cmd.Flags().Float64VarP(&input.AnnualRatePercent, "rate", "r", 5, "Annual interest rate (%)")
	cmd.Flags().IntVar(&input.MinTenureYears, "min-years", 1, "Shortest tenure to consider")
	cmd.Flags().IntVar(&input.MaxTenureYears, "max-years", 30, "Longest tenure to consider")
	cmd.Flags().Float64Var(&input.MaxMonthlyPayment, "max-payment", 0, "Highest acceptable EMI")
	cmd.Flags().StringVar(&input.Preference, "preference", domain.PreferenceBalanced,
		"minimize_interest, minimize_payment or balanced")
	_ = cmd.MarkFlagRequired("max-payment")
	return cmd
}
