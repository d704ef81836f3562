package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"movefunnel/internal/domain"
	"movefunnel/internal/estimate"
	"movefunnel/internal/funnel"
)

var (
	bold  = color.New(color.Bold).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	gray  = color.New(color.FgHiBlack).SprintFunc()
)

var (
	snapshotFile string
	phaseFlag    string
)

func estimateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Price a saved session snapshot",
		Long:  "Reads a snapshot JSON file (\"-\" for stdin) and prints its estimate. The phase defaults to the one the snapshot's current step uses.",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readSnapshotFile(snapshotFile)
			if err != nil {
				return err
			}
			state, ok := funnel.RestoreSnapshot(data)
			if !ok {
				return fmt.Errorf("%s: not a valid snapshot", snapshotFile)
			}

			phase := estimate.PhaseForStep(state.CurrentStep)
			if phaseFlag != "" {
				p, valid := estimate.ParsePhase(phaseFlag)
				if !valid {
					return fmt.Errorf("--phase must be preset or granular, got %q", phaseFlag)
				}
				phase = p
			}
			printEstimate(cmd.OutOrStdout(), state, phase, estimate.Generate(state, phase))
			return nil
		},
	}
	cmd.Flags().StringVar(&snapshotFile, "snapshot", "", "snapshot JSON file, or - for stdin")
	cmd.Flags().StringVar(&phaseFlag, "phase", "", "pricing phase (preset or granular)")
	_ = cmd.MarkFlagRequired("snapshot")
	return cmd
}

func readSnapshotFile(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func printEstimate(out io.Writer, s *domain.MoveState, phase estimate.Phase, est domain.MoveEstimate) {
	fmt.Fprintf(out, "%s %s\n", bold("Estimate"), gray("("+string(phase)+")"))
	fmt.Fprintf(out, "  Step:        %s\n", s.CurrentStep)
	fmt.Fprintf(out, "  Rooms:       %d\n", len(s.Rooms))
	fmt.Fprintf(out, "  Items:       %d\n", est.TotalItems)
	fmt.Fprintf(out, "  Boxes:       %d\n", est.TotalBoxes)
	fmt.Fprintf(out, "  Weight:      %.0f lbs\n", est.TotalWeight)
	fmt.Fprintf(out, "  Volume:      %.0f cu ft\n", est.TotalVolume)
	fmt.Fprintf(out, "  Complexity:  %d\n", est.ComplexityScore)
	fmt.Fprintf(out, "  Range:       %s\n", green(estimate.FormatCurrency(est.CostRange.Min)+" - "+estimate.FormatCurrency(est.CostRange.Max)))

	b := est.CostBreakdown
	fmt.Fprintln(out, bold("Breakdown"))
	for _, line := range []struct {
		label  string
		amount float64
	}{
		{"Base", b.BaseCost},
		{"Packing", b.PackingCost},
		{"Special items", b.SpecialItemsCost},
		{"Services", b.ServicesCost},
	} {
		fmt.Fprintf(out, "  %-13s %s\n", line.label+":", estimate.FormatCurrencyPrecise(line.amount))
	}
	fmt.Fprintf(out, "  %-13s %s\n", "Total:", cyan(estimate.FormatCurrencyPrecise(b.Total)))
}
