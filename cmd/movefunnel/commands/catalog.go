package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"movefunnel/internal/catalog"
	"movefunnel/internal/domain"
	"movefunnel/internal/estimate"
)

var homeSize string

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List home-size presets, or the rooms of one",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if homeSize == "" {
				for _, p := range catalog.HomeSizes() {
					printPresetLine(out, p)
				}
				return nil
			}
			p, ok := catalog.HomeSize(domain.HomeSize(homeSize))
			if !ok {
				return fmt.Errorf("unknown home size %q", homeSize)
			}
			printPresetLine(out, p)
			for _, r := range p.Rooms {
				fmt.Fprintf(out, "  - %s %s\n", r.Name, gray("("+string(r.Type)+")"))
			}
			boxes := estimate.BoxCountsForHomeSize(p.Size)
			fmt.Fprintf(out, "  boxes: %d small, %d medium, %d large, %d wardrobe\n",
				boxes.Small, boxes.Medium, boxes.Large, boxes.Wardrobe)
			return nil
		},
	}
	cmd.Flags().StringVar(&homeSize, "home-size", "", "show one preset, e.g. 2br")
	return cmd
}

func printPresetLine(out io.Writer, p catalog.HomeSizePreset) {
	fmt.Fprintf(out, "%s %-10s %-12s %2d rooms  %s\n", p.Icon, bold(string(p.Size)), p.Label, len(p.Rooms),
		green(estimate.FormatCurrency(p.EstimateRange.Min)+" - "+estimate.FormatCurrency(p.EstimateRange.Max)))
}
