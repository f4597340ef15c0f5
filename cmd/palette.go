package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/conjuror/internal/palette"

	colorize "github.com/fatih/color"
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Display the card face palette with brightness ramps",
	Long: `Palette prints the six card face colors together with darkened and
lightened shades, the same shades used for card borders and card backs.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		steps := []int{-55, -35, 0, 25, 50}

		fmt.Println()
		for _, base := range palette.Colors {
			fmt.Printf("  %s  ", base)
			for _, percent := range steps {
				shade, err := palette.AdjustBrightness(base, percent)
				if err != nil {
					return err
				}
				r, g, b := rgb(shade)
				fmt.Print(colorize.BgRGB(r, g, b).Sprint("      "))
			}
			fmt.Println()
		}
		fmt.Println()
		return nil
	},
}

func init() {
	RootCmd.AddCommand(paletteCmd)
}
