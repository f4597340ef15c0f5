package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/conjuror/internal/card"
	"github.com/arcanaland/conjuror/internal/config"
	"github.com/arcanaland/conjuror/internal/store"
)

// drawCmd represents the draw command
var drawCmd = &cobra.Command{
	Use:   "draw [count]",
	Short: "Conjure a hand of random cards and display them",
	Long: `Draw conjures a hand of magic cards with randomized titles, flavor text
and face colors, and renders them in the terminal.

Without a count, the default_draw value from your config is used.

Examples:
  conjuror draw
  conjuror draw 5`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		count := cfg.DefaultDraw
		if len(args) == 1 {
			count, err = strconv.Atoi(args[0])
			if err != nil || count < 1 {
				return fmt.Errorf("invalid count: %s", args[0])
			}
		}

		factory := card.NewFactory()
		table := store.New()
		for i := 0; i < count; i++ {
			table.Add(factory.New("", "", ""))
		}

		renderCards(table.All(), cfg.ShowTimestamps, false)
		return nil
	},
}
