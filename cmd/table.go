package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/conjuror/internal/card"
	"github.com/arcanaland/conjuror/internal/config"
	"github.com/arcanaland/conjuror/internal/store"
	"github.com/arcanaland/conjuror/internal/validator"
)

const tableHelp = `  add [title]   conjure a card, optionally with your own title
  flip <n>      flip card n face down or face up again
  flip all      flip every card on the table
  shuffle       shuffle the table
  list          show the table
  stats         show session statistics
  help          show this command list
  quit          end the session`

// tableCmd represents the table command
var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Start an interactive card table session",
	Long: `Table starts an interactive session with an in-memory card table. The
session begins with a few conjured cards and accepts commands until you quit:

` + tableHelp + `

Nothing is persisted; the table vanishes when the session ends.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %v", err)
		}

		factory := card.NewFactory()
		table := store.New()
		for i := 0; i < cfg.DefaultDraw; i++ {
			table.Add(factory.New("", "", ""))
		}

		fmt.Printf("Conjured %d cards. Type 'help' for commands.\n", cfg.DefaultDraw)
		renderCards(table.All(), cfg.ShowTimestamps, true)

		scanner := bufio.NewScanner(os.Stdin)
		for {
			fmt.Print("conjuror> ")
			if !scanner.Scan() {
				break
			}

			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}

			parts := strings.SplitN(line, " ", 2)
			arg := ""
			if len(parts) > 1 {
				arg = strings.TrimSpace(parts[1])
			}

			switch strings.ToLower(parts[0]) {
			case "add":
				runAdd(table, factory, arg, cfg.ShowTimestamps)
			case "flip":
				runFlip(table, arg)
			case "shuffle":
				table.Shuffle()
				fmt.Println("The table has been shuffled.")
				renderCards(table.All(), cfg.ShowTimestamps, true)
			case "list", "ls":
				renderCards(table.All(), cfg.ShowTimestamps, true)
			case "stats":
				st := table.Stats()
				fmt.Printf("Cards on the table: %d\n", st.Count)
				fmt.Printf("Cards conjured:     %d\n", table.Created())
				fmt.Printf("Flips performed:    %d\n", st.Flips)
			case "help":
				fmt.Println(tableHelp)
			case "quit", "exit":
				return nil
			default:
				fmt.Printf("Unknown command: %s (try 'help')\n", parts[0])
			}
		}
		return scanner.Err()
	},
}

// runAdd conjures one card, using the given title if it passes validation.
func runAdd(table *store.Store, factory *card.Factory, title string, showTimestamps bool) {
	if title != "" && !validator.IsValid(title) {
		fmt.Printf("Titles must be 1 to %d characters once trimmed.\n", validator.MaxLength)
		return
	}

	c := factory.New(title, "", "")
	table.Add(c)
	fmt.Printf("Conjured %q.\n", c.Title)
	renderCards([]*card.Card{c}, showTimestamps, false)
}

// runFlip flips one card by its 1-based table index, or all of them.
func runFlip(table *store.Store, arg string) {
	if arg == "" {
		fmt.Println("Usage: flip <n> or flip all")
		return
	}

	if strings.EqualFold(arg, "all") {
		n := table.FlipAll()
		fmt.Printf("Flipped %d cards.\n", n)
		return
	}

	cards := table.All()
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > len(cards) {
		fmt.Printf("No card %q on the table.\n", arg)
		return
	}

	c, err := table.Flip(cards[n-1].ID)
	if errors.Is(err, store.ErrNotFound) {
		fmt.Printf("No card %q on the table.\n", arg)
		return
	}

	if c.Flipped {
		fmt.Printf("%q is now face down.\n", c.Title)
	} else {
		fmt.Printf("%q is now face up.\n", c.Title)
	}
}

func init() {
	RootCmd.AddCommand(tableCmd)
}
