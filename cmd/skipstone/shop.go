package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/skipstone/internal/platform/tui"
	"github.com/vovakirdan/skipstone/internal/shop"
	"github.com/vovakirdan/skipstone/internal/storage"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Spend coins on stone upgrades",
	Long: `Open the upgrade shop. Coins earned during runs buy permanent
improvements to the stone: density, mass, elasticity, polish, and arm
strength.

Examples:
  skipstone shop
  skipstone shop buy weight`,
	Run: runShop,
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <upgrade>",
	Short: "Buy the next level of an upgrade",
	Long: `Purchase the next level of the named upgrade without opening the
interactive shop.

Upgrades: value, weight, bounciness, aerodynamics, max_power

Examples:
  skipstone shop buy value
  skipstone shop buy max_power`,
	Args: cobra.ExactArgs(1),
	Run:  runShopBuy,
}

func init() {
	shopCmd.AddCommand(shopBuyCmd)
}

func runShop(cmd *cobra.Command, args []string) {
	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if shopErr := tui.RunShop(store, width, height); shopErr != nil {
		fmt.Fprintf(os.Stderr, "Error running shop: %v\n", shopErr)
		os.Exit(1)
	}
}

func runShopBuy(cmd *cobra.Command, args []string) {
	stat := args[0]

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	svc := shop.NewService(store)
	item, err := svc.Buy(stat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	coins, _ := store.Coins()
	fmt.Printf("%s upgraded to level %d.\n", item.Name, item.Level)
	if item.Maxed {
		fmt.Printf("%s is now at max level.\n", item.Name)
	} else {
		fmt.Printf("Next level costs %d coins.\n", item.NextCost)
	}
	fmt.Printf("Wallet: %d coins\n", coins)
}
