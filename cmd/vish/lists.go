// ABOUTME: CLI commands for favorites and the shopping list.
// ABOUTME: Both persist through the same KV collaborator as the history.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/vishlabs/vish/internal/catalog"
	"github.com/vishlabs/vish/internal/lists"
)

func openLists() (*lists.Lists, func(), error) {
	store, err := openKV()
	if err != nil {
		return nil, nil, err
	}
	return lists.New(store), func() { _ = store.Close() }, nil
}

var favCmd = &cobra.Command{
	Use:   "fav",
	Short: "Manage favorite foods",
	Long: `Manage your favorite catalog entries.

EXAMPLES:

  vish fav                         # List favorites
  vish fav add 0786936224306       # Add by barcode
  vish fav rm food-001             # Remove by food ID`,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, closeStore, err := openLists()
		if err != nil {
			return err
		}
		defer closeStore()

		favs, err := l.Favorites()
		if err != nil {
			return err
		}
		if len(favs) == 0 {
			fmt.Println("No favorites yet.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, f := range favs {
			fmt.Printf("%s %s %s\n", faint.Sprint(f.FoodID), f.Name, faint.Sprint(f.Brand))
		}
		return nil
	},
}

var favAddCmd = &cobra.Command{
	Use:   "add <barcode>",
	Short: "Add a catalog entry to favorites by barcode",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		item, ok := catalog.Seeded().ByBarcode(args[0])
		if !ok {
			return fmt.Errorf("no catalog entry with barcode %s", args[0])
		}

		l, closeStore, err := openLists()
		if err != nil {
			return err
		}
		defer closeStore()

		added, err := l.AddFavorite(item)
		if err != nil {
			return err
		}
		if !added {
			fmt.Printf("%s is already a favorite.\n", item.Name)
			return nil
		}
		color.Green("✓ Added %s to favorites", item.Name)
		return nil
	},
}

var favRmCmd = &cobra.Command{
	Use:   "rm <food-id>",
	Short: "Remove a favorite",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, closeStore, err := openLists()
		if err != nil {
			return err
		}
		defer closeStore()

		ok, err := l.RemoveFavorite(args[0])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("No favorite with ID %s.\n", args[0])
			return nil
		}
		color.Green("✓ Removed %s", args[0])
		return nil
	},
}

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Manage the shopping list",
	Long: `Manage your shopping list.

EXAMPLES:

  vish shop                        # List items
  vish shop add "oat milk" -q 2    # Add an item
  vish shop done a1b2c3d4          # Toggle done
  vish shop rm a1b2c3d4            # Remove an item
  vish shop clear                  # Drop completed items`,
	RunE: func(cmd *cobra.Command, args []string) error {
		l, closeStore, err := openLists()
		if err != nil {
			return err
		}
		defer closeStore()

		items, err := l.ShoppingItems()
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("Shopping list is empty.")
			return nil
		}
		faint := color.New(color.Faint)
		for _, item := range items {
			mark := " "
			if item.Done {
				mark = "x"
			}
			qty := ""
			if item.Quantity != "" {
				qty = faint.Sprintf(" (%s)", item.Quantity)
			}
			fmt.Printf("[%s] %s %s%s\n", mark, faint.Sprint(item.ID), item.Name, qty)
		}
		return nil
	},
}

var shopQuantity string

var shopAddCmd = &cobra.Command{
	Use:   "add <name...>",
	Short: "Add an item to the shopping list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, closeStore, err := openLists()
		if err != nil {
			return err
		}
		defer closeStore()

		item, err := l.AddShoppingItem(strings.Join(args, " "), shopQuantity)
		if err != nil {
			return err
		}
		color.Green("✓ Added %s (ID: %s)", item.Name, item.ID)
		return nil
	},
}

var shopDoneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Toggle an item's done flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, closeStore, err := openLists()
		if err != nil {
			return err
		}
		defer closeStore()

		ok, err := l.ToggleShoppingItem(args[0])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("No item with ID %s.\n", args[0])
			return nil
		}
		color.Green("✓ Toggled %s", args[0])
		return nil
	},
}

var shopRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Remove an item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, closeStore, err := openLists()
		if err != nil {
			return err
		}
		defer closeStore()

		ok, err := l.RemoveShoppingItem(args[0])
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("No item with ID %s.\n", args[0])
			return nil
		}
		color.Green("✓ Removed %s", args[0])
		return nil
	},
}

var shopClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop completed items",
	RunE: func(cmd *cobra.Command, args []string) error {
		l, closeStore, err := openLists()
		if err != nil {
			return err
		}
		defer closeStore()

		n, err := l.ClearDone()
		if err != nil {
			return err
		}
		color.Green("✓ Cleared %d completed item(s)", n)
		return nil
	},
}

func init() {
	favCmd.AddCommand(favAddCmd, favRmCmd)
	shopAddCmd.Flags().StringVarP(&shopQuantity, "quantity", "q", "", "quantity, free-form")
	shopCmd.AddCommand(shopAddCmd, shopDoneCmd, shopRmCmd, shopClearCmd)
	rootCmd.AddCommand(favCmd, shopCmd)
}
