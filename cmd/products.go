package cmd

import (
	"fmt"

	"github.com/marcus/shopdesk/internal/db"
	"github.com/marcus/shopdesk/internal/models"
	"github.com/marcus/shopdesk/internal/output"
	"github.com/spf13/cobra"
)

var productStatusFlag = statusListFlag{
	name: "product",
	valid: func(s string) bool {
		return models.IsValidProductStatus(models.ProductStatus(s))
	},
}

var productsCmd = &cobra.Command{
	Use:   "products [query]",
	Short: "List catalog products",
	Long: `Lists products, optionally filtered by status or a search query.
With a query, results are ordered by match relevance (ID, then SKU, then name).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		opts := db.ListProductsOptions{SortBy: "name"}
		for _, s := range productStatusFlag.values {
			opts.Status = append(opts.Status, models.ProductStatus(s))
		}

		var products []models.Product
		if len(args) == 1 {
			results, err := database.SearchProductsRanked(args[0], opts)
			if err != nil {
				output.Error("search failed: %v", err)
				return err
			}
			for _, r := range results {
				products = append(products, r.Product)
			}
		} else {
			products, err = database.ListProducts(opts)
			if err != nil {
				output.Error("list failed: %v", err)
				return err
			}
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(products)
		}

		if tree, _ := cmd.Flags().GetBool("tree"); tree {
			return printProductTree(database, products)
		}

		width := output.TerminalWidth()
		for i := range products {
			fmt.Println(output.Truncate(output.FormatProductShort(&products[i]), width))
		}
		if len(products) == 0 {
			fmt.Println("No products found")
		}
		return nil
	},
}

// printProductTree renders products with their reviews nested underneath
func printProductTree(database *db.DB, products []models.Product) error {
	reviewsByProduct := make(map[string][]models.Review)
	for _, p := range products {
		reviews, err := database.ListReviews(db.ListReviewsOptions{ProductID: p.ID})
		if err != nil {
			output.Error("list reviews: %v", err)
			return err
		}
		reviewsByProduct[p.ID] = reviews
	}

	nodes := output.ProductTree(products, reviewsByProduct)
	for _, line := range output.RenderTreeLines(nodes, output.TreeRenderOptions{ShowStatus: true}) {
		fmt.Println(line)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(productsCmd)

	productsCmd.Flags().VarP(&productStatusFlag, "status", "s", "Filter by status (repeatable)")
	productsCmd.Flags().Bool("tree", false, "Show products with their reviews nested")
	productsCmd.Flags().Bool("json", false, "Output as JSON")
}
