package cmd

import (
	"fmt"

	"github.com/marcus/shopdesk/internal/db"
	"github.com/marcus/shopdesk/internal/models"
	"github.com/marcus/shopdesk/internal/output"
	"github.com/spf13/cobra"
)

var reviewStatusFlag = statusListFlag{
	name: "review",
	valid: func(s string) bool {
		return models.IsValidReviewStatus(models.ReviewStatus(s))
	},
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "List and moderate customer reviews",
	RunE: func(cmd *cobra.Command, args []string) error {
		database, err := db.Open(getBaseDir())
		if err != nil {
			output.Error("%v", err)
			return err
		}
		defer database.Close()

		opts := db.ListReviewsOptions{SortBy: "created", SortDesc: true}
		for _, s := range reviewStatusFlag.values {
			opts.Status = append(opts.Status, models.ReviewStatus(s))
		}
		opts.ProductID, _ = cmd.Flags().GetString("product")
		opts.MinRating, _ = cmd.Flags().GetInt("min-rating")

		reviews, err := database.ListReviews(opts)
		if err != nil {
			output.Error("list failed: %v", err)
			return err
		}

		if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
			return output.JSON(reviews)
		}

		width := output.TerminalWidth()
		for i := range reviews {
			fmt.Println(output.Truncate(output.FormatReviewShort(&reviews[i]), width))
		}
		if len(reviews) == 0 {
			fmt.Println("No reviews found")
		}
		return nil
	},
}

var reviewPublishCmd = &cobra.Command{
	Use:   "publish <review-id>",
	Short: "Publish a review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return moderateReview(args[0], models.ReviewPublished)
	},
}

var reviewRejectCmd = &cobra.Command{
	Use:   "reject <review-id>",
	Short: "Reject a review",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return moderateReview(args[0], models.ReviewRejected)
	},
}

func moderateReview(id string, status models.ReviewStatus) error {
	database, err := db.Open(getBaseDir())
	if err != nil {
		output.Error("%v", err)
		return err
	}
	defer database.Close()

	if err := database.SetReviewStatus(id, status); err != nil {
		output.Error("%v", err)
		return err
	}
	fmt.Printf("Review %s %s\n", id, status)
	return nil
}

func init() {
	rootCmd.AddCommand(reviewsCmd)
	reviewsCmd.AddCommand(reviewPublishCmd)
	reviewsCmd.AddCommand(reviewRejectCmd)

	reviewsCmd.Flags().VarP(&reviewStatusFlag, "status", "s", "Filter by status (repeatable)")
	reviewsCmd.Flags().StringP("product", "p", "", "Filter by product ID")
	reviewsCmd.Flags().Int("min-rating", 0, "Minimum star rating")
	reviewsCmd.Flags().Bool("json", false, "Output as JSON")
}
