package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pkozlov/newsbrief/internal/linkedin"
	"github.com/pkozlov/newsbrief/internal/model"
)

// tokenCmd validates the LinkedIn credential without running a workflow.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Validate the LinkedIn access token",
	Long: `Token checks that LINKEDIN_ACCESS_TOKEN is present and still accepted
by the LinkedIn API, and shows which member it authenticates as.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		token := os.Getenv("LINKEDIN_ACCESS_TOKEN")
		if token == "" {
			return fmt.Errorf("LINKEDIN_ACCESS_TOKEN environment variable not set")
		}

		cfg := model.DefaultConfig().LinkedIn
		cfg.AccessToken = token

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		status := linkedin.NewClient(cfg).ValidateToken(ctx)
		if !status.Valid {
			return fmt.Errorf("token validation failed: %s", status.Error)
		}

		fmt.Printf("Token is valid.\n")
		fmt.Printf("  Authenticated as: %s\n", status.UserName)
		if status.UserEmail != "" {
			fmt.Printf("  Email: %s\n", status.UserEmail)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
