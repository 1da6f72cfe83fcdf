// Package main is the entry point for searchctl, the operational CLI for
// the search query log.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"search-orchestrator/internal/adapter/repository"
	"search-orchestrator/internal/domain"
	"search-orchestrator/internal/infra"
)

var rootCmd = &cobra.Command{
	Use:           "searchctl",
	Short:         "Operational CLI for the search query log",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var trimCmd = &cobra.Command{
	Use:   "trim",
	Short: "Delete query log rows older than the retention window",
	RunE:  runTrim,
}

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "Print the trending queries over the trailing seven days",
	RunE:  runPopular,
}

func init() {
	trimCmd.Flags().Int("days", 90, "retention window in days")
	popularCmd.Flags().Int("limit", domain.PopularLimit, "number of entries to print")
	rootCmd.AddCommand(trimCmd)
	rootCmd.AddCommand(popularCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func newQueryLogRepo(ctx context.Context) (*repository.QueryLogRepository, func(), error) {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL is required")
	}
	pool, err := infra.NewPostgresDB(ctx, dbURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	return repository.NewQueryLogRepository(pool), pool.Close, nil
}

func runTrim(cmd *cobra.Command, args []string) error {
	days, err := cmd.Flags().GetInt("days")
	if err != nil {
		return err
	}
	if days < 1 {
		return fmt.Errorf("days must be >= 1")
	}

	ctx := cmd.Context()
	repo, closePool, err := newQueryLogRepo(ctx)
	if err != nil {
		return err
	}
	defer closePool()

	cutoff := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
	deleted, err := repo.TrimOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d query log rows older than %s\n", deleted, cutoff.Format(time.RFC3339))
	return nil
}

func runPopular(cmd *cobra.Command, args []string) error {
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	if limit < 1 {
		return fmt.Errorf("limit must be >= 1")
	}

	ctx := cmd.Context()
	repo, closePool, err := newQueryLogRepo(ctx)
	if err != nil {
		return err
	}
	defer closePool()

	popular, err := repo.PopularSearches(ctx, domain.PopularWindow, limit)
	if err != nil {
		return err
	}
	if len(popular) == 0 {
		fmt.Println("No searches recorded in the last 7 days")
		return nil
	}
	for i, p := range popular {
		fmt.Printf("%2d. %-40s %6d  (last: %s)\n", i+1, p.Query, p.Count, p.LastSearched.Format(time.RFC3339))
	}
	return nil
}
