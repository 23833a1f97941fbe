package main

import (
	"fmt"

	"jobmatch/internal/delivery/http/dto"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Print job recommendations for a seeker",
	RunE:  runJobs,
}

var (
	jobsUser  string
	jobsCount int
)

func init() {
	jobsCmd.Flags().StringVarP(&jobsUser, "user", "u", "", "Seeker user id (required)")
	jobsCmd.Flags().IntVarP(&jobsCount, "count", "n", 0, "Number of jobs (default from RECOMMEND_JOB_COUNT)")

	if err := jobsCmd.MarkFlagRequired("user"); err != nil {
		panic(fmt.Sprintf("failed to mark user flag as required: %v", err))
	}

	rootCmd.AddCommand(jobsCmd)
}

func runJobs(cmd *cobra.Command, _ []string) error {
	userID, err := uuid.Parse(jobsUser)
	if err != nil {
		return fmt.Errorf("invalid --user: %w", err)
	}

	c, err := openContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		_ = c.Close()
	}()

	jobs, err := c.JobRecommendations.GetRecommendations(cmd.Context(), userID, jobsCount)
	if err != nil {
		return fmt.Errorf("failed to recommend jobs: %w", err)
	}
	return printJSON(cmd, dto.NewJobResponses(jobs))
}
