package main

import (
	"errors"
	"fmt"

	"jobmatch/internal/delivery/http/dto"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var candidatesCmd = &cobra.Command{
	Use:   "candidates",
	Short: "Print candidate recommendations for a job",
	Long:  "Ranks seekers who have not applied to the job, acting as the job's employer.",
	RunE:  runCandidates,
}

var (
	candidatesJob   string
	candidatesCount int
)

func init() {
	candidatesCmd.Flags().StringVarP(&candidatesJob, "job", "j", "", "Job id (required)")
	candidatesCmd.Flags().IntVarP(&candidatesCount, "count", "n", 0, "Number of candidates (default from RECOMMEND_CANDIDATE_COUNT)")

	if err := candidatesCmd.MarkFlagRequired("job"); err != nil {
		panic(fmt.Sprintf("failed to mark job flag as required: %v", err))
	}

	rootCmd.AddCommand(candidatesCmd)
}

func runCandidates(cmd *cobra.Command, _ []string) error {
	jobID, err := uuid.Parse(candidatesJob)
	if err != nil {
		return fmt.Errorf("invalid --job: %w", err)
	}

	c, err := openContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		_ = c.Close()
	}()

	j, err := c.Jobs.GetByID(cmd.Context(), jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return fmt.Errorf("job %s not found", jobID)
		}
		return fmt.Errorf("failed to load job: %w", err)
	}

	profiles, err := c.CandidateRecommendations.GetRecommendations(cmd.Context(), j.EmployerID, j.ID, candidatesCount)
	if err != nil {
		return fmt.Errorf("failed to recommend candidates: %w", err)
	}
	return printJSON(cmd, dto.NewCandidateResponses(profiles))
}
