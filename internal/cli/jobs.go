package cli

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pantryops/pantryd/internal/repository"
)

var jobsUser string
var jobsLimit int

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Inspect ingestion jobs",
}

var jobsGetCmd = &cobra.Command{
	Use:   "get <job-id>",
	Short: "Show one ingestion job",
	Args:  cobra.ExactArgs(1),
	RunE:  runJobsGet,
}

var jobsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a user's recent ingestion jobs",
	RunE:  runJobsList,
}

func init() {
	jobsListCmd.Flags().StringVarP(&jobsUser, "user", "u", "", "user id (required)")
	jobsListCmd.Flags().IntVarP(&jobsLimit, "limit", "n", 20, "max jobs to list")
	_ = jobsListCmd.MarkFlagRequired("user")

	jobsCmd.AddCommand(jobsGetCmd)
	jobsCmd.AddCommand(jobsListCmd)
}

func runJobsGet(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("job id must be a UUID")
	}
	ctx := context.Background()
	client, err := getClient(ctx)
	if err != nil {
		return err
	}
	job, err := repository.NewIngestionRepository(client, logger).Get(ctx, id)
	if err != nil {
		return fmt.Errorf("load job: %w", err)
	}

	fmt.Printf("job      %s\n", job.ID)
	fmt.Printf("user     %s\n", job.UserID)
	fmt.Printf("status   %s\n", job.Status)
	if job.UploadID != nil {
		fmt.Printf("upload   %s\n", job.UploadID)
	}
	if job.ResultSummary != nil {
		fmt.Printf("summary  %s\n", *job.ResultSummary)
	}
	if job.AgentResponse != nil {
		fmt.Printf("response %s\n", *job.AgentResponse)
	}
	if job.LastError != nil {
		fmt.Printf("error    %s\n", *job.LastError)
	}
	return nil
}

func runJobsList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := getClient(ctx)
	if err != nil {
		return err
	}
	jobs, err := repository.NewIngestionRepository(client, logger).ListRecent(ctx, jobsUser, jobsLimit)
	if err != nil {
		return fmt.Errorf("list jobs: %w", err)
	}
	if len(jobs) == 0 {
		fmt.Println("no jobs")
		return nil
	}
	for _, j := range jobs {
		summary := ""
		if j.ResultSummary != nil {
			summary = *j.ResultSummary
		}
		fmt.Printf("%s  %-9s  %s  %s\n", j.ID, j.Status, j.CreatedAt.Format("2006-01-02 15:04"), summary)
	}
	return nil
}
