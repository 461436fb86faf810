package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	langopenai "github.com/tmc/langchaingo/llms/openai"

	"github.com/pantryops/pantryd/internal/agent"
	"github.com/pantryops/pantryd/internal/inventory"
	"github.com/pantryops/pantryd/internal/metrics"
	"github.com/pantryops/pantryd/internal/repository"
)

var agentUser string

var agentCmd = &cobra.Command{
	Use:   "agent <message>",
	Short: "Run the tool-mediated agent flow inline",
	Long: `Run the inventory agent against a free-form message. The agent can
read the user's current stock, parse the message into structured updates, and
apply them, then answers with a plain-language summary.

The run is recorded as a durable ingestion job and one interaction event.

Example:
  pantry agent --user alice "we finished the milk and bought 3 apples"`,
	Args: cobra.ExactArgs(1),
	RunE: runAgent,
}

func init() {
	agentCmd.Flags().StringVarP(&agentUser, "user", "u", "", "user id (required)")
	_ = agentCmd.MarkFlagRequired("user")
}

func runAgent(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	client, err := getClient(ctx)
	if err != nil {
		return err
	}
	extractor, err := getExtractor()
	if err != nil {
		return err
	}

	inventoryRepo := repository.NewInventoryRepository(client, logger)
	auditRepo := repository.NewAuditRepository(client, logger)
	ingestionRepo := repository.NewIngestionRepository(client, logger)
	metricsRepo := repository.NewMetricsRepository(client, logger)
	engine := inventory.NewEngine(inventoryRepo, auditRepo, logger)
	agg := metrics.NewAggregator(metricsRepo, metricsRepo, logger)

	model, err := langopenai.New(
		langopenai.WithToken(cfg.Extract.APIKey),
		langopenai.WithModel(cfg.Agent.Model),
		langopenai.WithBaseURL(cfg.Extract.BaseURL),
	)
	if err != nil {
		return fmt.Errorf("create agent model: %w", err)
	}

	deps := &agent.Dependencies{
		Engine:      engine,
		Extractor:   extractor,
		Context:     inventoryRepo,
		Invocations: ingestionRepo,
		Logger:      logger,
	}
	runner := agent.NewRunner(model, deps, cfg.Agent.MaxTurns, logger)
	executor := agent.NewExecutor(runner, ingestionRepo, nil, agg, logger)

	jobID, response, err := executor.RunInline(ctx, agentUser, args[0], nil)
	if err != nil {
		return fmt.Errorf("agent run: %w", err)
	}
	fmt.Println(response)
	fmt.Printf("job: %s\n", jobID)
	return nil
}
