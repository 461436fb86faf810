package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"

	"github.com/pantryops/pantryd/constants"
)

// RunInfo summarizes one controller run for event emission.
type RunInfo struct {
	Response     string
	Summary      string
	UsedFallback bool
	Confidence   *float64
	Turns        int
}

// Runner drives the language-model controller over the three inventory tools.
// It enforces no tool ordering — the system prompt advises context -> parse ->
// summarize -> apply, but the runner executes whatever calls the controller
// issues, bounded only by maxTurns.
type Runner struct {
	llm      llms.Model
	deps     *Dependencies
	maxTurns int
	logger   *slog.Logger
}

func NewRunner(llm llms.Model, deps *Dependencies, maxTurns int, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if maxTurns <= 0 {
		maxTurns = 8
	}
	return &Runner{llm: llm, deps: deps, maxTurns: maxTurns, logger: logger}
}

// Run executes the tool loop for one ingestion job.
func (r *Runner) Run(ctx context.Context, job IngestionJob) (RunInfo, error) {
	text := ""
	if job.InputText != nil {
		text = *job.InputText
	}
	if strings.TrimSpace(text) == "" {
		return RunInfo{}, fmt.Errorf("ingestion job %s has no input text", job.ID)
	}

	tools := NewToolset(r.deps, job.UserID, constants.AuditActionAgent)
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, text),
	}

	start := time.Now()
	for turn := 1; turn <= r.maxTurns; turn++ {
		resp, err := r.llm.GenerateContent(ctx, messages, llms.WithTools(ToolDefinitions()))
		if err != nil {
			return RunInfo{UsedFallback: tools.UsedFallback(), Confidence: tools.LastConfidence()},
				fmt.Errorf("controller turn %d: %w", turn, err)
		}
		if len(resp.Choices) == 0 {
			return RunInfo{UsedFallback: tools.UsedFallback(), Confidence: tools.LastConfidence()},
				fmt.Errorf("controller turn %d: no choices", turn)
		}
		choice := resp.Choices[0]

		if len(choice.ToolCalls) == 0 {
			info := RunInfo{
				Response:     choice.Content,
				Summary:      summarize(tools),
				UsedFallback: tools.UsedFallback(),
				Confidence:   tools.LastConfidence(),
				Turns:        turn,
			}
			r.logger.Info("agent.run.done",
				"job_id", job.ID,
				"turns", turn,
				"applied", tools.Applied(),
				"used_fallback", info.UsedFallback,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return info, nil
		}

		// echo the assistant turn (with its tool calls) back into history
		assistant := llms.MessageContent{Role: llms.ChatMessageTypeAI}
		if choice.Content != "" {
			assistant.Parts = append(assistant.Parts, llms.TextPart(choice.Content))
		}
		for _, tc := range choice.ToolCalls {
			assistant.Parts = append(assistant.Parts, tc)
		}
		messages = append(messages, assistant)

		for _, tc := range choice.ToolCalls {
			output := r.invoke(ctx, job.ID, tc, tools)
			messages = append(messages, llms.MessageContent{
				Role: llms.ChatMessageTypeTool,
				Parts: []llms.ContentPart{llms.ToolCallResponse{
					ToolCallID: tc.ID,
					Name:       tc.FunctionCall.Name,
					Content:    string(output),
				}},
			})
		}
	}

	return RunInfo{UsedFallback: tools.UsedFallback(), Confidence: tools.LastConfidence(), Turns: r.maxTurns},
		fmt.Errorf("controller exceeded %d turns without finishing", r.maxTurns)
}

// invoke runs one tool call and records its invocation pair. Recording
// failures are logged, never propagated — the audit trail is observational.
func (r *Runner) invoke(ctx context.Context, jobID uuid.UUID, tc llms.ToolCall, tools *Toolset) json.RawMessage {
	name := tc.FunctionCall.Name
	args := json.RawMessage(tc.FunctionCall.Arguments)
	callID := tc.ID
	if callID == "" {
		callID = uuid.New().String()
	}

	if r.deps.Invocations != nil {
		if err := r.deps.Invocations.StartInvocation(ctx, jobID, callID, name, args); err != nil {
			r.logger.Warn("agent.invocation.start_failed", "job_id", jobID, "call_id", callID, "error", err)
		}
	}

	start := time.Now()
	output := tools.Dispatch(ctx, name, args)
	r.logger.Info("agent.tool.called",
		"job_id", jobID,
		"tool", name,
		"call_id", callID,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if r.deps.Invocations != nil {
		if err := r.deps.Invocations.CompleteInvocation(ctx, jobID, callID, output); err != nil {
			r.logger.Warn("agent.invocation.complete_failed", "job_id", jobID, "call_id", callID, "error", err)
		}
	}
	return output
}

func summarize(tools *Toolset) string {
	switch {
	case tools.Applied():
		return "inventory updated"
	case tools.UsedFallback():
		return "parsed with fallback, nothing applied"
	default:
		return "no changes applied"
	}
}

const systemPrompt = `You manage a user's grocery inventory through three tools.
Recommended flow: call fetch_user_context if the request refers to existing stock,
then parse_grocery_text to turn the request into structured updates, then briefly
summarize the intended change, and only then call apply_inventory_updates.
If a tool returns an error field, decide whether to retry differently or stop and
explain. When finished, reply with a short plain-language summary of what changed.
Never invent items the user did not mention.`
