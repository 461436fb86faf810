package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/common"
	"github.com/pantryops/pantryd/internal/extract"
	"github.com/pantryops/pantryd/internal/inventory"
	"github.com/pantryops/pantryd/internal/normalize"
)

// Tool names exposed to the controller.
const (
	ToolFetchContext = "fetch_user_context"
	ToolParseText    = "parse_grocery_text"
	ToolApplyUpdates = "apply_inventory_updates"
)

const defaultContextLimit = 25

// FetchContextInput bounds the read-only context fetch.
type FetchContextInput struct {
	Limit int `json:"limit,omitempty"`
}

// ContextItem is one inventory row as shown to the controller.
type ContextItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Category string  `json:"category"`
	LowStock bool    `json:"low_stock,omitempty"`
}

// FetchContextOutput is the fetch_user_context result payload.
type FetchContextOutput struct {
	Items []ContextItem `json:"items"`
	Error string        `json:"error,omitempty"`
}

// ParseTextInput is the parse_grocery_text argument payload.
type ParseTextInput struct {
	Text string `json:"text"`
}

// ParseTextOutput is the parse_grocery_text result payload.
type ParseTextOutput struct {
	Items             []extract.ExtractedItem `json:"items"`
	OverallConfidence float64                 `json:"overall_confidence"`
	NeedsReview       bool                    `json:"needs_review"`
	UsedFallback      bool                    `json:"used_fallback,omitempty"`
	Error             string                  `json:"error,omitempty"`
}

// UpdateItem is one update in an apply_inventory_updates call.
type UpdateItem struct {
	Name              string                  `json:"name"`
	Quantity          float64                 `json:"quantity"`
	Unit              string                  `json:"unit,omitempty"`
	Action            string                  `json:"action"`
	Category          string                  `json:"category,omitempty"`
	Location          string                  `json:"location,omitempty"`
	LowStockThreshold *float64                `json:"low_stock_threshold,omitempty"`
	Expiration        common.Optional[string] `json:"expiration,omitzero"`
	Notes             string                  `json:"notes,omitempty"`
}

// ApplyUpdatesInput is the apply_inventory_updates argument payload.
type ApplyUpdatesInput struct {
	Updates []UpdateItem `json:"updates"`
}

// ApplyUpdatesOutput is the apply_inventory_updates result payload.
type ApplyUpdatesOutput struct {
	Success  bool                      `json:"success"`
	Outcomes []inventory.ApplyOutcome  `json:"outcomes,omitempty"`
	Summary  inventory.Summary         `json:"summary"`
	Error    string                    `json:"error,omitempty"`
}

// Toolset executes tool calls for one job run. Every tool catches its own
// errors and returns a structured payload with an error field, so a failed
// call reaches the controller instead of crashing the job.
type Toolset struct {
	deps   *Dependencies
	userID string
	action constants.AuditAction

	usedFallback   bool
	lastConfidence *float64
	applied        bool
}

func NewToolset(deps *Dependencies, userID string, action constants.AuditAction) *Toolset {
	return &Toolset{deps: deps, userID: userID, action: action}
}

// UsedFallback reports whether any parse call in this run fell back.
func (t *Toolset) UsedFallback() bool { return t.usedFallback }

// LastConfidence is the overall confidence of the most recent parse, if any.
func (t *Toolset) LastConfidence() *float64 { return t.lastConfidence }

// Applied reports whether the apply tool committed anything this run.
func (t *Toolset) Applied() bool { return t.applied }

// Dispatch routes one tool call by name. Unknown names and malformed
// arguments come back as error payloads, never as Go errors.
func (t *Toolset) Dispatch(ctx context.Context, name string, arguments json.RawMessage) json.RawMessage {
	switch name {
	case ToolFetchContext:
		var in FetchContextInput
		if err := json.Unmarshal(arguments, &in); err != nil {
			return errorPayload("invalid arguments: " + err.Error())
		}
		return marshalPayload(t.fetchContext(ctx, in))
	case ToolParseText:
		var in ParseTextInput
		if err := json.Unmarshal(arguments, &in); err != nil {
			return errorPayload("invalid arguments: " + err.Error())
		}
		return marshalPayload(t.parseText(ctx, in))
	case ToolApplyUpdates:
		var in ApplyUpdatesInput
		if err := json.Unmarshal(arguments, &in); err != nil {
			return errorPayload("invalid arguments: " + err.Error())
		}
		return marshalPayload(t.applyUpdates(ctx, in))
	default:
		return errorPayload(fmt.Sprintf("unknown tool %q", name))
	}
}

func (t *Toolset) fetchContext(ctx context.Context, in FetchContextInput) FetchContextOutput {
	limit := in.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultContextLimit
	}
	recs, err := t.deps.Context.RecentInventory(ctx, t.userID, limit)
	if err != nil {
		t.deps.Logger.Warn("agent.tool.fetch_context_failed", "user_id", t.userID, "error", err)
		return FetchContextOutput{Error: "fetch context: " + err.Error()}
	}
	items := make([]ContextItem, 0, len(recs))
	for _, r := range recs {
		items = append(items, ContextItem{
			Name:     r.Name,
			Quantity: r.Quantity,
			Unit:     r.Unit,
			Category: r.Category,
			LowStock: r.Quantity <= r.LowStockThreshold,
		})
	}
	return FetchContextOutput{Items: items}
}

func (t *Toolset) parseText(ctx context.Context, in ParseTextInput) ParseTextOutput {
	if strings.TrimSpace(in.Text) == "" {
		return ParseTextOutput{Error: "text is empty"}
	}
	res := t.deps.Extractor.ParseText(ctx, in.Text)
	res.Items = normalize.Items(res.Items)
	if res.UsedFallback {
		t.usedFallback = true
	}
	conf := res.OverallConfidence
	t.lastConfidence = &conf
	return ParseTextOutput{
		Items:             res.Items,
		OverallConfidence: res.OverallConfidence,
		NeedsReview:       res.NeedsReview,
		UsedFallback:      res.UsedFallback,
		Error:             res.Error,
	}
}

func (t *Toolset) applyUpdates(ctx context.Context, in ApplyUpdatesInput) ApplyUpdatesOutput {
	if len(in.Updates) == 0 {
		return ApplyUpdatesOutput{Error: "no updates provided"}
	}
	updates := make([]inventory.UpdateRecord, 0, len(in.Updates))
	for _, u := range in.Updates {
		qty := u.Quantity
		if qty < 0 {
			// quantities from the controller are magnitudes; direction is the action
			qty = 0
		}
		upd := inventory.UpdateRecord{
			Name:     u.Name,
			Quantity: qty,
			Unit:     constants.NormalizeUnit(u.Unit),
			Action:   strings.ToLower(strings.TrimSpace(u.Action)),
		}
		if strings.TrimSpace(u.Category) != "" {
			upd.Category = string(constants.NormalizeCategory(u.Category))
		}
		if strings.TrimSpace(u.Location) != "" {
			upd.Location = common.Some(strings.TrimSpace(u.Location))
		}
		if u.LowStockThreshold != nil && *u.LowStockThreshold >= 0 {
			upd.LowStockThreshold = common.Some(*u.LowStockThreshold)
		}
		if strings.TrimSpace(u.Notes) != "" {
			upd.Notes = common.Some(strings.TrimSpace(u.Notes))
		}
		if u.Expiration.Present {
			if u.Expiration.Null {
				upd.Expiration = common.Null[time.Time]()
			} else if t, ok := normalize.ParseInstant(u.Expiration.Value); ok {
				upd.Expiration = common.Some(t)
			}
		}
		updates = append(updates, upd)
	}

	result, err := t.deps.Engine.Apply(ctx, t.userID, t.action, updates)
	if err != nil {
		t.deps.Logger.Warn("agent.tool.apply_failed", "user_id", t.userID, "error", err)
		return ApplyUpdatesOutput{Error: "apply updates: " + err.Error()}
	}
	t.applied = true
	return ApplyUpdatesOutput{
		Success:  result.Success,
		Outcomes: result.Outcomes,
		Summary:  result.Summary,
	}
}

func marshalPayload(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return errorPayload("encode tool output: " + err.Error())
	}
	return b
}

func errorPayload(msg string) json.RawMessage {
	b, _ := json.Marshal(map[string]string{"error": msg})
	return b
}

// ToolDefinitions returns the function schemas advertised to the controller.
func ToolDefinitions() []llms.Tool {
	return []llms.Tool{
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        ToolFetchContext,
				Description: "Fetch the user's recent inventory (read-only), bounded by count. Use it when the request refers to existing stock.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"limit": map[string]any{
							"type":        "integer",
							"description": "Maximum items to return (default 25, max 100).",
						},
					},
				},
			},
		},
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        ToolParseText,
				Description: "Parse free-form grocery text into structured inventory changes. Pure: no side effects.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"text": map[string]any{
							"type":        "string",
							"description": "The grocery text to parse.",
						},
					},
					"required": []string{"text"},
				},
			},
		},
		{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        ToolApplyUpdates,
				Description: "Apply parsed inventory updates for the user. Side-effecting; call only after summarizing the intended change.",
				Parameters: map[string]any{
					"type": "object",
					"properties": map[string]any{
						"updates": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"name":     map[string]any{"type": "string"},
									"quantity": map[string]any{"type": "number", "minimum": 0},
									"unit":     map[string]any{"type": "string"},
									"action": map[string]any{
										"type": "string",
										"enum": extract.Actions,
									},
									"category":            map[string]any{"type": "string"},
									"location":            map[string]any{"type": "string"},
									"low_stock_threshold": map[string]any{"type": "number", "minimum": 0},
									"expiration":          map[string]any{"type": []string{"string", "null"}},
									"notes":               map[string]any{"type": "string"},
								},
								"required": []string{"name", "quantity", "action"},
							},
						},
					},
					"required": []string{"updates"},
				},
			},
		},
	}
}
