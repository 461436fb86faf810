package agent

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/tmc/langchaingo/llms"

	"github.com/pantryops/pantryd/internal/extract"
	"github.com/pantryops/pantryd/internal/inventory"
)

type fakeModel struct {
	responses []*llms.ContentResponse
	err       error
	calls     int
}

func (m *fakeModel) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.calls >= len(m.responses) {
		// keep replaying the last scripted turn
		return m.responses[len(m.responses)-1], nil
	}
	resp := m.responses[m.calls]
	m.calls++
	return resp, nil
}

func (m *fakeModel) Call(_ context.Context, _ string, _ ...llms.CallOption) (string, error) {
	return "", errors.New("not used")
}

type fakeInvStore struct {
	records map[uuid.UUID]inventory.Record
}

func newFakeInvStore() *fakeInvStore {
	return &fakeInvStore{records: map[uuid.UUID]inventory.Record{}}
}

func (s *fakeInvStore) SnapshotFor(_ context.Context, userID string) ([]inventory.Record, error) {
	var out []inventory.Record
	for _, r := range s.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeInvStore) Create(_ context.Context, rec inventory.Record) (inventory.Record, error) {
	rec.ID = uuid.New()
	s.records[rec.ID] = rec
	return rec, nil
}

func (s *fakeInvStore) Update(_ context.Context, id uuid.UUID, mut inventory.Mutation) (inventory.Record, error) {
	rec, ok := s.records[id]
	if !ok {
		return inventory.Record{}, errors.New("record not found")
	}
	if mut.Quantity != nil {
		rec.Quantity = *mut.Quantity
	}
	if mut.Unit != nil {
		rec.Unit = *mut.Unit
	}
	s.records[id] = rec
	return rec, nil
}

func (s *fakeInvStore) RecentInventory(_ context.Context, userID string, limit int) ([]inventory.Record, error) {
	recs, _ := s.SnapshotFor(context.Background(), userID)
	if len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

func (s *fakeInvStore) byName(userID, name string) (inventory.Record, bool) {
	for _, r := range s.records {
		if r.UserID == userID && strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return inventory.Record{}, false
}

type fakeProvider struct {
	res extract.ExtractionResult
	err error
}

func (p *fakeProvider) ExtractText(_ context.Context, _ string) (extract.ExtractionResult, error) {
	return p.res, p.err
}

func (p *fakeProvider) ExtractImage(_ context.Context, _ []byte, _, _ string) (extract.ExtractionResult, error) {
	return p.res, p.err
}

type invocationRecord struct {
	callID string
	name   string
	args   json.RawMessage
	output json.RawMessage
	done   bool
}

type fakeInvocations struct {
	records []*invocationRecord
}

func (f *fakeInvocations) StartInvocation(_ context.Context, _ uuid.UUID, callID, name string, args json.RawMessage) error {
	f.records = append(f.records, &invocationRecord{callID: callID, name: name, args: args})
	return nil
}

func (f *fakeInvocations) CompleteInvocation(_ context.Context, _ uuid.UUID, callID string, output json.RawMessage) error {
	for _, r := range f.records {
		if r.callID == callID {
			r.output = output
			r.done = true
			return nil
		}
	}
	return errors.New("no started invocation for call " + callID)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testDeps(t *testing.T, store *fakeInvStore, provider extract.Provider, inv InvocationStore) *Dependencies {
	t.Helper()
	logger := discardLogger()
	fb, err := extract.NewFallbackParser(logger)
	if err != nil {
		t.Fatalf("NewFallbackParser: %v", err)
	}
	return &Dependencies{
		Engine:      inventory.NewEngine(store, nil, logger),
		Extractor:   extract.NewService(provider, fb, time.Second, logger),
		Context:     store,
		Invocations: inv,
		Logger:      logger,
	}
}

func toolCall(id, name, args string) llms.ToolCall {
	return llms.ToolCall{
		ID:           id,
		Type:         "function",
		FunctionCall: &llms.FunctionCall{Name: name, Arguments: args},
	}
}

func textTurn(content string) *llms.ContentResponse {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: content}}}
}

func toolTurn(calls ...llms.ToolCall) *llms.ContentResponse {
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{ToolCalls: calls}}}
}

func textJob(text string) IngestionJob {
	return IngestionJob{ID: uuid.New(), UserID: "alice", InputText: &text}
}

func TestRunnerToolLoopAppliesUpdates(t *testing.T) {
	store := newFakeInvStore()
	invocations := &fakeInvocations{}
	provider := &fakeProvider{res: extract.ExtractionResult{
		Items: []extract.ExtractedItem{
			{Name: "milk", Quantity: 2, Unit: "gallon", Action: "add", Confidence: 0.95},
		},
		OverallConfidence: 0.95,
	}}
	deps := testDeps(t, store, provider, invocations)

	model := &fakeModel{responses: []*llms.ContentResponse{
		toolTurn(toolCall("call-1", ToolParseText, `{"text":"bought 2 gallons of milk"}`)),
		toolTurn(toolCall("call-2", ToolApplyUpdates, `{"updates":[{"name":"Milk","quantity":2,"unit":"gallon","action":"add"}]}`)),
		textTurn("Added 2 gallons of milk."),
	}}
	runner := NewRunner(model, deps, 8, discardLogger())

	info, err := runner.Run(context.Background(), textJob("bought 2 gallons of milk"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if info.Response != "Added 2 gallons of milk." {
		t.Errorf("Response = %q", info.Response)
	}
	if info.Turns != 3 {
		t.Errorf("Turns = %d, want 3", info.Turns)
	}
	if info.Summary != "inventory updated" {
		t.Errorf("Summary = %q", info.Summary)
	}
	if info.UsedFallback {
		t.Error("UsedFallback = true with a healthy provider")
	}
	if info.Confidence == nil || *info.Confidence != 0.95 {
		t.Errorf("Confidence = %v, want 0.95", info.Confidence)
	}

	rec, ok := store.byName("alice", "milk")
	if !ok || rec.Quantity != 2 {
		t.Errorf("stored record = %+v, ok=%v", rec, ok)
	}

	if len(invocations.records) != 2 {
		t.Fatalf("invocations = %d, want 2", len(invocations.records))
	}
	for _, r := range invocations.records {
		if !r.done {
			t.Errorf("invocation %s (%s) never completed", r.callID, r.name)
		}
	}
}

func TestRunnerDirectAnswerWithoutTools(t *testing.T) {
	deps := testDeps(t, newFakeInvStore(), &fakeProvider{}, nil)
	model := &fakeModel{responses: []*llms.ContentResponse{
		textTurn("Nothing to change."),
	}}
	runner := NewRunner(model, deps, 8, discardLogger())

	info, err := runner.Run(context.Background(), textJob("just saying hi"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if info.Turns != 1 || info.Response != "Nothing to change." {
		t.Errorf("info = %+v", info)
	}
	if info.Summary != "no changes applied" {
		t.Errorf("Summary = %q", info.Summary)
	}
}

func TestRunnerFallbackFlagsPropagate(t *testing.T) {
	store := newFakeInvStore()
	provider := &fakeProvider{err: errors.New("provider down")}
	deps := testDeps(t, store, provider, nil)

	model := &fakeModel{responses: []*llms.ContentResponse{
		toolTurn(toolCall("call-1", ToolParseText, `{"text":"bought 2 gallons of milk"}`)),
		textTurn("Parsed with the keyword fallback, nothing applied."),
	}}
	runner := NewRunner(model, deps, 8, discardLogger())

	info, err := runner.Run(context.Background(), textJob("bought 2 gallons of milk"))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !info.UsedFallback {
		t.Error("UsedFallback = false after a fallback parse")
	}
	if info.Summary != "parsed with fallback, nothing applied" {
		t.Errorf("Summary = %q", info.Summary)
	}
}

func TestRunnerUnknownToolBecomesErrorPayload(t *testing.T) {
	invocations := &fakeInvocations{}
	deps := testDeps(t, newFakeInvStore(), &fakeProvider{}, invocations)

	model := &fakeModel{responses: []*llms.ContentResponse{
		toolTurn(toolCall("call-1", "delete_everything", `{}`)),
		textTurn("That tool does not exist."),
	}}
	runner := NewRunner(model, deps, 8, discardLogger())

	if _, err := runner.Run(context.Background(), textJob("whatever")); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(invocations.records) != 1 {
		t.Fatalf("invocations = %d, want 1", len(invocations.records))
	}
	if !strings.Contains(string(invocations.records[0].output), "unknown tool") {
		t.Errorf("output = %s, want an unknown-tool error payload", invocations.records[0].output)
	}
}

func TestRunnerEmptyInputFails(t *testing.T) {
	deps := testDeps(t, newFakeInvStore(), &fakeProvider{}, nil)
	runner := NewRunner(&fakeModel{}, deps, 8, discardLogger())

	empty := "   "
	if _, err := runner.Run(context.Background(), IngestionJob{ID: uuid.New(), UserID: "alice", InputText: &empty}); err == nil {
		t.Fatal("expected error for empty input text")
	}
	if _, err := runner.Run(context.Background(), IngestionJob{ID: uuid.New(), UserID: "alice"}); err == nil {
		t.Fatal("expected error for nil input text")
	}
}

func TestRunnerControllerErrorPropagates(t *testing.T) {
	deps := testDeps(t, newFakeInvStore(), &fakeProvider{}, nil)
	model := &fakeModel{err: errors.New("rate limited")}
	runner := NewRunner(model, deps, 8, discardLogger())

	if _, err := runner.Run(context.Background(), textJob("bought milk")); err == nil {
		t.Fatal("expected controller error")
	}
}

func TestRunnerTurnBudget(t *testing.T) {
	deps := testDeps(t, newFakeInvStore(), &fakeProvider{}, nil)
	// the model never stops calling tools
	model := &fakeModel{responses: []*llms.ContentResponse{
		toolTurn(toolCall("call-1", ToolParseText, `{"text":"bought milk"}`)),
	}}
	runner := NewRunner(model, deps, 3, discardLogger())

	info, err := runner.Run(context.Background(), textJob("bought milk"))
	if err == nil {
		t.Fatal("expected turn budget error")
	}
	if info.Turns != 3 {
		t.Errorf("Turns = %d, want the budget of 3", info.Turns)
	}
}

func TestToolsetDispatch(t *testing.T) {
	store := newFakeInvStore()
	store.records[uuid.New()] = inventory.Record{
		UserID: "alice", Name: "Milk", Quantity: 0.5, Unit: "gallon",
		Category: "dairy", LowStockThreshold: 1,
	}
	deps := testDeps(t, store, &fakeProvider{}, nil)
	tools := NewToolset(deps, "alice", "agent")

	t.Run("fetch context marks low stock", func(t *testing.T) {
		out := tools.Dispatch(context.Background(), ToolFetchContext, json.RawMessage(`{}`))
		var payload FetchContextOutput
		if err := json.Unmarshal(out, &payload); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if len(payload.Items) != 1 || !payload.Items[0].LowStock {
			t.Errorf("payload = %+v", payload)
		}
	})

	t.Run("malformed arguments return error payload", func(t *testing.T) {
		out := tools.Dispatch(context.Background(), ToolParseText, json.RawMessage(`{not json`))
		if !strings.Contains(string(out), "invalid arguments") {
			t.Errorf("output = %s", out)
		}
	})

	t.Run("apply rejects empty batch", func(t *testing.T) {
		out := tools.Dispatch(context.Background(), ToolApplyUpdates, json.RawMessage(`{"updates":[]}`))
		if !strings.Contains(string(out), "no updates provided") {
			t.Errorf("output = %s", out)
		}
		if tools.Applied() {
			t.Error("Applied = true without a committed batch")
		}
	})

	t.Run("apply clamps negative quantities", func(t *testing.T) {
		args := `{"updates":[{"name":"Butter","quantity":-2,"action":"add"}]}`
		out := tools.Dispatch(context.Background(), ToolApplyUpdates, json.RawMessage(args))
		var payload ApplyUpdatesOutput
		if err := json.Unmarshal(out, &payload); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !payload.Success {
			t.Fatalf("payload = %+v", payload)
		}
		rec, ok := store.byName("alice", "butter")
		if !ok {
			t.Fatal("butter not stored")
		}
		if rec.Quantity != 0 {
			t.Errorf("quantity = %v, want 0", rec.Quantity)
		}
	})

	t.Run("apply normalizes expiration and unit", func(t *testing.T) {
		args := `{"updates":[{"name":"Eggs","quantity":1,"unit":"Dozen","action":"ADD","expiration":"2026-09-15"}]}`
		out := tools.Dispatch(context.Background(), ToolApplyUpdates, json.RawMessage(args))
		var payload ApplyUpdatesOutput
		if err := json.Unmarshal(out, &payload); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if !payload.Success {
			t.Fatalf("payload = %+v", payload)
		}
		rec, ok := store.byName("alice", "eggs")
		if !ok {
			t.Fatal("eggs not stored")
		}
		if rec.Unit != "dozen" {
			t.Errorf("unit = %q, want dozen", rec.Unit)
		}
		if rec.Expiration == nil || !rec.Expiration.Equal(time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expiration = %v", rec.Expiration)
		}
		if !tools.Applied() {
			t.Error("Applied = false after a committed batch")
		}
	})
}
