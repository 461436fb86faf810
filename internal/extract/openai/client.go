package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/extract"
)

// ExtractText implements extract.Provider using text-only chat/completions.
func (c *Client) ExtractText(ctx context.Context, text string) (extract.ExtractionResult, error) {
	messages := []map[string]any{
		{"role": "system", "content": buildSystemPrompt()},
		{"role": "user", "content": buildUserPrompt(text) + "\n\nReturn ONLY JSON that matches the provided schema."},
		{"role": "system", "content": "JSON Schema:\n" + mustJSON(extract.BuildItemsJSONSchema(constants.AllCategories()))},
	}
	return c.extract(ctx, c.cfg.Model, messages, len(text))
}

// ExtractImage implements the vision path: the image travels as a data-URI
// content part on the user message.
func (c *Client) ExtractImage(ctx context.Context, image []byte, imageType string, hint string) (extract.ExtractionResult, error) {
	if len(image) == 0 {
		return extract.ExtractionResult{}, fmt.Errorf("empty image")
	}
	mime := imageType
	if !strings.Contains(mime, "/") {
		mime = "image/" + strings.TrimPrefix(mime, ".")
	}
	dataURI := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(image)

	messages := []map[string]any{
		{"role": "system", "content": buildSystemPrompt()},
		{"role": "user", "content": []map[string]any{
			{"type": "text", "text": buildImagePrompt(hint) + "\n\nReturn ONLY JSON that matches the provided schema."},
			{"type": "image_url", "image_url": map[string]any{"url": dataURI}},
		}},
		{"role": "system", "content": "JSON Schema:\n" + mustJSON(extract.BuildItemsJSONSchema(constants.AllCategories()))},
	}
	return c.extract(ctx, c.cfg.VisionModel, messages, len(image))
}

func (c *Client) extract(ctx context.Context, model string, messages []map[string]any, inputLen int) (extract.ExtractionResult, error) {
	rid := uuid.New().String()
	start := time.Now()

	c.log.Info("llm.extract.start",
		"req_id", rid,
		"model", model,
		"temp", c.cfg.Temperature,
		"input_len", inputLen,
	)

	body := map[string]any{
		"model":           model,
		"temperature":     c.cfg.Temperature,
		"response_format": map[string]any{"type": "json_object"},
		"messages":        messages,
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, httpErr := c.post(ctx, endpoint, body)
	if httpErr != nil {
		c.log.Error("llm.extract.http_error",
			"req_id", rid, "error", httpErr,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.ExtractionResult{}, httpErr
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		c.log.Error("llm.extract.decode_error",
			"req_id", rid, "error", err, "raw_bytes", len(raw),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.ExtractionResult{}, fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		c.log.Error("llm.extract.no_choices",
			"req_id", rid,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.ExtractionResult{}, fmt.Errorf("no choices in openai response")
	}
	rawContent := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	schema := extract.BuildItemsJSONSchema(constants.AllCategories())
	if err := extract.ValidateJSONAgainstSchema(schema, rawContent); err != nil {
		if !c.cfg.LenientOptional {
			c.log.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return extract.ExtractionResult{}, fmt.Errorf("schema validation failed: %w", err)
		}
		cleaned, dropped, sErr := extract.NormalizeAndSanitizeJSON(rawContent, c.log)
		if sErr != nil {
			c.log.Error("llm.extract.sanitize_failed",
				"req_id", rid, "error", sErr,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return extract.ExtractionResult{}, fmt.Errorf("sanitize failed: %w", sErr)
		}
		if vErr := extract.ValidateJSONAgainstSchema(schema, cleaned); vErr != nil {
			c.log.Error("llm.extract.schema_validation_failed",
				"req_id", rid, "error", vErr, "dropped", dropped,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return extract.ExtractionResult{}, fmt.Errorf("schema validation failed: %w", vErr)
		}
		c.log.Warn("llm.extract.lenient_sanitize_applied",
			"req_id", rid, "dropped", dropped,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		rawContent = cleaned
	}

	var out extract.ExtractionResult
	if err := json.Unmarshal(rawContent, &out); err != nil {
		c.log.Error("llm.extract.unmarshal_failed",
			"req_id", rid, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return extract.ExtractionResult{}, fmt.Errorf("unmarshal extraction result: %w", err)
	}

	c.log.Info("llm.extract.ok",
		"req_id", rid,
		"items", len(out.Items),
		"overall_confidence", out.OverallConfidence,
		"needs_review", out.NeedsReview,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			c.log.Warn("openai response body close error", "error", err)
		}
	}(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		_, _ = buf.ReadFrom(resp.Body)
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	return buf.Bytes(), nil
}

func mustJSON(v any) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}
