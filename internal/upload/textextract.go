package upload

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/pantryops/pantryd/constants"
	"github.com/pantryops/pantryd/internal/extract"
)

// Runner lets us stub external commands in tests.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	err := cmd.Run()
	dur := time.Since(start)

	if err != nil {
		slog.Error("exec failed",
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration_ms", dur.Milliseconds(),
			"error", err,
			"stderr", truncate(errb.String(), 8<<10),
		)
	} else {
		slog.Debug("exec ok",
			"cmd", name,
			"args", strings.Join(args, " "),
			"duration_ms", dur.Milliseconds(),
			"stdout_bytes", out.Len(),
		)
	}

	return out.Bytes(), errb.Bytes(), err
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "...(truncated)"
}

// TextExtractor turns an uploaded blob into grocery text for ingestion:
// plain text passes through, PDFs go through pdftotext, images go through the
// vision-capable extraction path and come back as reconstructed sentences.
type TextExtractor struct {
	extractor *extract.Service
	runner    Runner
	pdftotext string
	logger    *slog.Logger
}

func NewTextExtractor(extractor *extract.Service, logger *slog.Logger) *TextExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &TextExtractor{
		extractor: extractor,
		runner:    execRunner{},
		pdftotext: "pdftotext",
		logger:    logger,
	}
}

// Extract returns the text form of blob for the given source type.
func (t *TextExtractor) Extract(ctx context.Context, blob []byte, contentType string, sourceType constants.SourceType) (string, error) {
	switch sourceType {
	case constants.SourceText:
		return string(blob), nil
	case constants.SourcePDF:
		return t.pdfToText(ctx, blob)
	case constants.SourceImageReceipt, constants.SourceImageList:
		return t.imageToText(ctx, blob, contentType, sourceType)
	default:
		// best effort: treat printable blobs as text
		if isMostlyText(blob) {
			return string(blob), nil
		}
		return "", fmt.Errorf("cannot extract text from source type %q", sourceType)
	}
}

// pdfToText shells out to pdftotext, reading from a temp file and writing to
// stdout. A form-feed \f separates pages.
func (t *TextExtractor) pdfToText(ctx context.Context, blob []byte) (string, error) {
	tmp, err := os.CreateTemp("", "pantryd-pdf-*.pdf")
	if err != nil {
		return "", fmt.Errorf("create temp pdf: %w", err)
	}
	defer func(path string) {
		if err := os.Remove(path); err != nil {
			t.logger.Warn("upload.tmp_remove_failed", "path", path, "error", err)
		}
	}(tmp.Name())

	if _, err := tmp.Write(blob); err != nil {
		_ = tmp.Close()
		return "", fmt.Errorf("write temp pdf: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close temp pdf: %w", err)
	}

	out, errb, err := t.runner.Run(ctx, t.pdftotext, "-layout", "-enc", "UTF-8", "-eol", "unix", tmp.Name(), "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w (%s)", err, truncate(string(errb), 512))
	}
	text := string(out)
	t.logger.Info("upload.pdf_extracted", "pages", 1+strings.Count(text, "\f"), "chars", len(text))
	return text, nil
}

// imageToText runs vision extraction and reconstructs the items as plain
// grocery sentences, so the downstream parse tool sees the same shape of
// input as typed text.
func (t *TextExtractor) imageToText(ctx context.Context, blob []byte, contentType string, sourceType constants.SourceType) (string, error) {
	res := t.extractor.ParseImage(ctx, blob, contentType, string(sourceType))
	if res.Error != "" && len(res.Items) == 0 {
		return "", fmt.Errorf("vision extraction: %s", res.Error)
	}
	return ItemsToText(res.Items), nil
}

// ItemsToText renders extracted items back into one grocery sentence per
// item, e.g. "bought 2 gallon of milk".
func ItemsToText(items []extract.ExtractedItem) string {
	verbs := map[string]string{
		extract.ActionAdd:      "bought",
		extract.ActionSubtract: "used",
		extract.ActionSet:      "have",
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		verb, ok := verbs[it.Action]
		if !ok {
			verb = "bought"
		}
		unit := it.Unit
		if unit == "" {
			unit = constants.DefaultUnit
		}
		lines = append(lines, fmt.Sprintf("%s %g %s of %s", verb, it.Quantity, unit, it.Name))
	}
	return strings.Join(lines, "\n")
}

func isMostlyText(blob []byte) bool {
	if len(blob) == 0 {
		return false
	}
	sample := blob
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	printable := 0
	for _, b := range sample {
		if b == '\n' || b == '\r' || b == '\t' || (b >= 0x20 && b < 0x7f) || b >= 0x80 {
			printable++
		}
	}
	return printable*10 >= len(sample)*9
}
