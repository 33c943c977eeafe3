package services

import (
	"context"
	"strings"

	"realtime-translator/internal/config"
	"realtime-translator/internal/logger"
	"realtime-translator/internal/translation"
	"realtime-translator/internal/worker"
	"realtime-translator/models"
)

// BatchLine is one translated line. Number is 1-based.
type BatchLine struct {
	Number int
	Input  string
	Output string
	Err    error
}

// BatchTranslator translates many independent lines concurrently. Unlike the
// controller, lines never supersede each other.
type BatchTranslator struct {
	translator translation.Translator
	history    *HistoryStore
	workers    int
}

// NewBatchTranslator creates a batch translator. history may be nil.
// workers is clamped to [1, MaxBatchWorkers]; 0 selects the default.
func NewBatchTranslator(tr translation.Translator, history *HistoryStore, workers int) *BatchTranslator {
	switch {
	case workers <= 0:
		workers = config.DefaultBatchWorkers
	case workers > config.MaxBatchWorkers:
		workers = config.MaxBatchWorkers
	}
	return &BatchTranslator{translator: tr, history: history, workers: workers}
}

// Translate returns one BatchLine per input line, in order. Blank lines are
// passed through without a request.
func (b *BatchTranslator) Translate(ctx context.Context, lines []string, source, target string, onProgress worker.ProgressFunc) []BatchLine {
	out := make([]BatchLine, len(lines))
	var pending []int
	for i, line := range lines {
		out[i] = BatchLine{Number: i + 1, Input: line}
		if strings.TrimSpace(line) != "" {
			pending = append(pending, i)
		}
	}

	results := worker.Process(ctx, pending, b.workers,
		func(ctx context.Context, job worker.Job[int]) (string, error) {
			return b.translator.Translate(ctx, translation.Request{
				Text:   lines[job.Data],
				Source: source,
				Target: target,
			})
		}, onProgress)

	failed := 0
	for j, r := range results {
		line := &out[pending[j]]
		if r.Err != nil {
			line.Err = r.Err
			failed++
			continue
		}
		line.Output = r.Value
		if b.history != nil {
			payload := translation.Request{Source: source}.Payload()
			if err := b.history.Append(models.NewTranslationRecord(line.Input, r.Value, payload.Source, target)); err != nil {
				logger.Debug("batch history append: %v", err)
			}
		}
	}
	logger.Info("batch translated %d/%d lines (%d failed)", len(pending)-failed, len(pending), failed)
	return out
}
