package services

import (
	"context"
	"sync"

	"realtime-translator/internal/logger"
	"realtime-translator/internal/translation"
	"realtime-translator/models"
)

// TranslationController runs at most one translation at a time. Each call
// cancels the previous one and bumps a generation counter; a result whose
// generation is no longer current is reported as superseded and discarded.
type TranslationController struct {
	translator translation.Translator
	history    *HistoryStore

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// NewTranslationController creates a controller. history may be nil.
func NewTranslationController(translator translation.Translator, history *HistoryStore) *TranslationController {
	return &TranslationController{
		translator: translator,
		history:    history,
	}
}

// Translate translates text, appending a history record on success.
func (c *TranslationController) Translate(ctx context.Context, text, source, target string) translation.Outcome {
	return c.Begin(ctx, text, source, target).Run()
}

// Call is a translation whose generation has been reserved but which has not
// run yet. Reserving supersedes every earlier call, so callers that need
// request order must call Begin in that order.
type Call struct {
	c      *TranslationController
	req    translation.Request
	gen    uint64
	ctx    context.Context
	cancel context.CancelFunc
}

// Begin reserves the next generation for text and cancels the previous call.
func (c *TranslationController) Begin(ctx context.Context, text, source, target string) *Call {
	call := &Call{c: c, req: translation.Request{Text: text, Source: source, Target: target}}

	c.mu.Lock()
	defer c.mu.Unlock()
	call.gen = c.invalidateLocked()
	if call.req.IsEmpty() {
		return call
	}
	call.ctx, call.cancel = context.WithCancel(ctx)
	c.cancel = call.cancel
	return call
}

// Generation returns the generation reserved for the call.
func (call *Call) Generation() uint64 {
	return call.gen
}

// Run performs the reserved call. A call superseded before or during the
// request reports OutcomeSuperseded and leaves history untouched.
func (call *Call) Run() translation.Outcome {
	c, req, gen := call.c, call.req, call.gen
	if call.cancel == nil {
		return translation.Outcome{Kind: translation.OutcomeEmpty, Generation: gen}
	}

	result, err := c.translator.Translate(call.ctx, req)

	c.mu.Lock()
	defer c.mu.Unlock()
	call.cancel()
	if gen != c.generation {
		logger.Debug("translation %d superseded by %d", gen, c.generation)
		return translation.Outcome{Kind: translation.OutcomeSuperseded, Err: translation.ErrSuperseded, Generation: gen}
	}
	c.cancel = nil

	if err != nil {
		return translation.Outcome{Kind: translation.OutcomeFailure, Err: err, Generation: gen}
	}

	if c.history != nil {
		record := models.NewTranslationRecord(req.Text, result, req.Payload().Source, req.Target)
		if err := c.history.Append(record); err != nil {
			logger.Warn("history append failed: %v", err)
		}
	}
	return translation.Outcome{Kind: translation.OutcomeSuccess, Text: result, Generation: gen}
}

// Cancel aborts any in-flight translation so its result is discarded.
func (c *TranslationController) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidateLocked()
}

// Generation returns the current request generation.
func (c *TranslationController) Generation() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

func (c *TranslationController) invalidateLocked() uint64 {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.generation++
	return c.generation
}
