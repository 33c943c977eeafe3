package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	internalhttp "realtime-translator/internal/http"
	"realtime-translator/internal/logger"
	"realtime-translator/internal/translation"
)

// FallbackTranslator tries each endpoint in order and returns the first
// non-empty translation. Intermediate failures are only logged.
type FallbackTranslator struct {
	endpoints []string
	client    *EndpointClient
}

// NewFallbackTranslator creates a translator over an ordered endpoint list.
func NewFallbackTranslator(endpoints []string, client *EndpointClient) *FallbackTranslator {
	if client == nil {
		client = NewEndpointClient(nil)
	}
	eps := make([]string, len(endpoints))
	copy(eps, endpoints)
	return &FallbackTranslator{
		endpoints: eps,
		client:    client,
	}
}

// Endpoints returns the endpoint order.
func (t *FallbackTranslator) Endpoints() []string {
	out := make([]string, len(t.endpoints))
	copy(out, t.endpoints)
	return out
}

// Translate implements translation.Translator.
func (t *FallbackTranslator) Translate(ctx context.Context, req translation.Request) (string, error) {
	if req.IsEmpty() {
		return "", translation.ErrEmptyInput
	}

	log := logger.With("request_id", uuid.NewString())
	payload := req.Payload()
	log.Debug("translate %d chars %s -> %s", len(req.Text), payload.Source, payload.Target)

	text, idx, err := internalhttp.FirstSuccess(ctx, len(t.endpoints),
		func(ctx context.Context, i int) (string, error) {
			return t.client.Translate(ctx, t.endpoints[i], payload)
		},
		func(s string) bool { return s != "" },
		func(i int, err error) {
			log.Warn("endpoint %d (%s) failed: %v", i, t.endpoints[i], err)
		},
	)
	if err != nil {
		log.Error("all %d endpoints failed", len(t.endpoints))
		return "", fmt.Errorf("%w: %v", translation.ErrAllEndpointsUnavailable, err)
	}

	log.Debug("translated via endpoint %d", idx)
	return text, nil
}
