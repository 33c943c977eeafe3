package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"realtime-translator/internal/storage"
	"realtime-translator/internal/translation"
	"realtime-translator/models"
	"realtime-translator/services"
)

func setupTestRouter(t *testing.T, tr translation.Translator) (*gin.Engine, *services.HistoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	history := services.NewHistoryStore(storage.NewMemoryStore())
	return NewRouter(StartOpts{Translator: tr, History: history}), history
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var echoTranslator = translation.TranslatorFunc(func(ctx context.Context, req translation.Request) (string, error) {
	if req.Text == "hello" && req.Target == "es" {
		return "hola", nil
	}
	return req.Text + "-" + req.Target, nil
})

func TestStart_NilTranslator(t *testing.T) {
	err := Start(context.Background(), StartOpts{})
	if err == nil {
		t.Fatal("expected error for nil translator")
	}
	if !strings.Contains(err.Error(), "translator is required") {
		t.Errorf("error = %q, want to contain %q", err.Error(), "translator is required")
	}
}

func TestHealth(t *testing.T) {
	router, _ := setupTestRouter(t, echoTranslator)
	w := doRequest(router, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestLanguages(t *testing.T) {
	router, _ := setupTestRouter(t, echoTranslator)
	w := doRequest(router, http.MethodGet, "/api/languages", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body struct {
		Source []languageResponse `json:"source"`
		Target []languageResponse `json:"target"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Source) != 13 || body.Source[0].Code != "auto" {
		t.Errorf("source = %+v", body.Source)
	}
	if len(body.Target) != 12 {
		t.Errorf("len(target) = %d, want 12", len(body.Target))
	}
}

func TestTranslate_Success(t *testing.T) {
	router, history := setupTestRouter(t, echoTranslator)
	w := doRequest(router, http.MethodPost, "/api/translate", `{"text":"hello","target":"es"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var resp translation.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.TranslatedText != "hola" {
		t.Errorf("translatedText = %q, want 'hola'", resp.TranslatedText)
	}

	records := history.Records()
	if len(records) != 1 || records[0].Source != "auto" || records[0].Output != "hola" {
		t.Errorf("history = %+v", records)
	}
}

func TestTranslate_StatusCodes(t *testing.T) {
	failing := translation.TranslatorFunc(func(ctx context.Context, req translation.Request) (string, error) {
		return "", translation.ErrAllEndpointsUnavailable
	})

	tests := []struct {
		name       string
		tr         translation.Translator
		body       string
		wantStatus int
	}{
		{"empty text", echoTranslator, `{"text":"  ","target":"es"}`, http.StatusNoContent},
		{"missing target", echoTranslator, `{"text":"hi"}`, http.StatusBadRequest},
		{"auto target", echoTranslator, `{"text":"hi","target":"auto"}`, http.StatusBadRequest},
		{"bad source", echoTranslator, `{"text":"hi","source":"xx","target":"es"}`, http.StatusBadRequest},
		{"malformed", echoTranslator, `{`, http.StatusBadRequest},
		{"unavailable", failing, `{"text":"hi","target":"es"}`, http.StatusServiceUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, history := setupTestRouter(t, tt.tr)
			w := doRequest(router, http.MethodPost, "/api/translate", tt.body)
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if history.Len() != 0 {
				t.Errorf("history len = %d, want 0", history.Len())
			}
		})
	}
}

func TestTranslate_UnavailableMessage(t *testing.T) {
	failing := translation.TranslatorFunc(func(ctx context.Context, req translation.Request) (string, error) {
		return "", errors.New("boom")
	})
	router, _ := setupTestRouter(t, failing)
	w := doRequest(router, http.MethodPost, "/api/translate", `{"text":"hi","target":"es"}`)

	var body map[string]string
	json.Unmarshal(w.Body.Bytes(), &body)
	if !strings.Contains(body["error"], "unavailable") {
		t.Errorf("error = %q, want unavailable message", body["error"])
	}
}

func TestHistory_ListAndClear(t *testing.T) {
	router, history := setupTestRouter(t, echoTranslator)
	history.Append(models.NewTranslationRecord("cat", "gato", "en", "es"))

	w := doRequest(router, http.MethodGet, "/api/history", "")
	var records []models.TranslationRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(records) != 1 || records[0].Output != "gato" {
		t.Errorf("records = %+v", records)
	}

	w = doRequest(router, http.MethodDelete, "/api/history", "")
	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if history.Len() != 0 {
		t.Errorf("history len = %d, want 0", history.Len())
	}
}

func TestTranslate_BusyReturns429(t *testing.T) {
	gin.SetMode(gin.TestMode)
	started := make(chan struct{})
	release := make(chan struct{})
	blocking := translation.TranslatorFunc(func(ctx context.Context, req translation.Request) (string, error) {
		close(started)
		<-release
		return "ok", nil
	})
	router := NewRouter(StartOpts{Translator: blocking, MaxConcurrent: 1})

	done := make(chan int)
	go func() {
		done <- doRequest(router, http.MethodPost, "/api/translate", `{"text":"one","target":"es"}`).Code
	}()
	<-started

	w := doRequest(router, http.MethodPost, "/api/translate", `{"text":"two","target":"es"}`)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", w.Code)
	}

	close(release)
	if code := <-done; code != http.StatusOK {
		t.Errorf("first request status = %d, want 200", code)
	}
}
