package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"realtime-translator/internal/config"
	"realtime-translator/internal/limiter"
	"realtime-translator/internal/logger"
	"realtime-translator/internal/text"
	"realtime-translator/internal/translation"
	"realtime-translator/models"
	"realtime-translator/services"
)

type handlers struct {
	translator translation.Translator
	history    *services.HistoryStore
	slots      *limiter.Slots
}

// registerRoutes sets up all API routes on the Gin router.
func registerRoutes(router *gin.Engine, h *handlers) {
	api := router.Group("/api")
	api.GET("/health", h.health)
	api.GET("/languages", h.languages)
	api.POST("/translate", h.translate)
	api.GET("/history", h.listHistory)
	api.DELETE("/history", h.clearHistory)
}

type translateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target" binding:"required"`
}

type languageResponse struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Locale string `json:"locale,omitempty"`
}

func (h *handlers) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *handlers) languages(c *gin.Context) {
	toResponse := func(langs []text.Language) []languageResponse {
		out := make([]languageResponse, 0, len(langs))
		for _, l := range langs {
			out = append(out, languageResponse{Code: l.Code, Name: l.Name, Locale: l.Locale})
		}
		return out
	}
	c.JSON(http.StatusOK, gin.H{
		"source": toResponse(text.SourceLanguages()),
		"target": toResponse(text.TargetLanguages()),
	})
}

func (h *handlers) translate(c *gin.Context) {
	var req translateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req.Source = strings.TrimSpace(req.Source)
	if req.Source == "" {
		req.Source = config.AutoLanguage
	}
	if !text.IsValidSourceLanguage(req.Source) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported source language: " + req.Source})
		return
	}
	if !text.IsValidTargetLanguage(req.Target) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported target language: " + req.Target})
		return
	}

	tr := translation.Request{Text: req.Text, Source: req.Source, Target: req.Target}
	if tr.IsEmpty() {
		c.Status(http.StatusNoContent)
		return
	}

	if err := h.slots.Acquire(c.Request.Context(), config.ServerSlotWait); err != nil {
		if errors.Is(err, limiter.ErrBusy) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "translator busy, try later"})
			return
		}
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "client canceled"})
		return
	}
	defer h.slots.Release()

	out, err := h.translator.Translate(c.Request.Context(), tr)
	if err != nil {
		if errors.Is(err, translation.ErrEmptyInput) {
			c.Status(http.StatusNoContent)
			return
		}
		logger.Warn("api translate failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": config.MessageUnavailable})
		return
	}

	if err := h.history.Append(models.NewTranslationRecord(tr.Text, out, tr.Source, tr.Target)); err != nil {
		logger.Warn("api history append failed: %v", err)
	}
	c.JSON(http.StatusOK, translation.Response{TranslatedText: out})
}

func (h *handlers) listHistory(c *gin.Context) {
	c.JSON(http.StatusOK, h.history.Records())
}

func (h *handlers) clearHistory(c *gin.Context) {
	if err := h.history.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
