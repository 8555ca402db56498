package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pagecraft-backend/internal/models"
	"pagecraft-backend/internal/service"
)

type LanguageHandler struct {
	languages *service.LanguageService
}

func NewLanguageHandler(languages *service.LanguageService) *LanguageHandler {
	return &LanguageHandler{languages: languages}
}

func (h *LanguageHandler) Get(c *gin.Context) {
	defaultLang, supported, err := h.languages.Resolve()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"default_language":    defaultLang,
		"supported_languages": supported,
	})
}

func (h *LanguageHandler) Update(c *gin.Context) {
	var req models.UpdateLanguagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.languages.Update(req.DefaultLanguage, req.SupportedLanguages); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	defaultLang, supported, _ := h.languages.Resolve()
	c.JSON(http.StatusOK, gin.H{
		"default_language":    defaultLang,
		"supported_languages": supported,
	})
}
