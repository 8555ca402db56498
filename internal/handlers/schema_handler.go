package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pagecraft-backend/internal/schema"
)

// SchemaHandler serves the section definition catalog to public consumers
// such as the rendering frontend.
type SchemaHandler struct {
	registry *schema.Registry
}

func NewSchemaHandler(registry *schema.Registry) *SchemaHandler {
	return &SchemaHandler{registry: registry}
}

func (h *SchemaHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": h.registry.All()})
}

func (h *SchemaHandler) Get(c *gin.Context) {
	def, ok := h.registry.Get(c.Param("type"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown section type"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"section": def})
}
