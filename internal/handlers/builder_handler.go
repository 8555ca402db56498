package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pagecraft-backend/internal/models"
	"pagecraft-backend/internal/service"
)

// BuilderHandler exposes the page builder operations. Every route lives under
// /api/admin/pages/:id/builder and works on the stored sections of that page.
// The editing language comes from the "lang" query parameter; leaving it out
// edits the default language.
type BuilderHandler struct {
	builder *service.BuilderService
}

func NewBuilderHandler(builder *service.BuilderService) *BuilderHandler {
	return &BuilderHandler{builder: builder}
}

func editingLanguage(c *gin.Context) string {
	return c.Query("lang")
}

// Config returns the section catalog the builder palette is built from.
func (h *BuilderHandler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": h.builder.Definitions()})
}

func (h *BuilderHandler) AddSection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.AddSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	section, err := h.builder.AddSection(id, req, editingLanguage(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"section": section, "selection": h.builder.Selection(id)})
}

func (h *BuilderHandler) UpdateSection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.builder.UpdateSection(id, c.Param("sectionId"), req, editingLanguage(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "section updated"})
}

func (h *BuilderHandler) DeleteSection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	if err := h.builder.DeleteSection(id, c.Param("sectionId"), editingLanguage(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "section deleted", "selection": h.builder.Selection(id)})
}

func (h *BuilderHandler) DuplicateSection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	section, err := h.builder.DuplicateSection(id, c.Param("sectionId"), editingLanguage(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"section": section})
}

func (h *BuilderHandler) ReorderSections(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.builder.ReorderSections(id, req, editingLanguage(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "sections reordered"})
}

func (h *BuilderHandler) UpdateContent(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.UpdateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.builder.UpdateContent(id, c.Param("sectionId"), req, editingLanguage(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "content updated"})
}

// SectionContent returns a section's data merged for the requested language.
func (h *BuilderHandler) SectionContent(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	data, err := h.builder.SectionContent(id, c.Param("sectionId"), editingLanguage(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": data})
}

func (h *BuilderHandler) RemoveTranslation(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	language := c.Param("language")
	if err := h.builder.RemoveTranslation(id, c.Param("sectionId"), language); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "translation removed"})
}

func (h *BuilderHandler) UpdateStyles(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.UpdateStylesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.builder.UpdateStyles(id, c.Param("sectionId"), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "styles updated"})
}

func (h *BuilderHandler) UpdateFieldStyles(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.UpdateFieldStylesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.builder.UpdateFieldStyles(id, c.Param("sectionId"), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "field styles updated"})
}

func (h *BuilderHandler) UpdateItemStyles(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.UpdateItemStylesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.builder.UpdateItemStyles(id, c.Param("sectionId"), req); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item styles updated"})
}

func (h *BuilderHandler) AddItem(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	itemID, err := h.builder.AddItem(id, c.Param("sectionId"), req, editingLanguage(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item_id": itemID})
}

func (h *BuilderHandler) RemoveItem(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.RemoveItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.builder.RemoveItem(id, c.Param("sectionId"), req, editingLanguage(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item removed", "selection": h.builder.Selection(id)})
}

func (h *BuilderHandler) DuplicateItem(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.DuplicateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	itemID, err := h.builder.DuplicateItem(id, c.Param("sectionId"), req, editingLanguage(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"item_id": itemID})
}

func (h *BuilderHandler) UpdateItem(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.builder.UpdateItem(id, c.Param("sectionId"), req, editingLanguage(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item updated"})
}

func (h *BuilderHandler) ReorderItem(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.ReorderItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.builder.ReorderItem(id, c.Param("sectionId"), req, editingLanguage(c)); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item reordered"})
}

func (h *BuilderHandler) Select(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	node, err := h.builder.Select(id, req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"selection": node})
}

func (h *BuilderHandler) ClearSelection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"selection": h.builder.ClearSelection(id)})
}

func (h *BuilderHandler) GetSelection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"selection": h.builder.Selection(id)})
}

// Breadcrumbs returns the selection trail for the page's current selection.
func (h *BuilderHandler) Breadcrumbs(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	crumbs, err := h.builder.Breadcrumbs(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"breadcrumbs": crumbs})
}
