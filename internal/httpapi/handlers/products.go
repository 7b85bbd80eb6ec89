package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/suphakit/gpu-advisor/internal/catalog"
	"github.com/suphakit/gpu-advisor/internal/common"
)

func (h *Handler) Ping(c *gin.Context) {
	common.OK(c, gin.H{"pong": true})
}

// ListProducts exposes the catalog for operators.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.Catalog.FetchAll(c.Request.Context())
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50001, "failed to fetch catalog")
		return
	}
	common.OK(c, gin.H{
		"count":    len(products),
		"products": products,
	})
}

type upsertProductReq struct {
	Name     string `json:"name" binding:"required"`
	Price    string `json:"price" binding:"required"`
	Image    string `json:"img"`
	URL      string `json:"url"`
	SpecText string `json:"additional_data"`
}

// UpsertProduct inserts or replaces one catalog record by name; same
// idempotency as the ingest path.
func (h *Handler) UpsertProduct(c *gin.Context) {
	var req upsertProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		common.Fail(c, http.StatusBadRequest, 10001, "invalid json")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		common.Fail(c, http.StatusBadRequest, 10003, "name required")
		return
	}

	p := &catalog.Product{
		Name:     req.Name,
		Price:    req.Price,
		Image:    req.Image,
		URL:      req.URL,
		SpecText: req.SpecText,
	}
	if err := h.Catalog.Upsert(c.Request.Context(), p); err != nil {
		common.Fail(c, http.StatusInternalServerError, 50002, "failed to upsert product")
		return
	}
	common.OK(c, gin.H{"name": p.Name})
}

// ListInteractions returns the recent logged turns for one user.
func (h *Handler) ListInteractions(c *gin.Context) {
	userID := c.Param("user_id")
	if userID == "" {
		common.Fail(c, http.StatusBadRequest, 10004, "user_id required")
		return
	}

	recs, err := h.Interactions.ListByUser(c.Request.Context(), userID, 50)
	if err != nil {
		common.Fail(c, http.StatusInternalServerError, 50003, "failed to list interactions")
		return
	}
	common.OK(c, gin.H{"interactions": recs})
}
