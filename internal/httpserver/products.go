package httpserver

import (
	"log"
	"net/http"

	"catalog-api/internal/domain"
	"github.com/gin-gonic/gin"
)

type productHandler struct {
	svc    ProductService
	logger *log.Logger
}

func (h *productHandler) list(c *gin.Context) {
	products, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	writeProducts(c, products)
}

func (h *productHandler) create(c *gin.Context) {
	var req domain.ProductDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	created, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *productHandler) update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req domain.ProductDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	updated, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *productHandler) delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.Status(http.StatusOK)
}

// get answers null when the product does not exist.
func (h *productHandler) get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	product, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

func (h *productHandler) listByCategory(c *gin.Context) {
	categoryID, ok := pathID(c, "categoriaId")
	if !ok {
		return
	}
	products, err := h.svc.ListByCategory(c.Request.Context(), categoryID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	writeProducts(c, products)
}

func writeProducts(c *gin.Context, products []domain.ProductDTO) {
	if products == nil {
		products = []domain.ProductDTO{}
	}
	c.JSON(http.StatusOK, products)
}
