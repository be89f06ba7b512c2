package httpserver

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"catalog-api/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps domain errors to status codes. Unknown errors are logged
// and reported as 500 without detail.
func writeError(c *gin.Context, logger *log.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrCategoryRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "categoriaId required"})
	case errors.Is(err, domain.ErrCategoryNotFound):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "category not found"})
	case errors.Is(err, domain.ErrCategoryInUse):
		c.JSON(http.StatusConflict, gin.H{"error": "category is referenced by products"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		logger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
