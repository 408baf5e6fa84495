package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListRecipes serves the full recipe collection. The one endpoint that maps
// an internal error to HTTP 500; an empty collection is a 200 with [].
func (h *Handler) ListRecipes(c *gin.Context) {
	recipes, err := h.Recipes.ListRecipes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(recipes), "data": recipes})
}
