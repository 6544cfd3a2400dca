package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListDropdownOptions(c *gin.Context) {
	kind := strings.TrimSpace(c.Query("kind"))
	if kind == "" {
		AbortWithError(c, newValidationError("kind", "invalid_kind", "invalid kind"))
		return
	}

	options, err := s.refrepo.ListOptionsByKind(c.Request.Context(), kind)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": options})
}

func (s *Server) ListCategorySettings(c *gin.Context) {
	category := strings.TrimSpace(c.Query("category"))
	if category == "" {
		AbortWithError(c, newValidationError("category", "invalid_category", "invalid category"))
		return
	}

	settings, err := s.refrepo.ListSettingsByCategory(c.Request.Context(), category)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": settings})
}

func (s *Server) RecentOperations(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.monitor.Recent()})
}
