package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/shushruth21/estre/internal/catalog/domain"
)

func (s *Server) CreateProduct(c *gin.Context) {
	var req catalogdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		AbortWithError(c, newValidationError("title", "invalid_title", "title is required"))
		return
	}

	product, err := s.catalogSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (s *Server) GetProduct(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	product, err := s.catalogSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": product})
}

func (s *Server) ListProducts(c *gin.Context) {
	filter := catalogdomain.ListFilter{
		Category: strings.TrimSpace(c.Query("category")),
	}

	products, err := s.catalogSvc.List(c.Request.Context(), filter)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}
