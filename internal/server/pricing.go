package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shushruth21/estre/internal/console"
	"github.com/shushruth21/estre/internal/fabric"
)

func (s *Server) CalculateQuote(c *gin.Context) {
	var req configurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	cfg := req.toDomain()
	quote, err := s.pricingSvc.Calculate(c.Request.Context(), &cfg)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": quote})
}

func (s *Server) CalculateFabricRequirements(c *gin.Context) {
	var req configurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	cfg := req.toDomain()
	if cfg.ProductID == 0 {
		AbortWithError(c, newValidationError("product_id", "invalid_product", "invalid product id"))
		return
	}

	product, err := s.catalogSvc.Get(c.Request.Context(), cfg.ProductID.String())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	entries := fabric.CalculateRequirements(cfg.Category, product.FabricRequirements.Data(), &cfg)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"entries":      entries,
			"total_meters": fabric.TotalMeters(entries),
		},
	})
}

func (s *Server) ListConsolePlacements(c *gin.Context) {
	var req configurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	cfg := req.toDomain()
	c.JSON(http.StatusOK, gin.H{"data": console.GenerateAllPlacements(&cfg)})
}
