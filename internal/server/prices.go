package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shushruth21/estre/internal/configuration"
)

func (s *Server) GetFormulaSet(c *gin.Context) {
	category := configuration.ParseCategory(strings.TrimSpace(c.Query("category")))

	set, err := s.formulaSvc.ActiveSet(c.Request.Context(), category.FormulaCategory())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": set})
}

func (s *Server) ListFabricPrices(c *gin.Context) {
	codes := splitCodes(c.Query("codes"))
	if len(codes) == 0 {
		AbortWithError(c, newValidationError("codes", "invalid_codes", "at least one fabric code is required"))
		return
	}

	prices, err := s.fabricPriceSvc.PriceByCodes(c.Request.Context(), codes)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": prices})
}

func (s *Server) GetAccessoryTotal(c *gin.Context) {
	codes := splitCodes(c.Query("codes"))
	if len(codes) == 0 {
		AbortWithError(c, newValidationError("codes", "invalid_codes", "at least one accessory code is required"))
		return
	}

	total, err := s.accessorySvc.TotalPrice(c.Request.Context(), codes)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"total_rs": total}})
}

func splitCodes(raw string) []string {
	var codes []string
	for _, code := range strings.Split(raw, ",") {
		if code = strings.TrimSpace(code); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}
