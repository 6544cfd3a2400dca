package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetJobCard(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))

	card, err := s.jobCardSvc.Get(c.Request.Context(), number)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": card})
}

func (s *Server) GetJobCardPDF(c *gin.Context) {
	number := strings.TrimSpace(c.Param("number"))

	card, err := s.jobCardSvc.Get(c.Request.Context(), number)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	doc, err := s.jobCardPDF.RenderJobCard(c.Request.Context(), card.Data.Data())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+card.Number+`.pdf"`)
	c.Header("Content-Type", "application/pdf")
	if _, err := io.Copy(c.Writer, doc); err != nil {
		AbortWithError(c, err)
	}
}
