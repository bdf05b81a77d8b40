package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	debtdomain "github.com/piadesu/attn-store/internal/debt/domain"
)

func (s *Server) CreateDebtPayment(c *gin.Context) {
	var req debtdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.debtSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListDebtPayments(c *gin.Context) {
	resp, err := s.debtSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) ListOutstandingDebts(c *gin.Context) {
	resp, err := s.debtSvc.Outstanding(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
