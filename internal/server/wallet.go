package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	walletdomain "github.com/piadesu/attn-store/internal/wallet/domain"
)

func (s *Server) CreateWalletEntry(c *gin.Context) {
	var req walletdomain.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.walletSvc.Create(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (s *Server) ListWalletEntries(c *gin.Context) {
	req := walletdomain.ListRequest{
		Direction: c.Query("direction"),
		SortBy:    c.Query("sort_by"),
		OrderBy:   c.Query("order_by"),
	}
	if err := c.ShouldBindQuery(&req.Page); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if from, ok := parseDateQuery(c.Query("from")); ok {
		req.From = from
	}
	if to, ok := parseDateQuery(c.Query("to")); ok {
		req.To = to
	}

	resp, err := s.walletSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func parseDateQuery(value string) (*time.Time, bool) {
	if value == "" {
		return nil, false
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, false
	}
	return &parsed, true
}
