package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	analyticsdomain "github.com/piadesu/attn-store/internal/analytics/domain"
)

func (s *Server) Analytics(c *gin.Context) {
	var req analyticsdomain.OverviewRequest
	if raw := c.Query("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			AbortWithError(c, invalidRequestError())
			return
		}
		req.Days = days
	}

	resp, err := s.analyticsSvc.Overview(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
