package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	notificationdomain "github.com/piadesu/attn-store/internal/notification/domain"
)

func (s *Server) ListNotifications(c *gin.Context) {
	req := notificationdomain.ListRequest{
		UnreadOnly: strings.EqualFold(c.Query("unread"), "true"),
	}

	resp, err := s.notificationSvc.List(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) MarkNotificationRead(c *gin.Context) {
	resp, err := s.notificationSvc.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
