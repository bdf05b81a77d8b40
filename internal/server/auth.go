package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	accountdomain "github.com/piadesu/attn-store/internal/account/domain"
)

func (s *Server) Signup(c *gin.Context) {
	var req accountdomain.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	profile, err := s.accountSvc.Signup(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, profile)
}

func (s *Server) Login(c *gin.Context) {
	var req accountdomain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	if ok, _ := s.loginLimiter.Allow(c.Request.Context(), req.Username, c.ClientIP()); !ok {
		AbortWithError(c, ErrTooManyRequests)
		return
	}

	req.UserAgent = c.Request.UserAgent()
	req.IPAddress = c.ClientIP()

	result, err := s.accountSvc.Login(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	s.sessions.Set(c, result.RawToken, result.ExpiresAt)

	c.JSON(http.StatusOK, gin.H{
		"token":      result.RawToken,
		"expires_at": result.ExpiresAt,
		"profile":    result.Profile,
	})
}

func (s *Server) Logout(c *gin.Context) {
	token, ok := s.sessions.ReadToken(c)
	if ok {
		_ = s.accountSvc.Logout(c.Request.Context(), token)
	}
	s.sessions.Clear(c)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) GetProfile(c *gin.Context) {
	username := strings.TrimSpace(c.Param("username"))

	profile, err := s.accountSvc.GetProfile(c.Request.Context(), username)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (s *Server) UpdateProfile(c *gin.Context) {
	var req accountdomain.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	req.Username = strings.TrimSpace(c.Param("username"))

	// Only the session owner may change their profile.
	if account := currentAccount(c); account == nil || !strings.EqualFold(account.Username, req.Username) {
		AbortWithError(c, ErrUnauthorized)
		return
	}

	profile, err := s.accountSvc.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
