package server

import (
	"github.com/gin-gonic/gin"
	accountdomain "github.com/piadesu/attn-store/internal/account/domain"
	obscontext "github.com/piadesu/attn-store/internal/observability/context"
)

const contextAccountKey = "current_account"

// SessionRequired gates a route behind a valid session cookie.
func (s *Server) SessionRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := s.sessions.ReadToken(c)
		if !ok {
			AbortWithError(c, ErrUnauthorized)
			return
		}

		account, err := s.accountSvc.Authenticate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(contextAccountKey, account)
		c.Request = c.Request.WithContext(
			obscontext.WithUsername(c.Request.Context(), account.Username),
		)
		c.Next()
	}
}

func currentAccount(c *gin.Context) *accountdomain.Account {
	v, ok := c.Get(contextAccountKey)
	if !ok {
		return nil
	}
	account, _ := v.(*accountdomain.Account)
	return account
}
