package handler

import (
	"net/http"
	"time"

	"storefront-backend/internal/middleware"
	"storefront-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// RefreshTokenCookie is the cookie carrying the long-lived refresh token.
const RefreshTokenCookie = "refresh_token"

// CookieHelper writes and clears the two auth cookies. Both are
// HttpOnly and SameSite=Strict so script-level code never sees them;
// Secure is enabled in release mode.
type CookieHelper struct {
	secure        bool
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewCookieHelper(secure bool, accessExpiry, refreshExpiry time.Duration) *CookieHelper {
	return &CookieHelper{
		secure:        secure,
		accessExpiry:  accessExpiry,
		refreshExpiry: refreshExpiry,
	}
}

// SetAuthCookies stores a freshly minted pair on the response.
func (h *CookieHelper) SetAuthCookies(c *gin.Context, pair *token.Pair) {
	h.setCookie(c, middleware.AccessTokenCookie, pair.AccessToken, int(h.accessExpiry.Seconds()))
	h.setCookie(c, RefreshTokenCookie, pair.RefreshToken, int(h.refreshExpiry.Seconds()))
}

// ClearAuthCookies removes both authentication cookies.
func (h *CookieHelper) ClearAuthCookies(c *gin.Context) {
	h.setCookie(c, middleware.AccessTokenCookie, "", -1)
	h.setCookie(c, RefreshTokenCookie, "", -1)
}

func (h *CookieHelper) setCookie(c *gin.Context, name, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		name,
		value,
		maxAge,
		"/",      // path
		"",       // domain (empty means current domain)
		h.secure, // secure
		true,     // httpOnly - always true for auth cookies
	)
}
