// Package cookie centralizes how auth tokens travel in HttpOnly cookies.
package cookie

import (
	"net/http"
	"time"

	"basecampus-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	setToken(c, cfg, AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()))
	setToken(c, cfg, RefreshTokenCookieName, refreshToken, int(refreshExpiry.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	setToken(c, cfg, AccessTokenCookieName, "", -1)
	setToken(c, cfg, RefreshTokenCookieName, "", -1)
}

// always HttpOnly so scripts never see the tokens
func setToken(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetSameSite(parseSameSite(cfg.SameSite))
	c.SetCookie(name, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func parseSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
