package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/nebadan/sqa-task-project/applications/session"
	"github.com/nebadan/sqa-task-project/applications/user"
	"github.com/nebadan/sqa-task-project/config"
	"github.com/nebadan/sqa-task-project/logger"
)

const sessionCookieName = "session"

// SessionClaims carries the session fields inside the signed cookie.
type SessionClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// generateSessionToken creates a signed token mirroring the session.
func generateSessionToken(sess *session.Session) (string, error) {
	claims := SessionClaims{
		Email: sess.Email,
		Role:  sess.Role,
		Name:  sess.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(config.JWTSecret())
	if err != nil {
		logger.Log.Error(fmt.Sprintf("[auth] Failed to sign session token for %s: %v", sess.Email, err))
		return "", err
	}
	return signed, nil
}

// SessionMiddleware resolves the request's session and stores it in the echo
// context. The session cookie wins; without one (or with a bad one) the
// store's current session is used. It never rejects a request: whether a
// page is allowed is the guard's call, not this middleware's.
func (ctl *Controllers) SessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := ctl.sessionFromCookie(c)
		if sess == nil {
			sess = ctl.Sessions.Current()
		}
		if sess != nil {
			c.Set("session", sess)
		}
		return next(c)
	}
}

func (ctl *Controllers) sessionFromCookie(c echo.Context) *session.Session {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}

	token, err := jwt.ParseWithClaims(cookie.Value, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return config.JWTSecret(), nil
	})
	if err != nil || !token.Valid {
		logger.Log.Warn(fmt.Sprintf("[auth] Invalid or expired session cookie: %v", err))
		return nil
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || claims.Email == "" {
		logger.Log.Warn("[auth] Session cookie claims extraction failed.")
		return nil
	}

	return &session.Session{Email: claims.Email, Role: claims.Role, Name: claims.Name}
}

// AdminOnlyMiddleware blocks API access for anyone without the admin role.
func (ctl *Controllers) AdminOnlyMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := sessionFrom(c)

		if sess == nil || sess.Role != user.RoleAdmin {
			logger.Log.Warn(fmt.Sprintf("[auth] RBAC FAILED for path %s: Admin role required.", c.Path()))
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Access Forbidden: Admin privileges required"})
		}

		logger.Log.Info(fmt.Sprintf("[auth] RBAC PASSED for admin %s on path %s.", sess.Email, c.Path()))
		return next(c)
	}
}

// sessionFrom pulls the session the middleware stashed, nil when anonymous.
func sessionFrom(c echo.Context) *session.Session {
	if sess, ok := c.Get("session").(*session.Session); ok {
		return sess
	}
	return nil
}

func setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}
