package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const claimsContextKey = "authClaims"

// Claims carries the authenticated account identity inside the JWT.
// The admin flag widens order listing to every account's orders.
type Claims struct {
	AccountID int64 `json:"account_id"`
	Admin     bool  `json:"admin"`
	jwt.RegisteredClaims
}

// Authenticator validates bearer tokens on protected routes and issues
// tokens for accounts. Token verification is the only authentication
// concern handled here; account credentials live elsewhere.
type Authenticator struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthenticator creates an authenticator with the given signing secret.
func NewAuthenticator(secret string, ttl time.Duration) *Authenticator {
	return &Authenticator{secret: []byte(secret), ttl: ttl}
}

// GenerateToken issues a signed token for the given account.
func (a *Authenticator) GenerateToken(accountID int64, admin bool) (string, error) {
	claims := Claims{
		AccountID: accountID,
		Admin:     admin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// ValidateToken parses and verifies a signed token string.
func (a *Authenticator) ValidateToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	return claims, nil
}

// Middleware authenticates requests via the Authorization header and stores
// the claims in the request context for handlers to read.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			tokenStr, found := strings.CutPrefix(header, "Bearer ")
			if !found || tokenStr == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			claims, err := a.ValidateToken(tokenStr)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// claimsFrom extracts the authenticated claims placed by Middleware.
func claimsFrom(c echo.Context) (*Claims, bool) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	return claims, ok
}
