package rest

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"smileon/internal/domain"
)

const (
	authorizationHeader = "Authorization"
	lookupTokenHeader   = "X-Lookup-Token"
	userIDCtx           = "user_id"
	userRoleCtx         = "user_role"
	lookupPhoneCtx      = "lookup_phone"
)

func (h *Handler) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		path := c.Request.URL.Path
		method := c.Request.Method
		ip := c.ClientIP()
		userAgent := c.Request.UserAgent()

		logger := h.logger.With(
			zap.String("path", path),
			zap.String("method", method),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("ip", ip),
			zap.String("user-agent", userAgent),
		)

		if status >= 500 {
			logger.Error("server error")
		} else if status >= 400 {
			logger.Warn("client error")
		} else {
			logger.Info("request processed")
		}
	}
}

func (h *Handler) errorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			for _, err := range c.Errors {
				h.logger.Error("request error", zap.Error(err))
			}
		}
	}
}

// rateLimitMiddleware throttles anonymous write endpoints per client IP. The
// limiter store is a bounded LRU so a scan of spoofed addresses cannot grow
// memory without limit.
func (h *Handler) rateLimitMiddleware(rps rate.Limit, burst int) gin.HandlerFunc {
	limiters, _ := lru.New[string, *rate.Limiter](4096)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		limiter, ok := limiters.Get(ip)
		if !ok {
			limiter = rate.NewLimiter(rps, burst)
			limiters.Add(ip, limiter)
		}

		if !limiter.Allow() {
			errorResponse(c, http.StatusTooManyRequests, "요청이 너무 많습니다. 잠시 후 다시 시도해 주세요")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (h *Handler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeader)
		if header == "" {
			errorResponse(c, http.StatusUnauthorized, "인증 헤더가 비어 있습니다")
			c.Abort()
			return
		}

		headerParts := strings.Split(header, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			errorResponse(c, http.StatusUnauthorized, "인증 헤더 형식이 올바르지 않습니다")
			c.Abort()
			return
		}

		token := headerParts[1]
		userID, userRole, err := h.services.Auth.ParseToken(c.Request.Context(), token)
		if err != nil {
			errorResponse(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}

		c.Set(userIDCtx, userID)
		c.Set(userRoleCtx, userRole)

		c.Next()
	}
}

// optionalAuthMiddleware attaches user identity when a valid token is present
// and passes anonymous requests through untouched. Public boards accept both.
func (h *Handler) optionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authorizationHeader)
		if header == "" {
			c.Next()
			return
		}

		headerParts := strings.Split(header, " ")
		if len(headerParts) != 2 || headerParts[0] != "Bearer" {
			c.Next()
			return
		}

		userID, userRole, err := h.services.Auth.ParseToken(c.Request.Context(), headerParts[1])
		if err != nil {
			c.Next()
			return
		}

		c.Set(userIDCtx, userID)
		c.Set(userRoleCtx, userRole)

		c.Next()
	}
}

// adminMiddleware admits both account-based admins and legacy shared-password
// tokens; both carry the admin role claim.
func (h *Handler) adminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get(userRoleCtx)
		if !exists {
			errorResponse(c, http.StatusUnauthorized, "로그인이 필요합니다")
			c.Abort()
			return
		}

		role, ok := userRole.(domain.UserRole)
		if !ok || role != domain.UserRoleAdmin {
			errorResponse(c, http.StatusForbidden, "관리자 권한이 필요합니다")
			c.Abort()
			return
		}

		c.Next()
	}
}

// lookupTokenMiddleware guards the no-account reservation views. The token
// comes from the verify endpoint and scopes the request to one phone number.
func (h *Handler) lookupTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(lookupTokenHeader)
		if token == "" {
			errorResponse(c, http.StatusUnauthorized, "예약 조회 인증이 필요합니다")
			c.Abort()
			return
		}

		phone, err := h.services.Reservation.ParseLookupToken(token)
		if err != nil {
			errorResponse(c, http.StatusUnauthorized, err.Error())
			c.Abort()
			return
		}

		c.Set(lookupPhoneCtx, phone)

		c.Next()
	}
}

func getUserID(c *gin.Context) (int64, error) {
	userID, exists := c.Get(userIDCtx)
	if !exists {
		return 0, errors.New("로그인이 필요합니다")
	}

	id, ok := userID.(int64)
	if !ok {
		return 0, errors.New("사용자 ID가 올바르지 않습니다")
	}

	return id, nil
}

// getOptionalUserID returns nil for anonymous requests.
func getOptionalUserID(c *gin.Context) *int64 {
	userID, exists := c.Get(userIDCtx)
	if !exists {
		return nil
	}

	id, ok := userID.(int64)
	if !ok {
		return nil
	}

	return &id
}

func getUserRole(c *gin.Context) (domain.UserRole, error) {
	userRole, exists := c.Get(userRoleCtx)
	if !exists {
		return "", errors.New("로그인이 필요합니다")
	}

	role, ok := userRole.(domain.UserRole)
	if !ok {
		return "", errors.New("사용자 권한이 올바르지 않습니다")
	}

	return role, nil
}

func getLookupPhone(c *gin.Context) (string, error) {
	phone, exists := c.Get(lookupPhoneCtx)
	if !exists {
		return "", errors.New("예약 조회 인증이 필요합니다")
	}

	p, ok := phone.(string)
	if !ok || p == "" {
		return "", errors.New("예약 조회 인증이 필요합니다")
	}

	return p, nil
}
