package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/TJurijs/5esrd-api/token"
	"github.com/gin-gonic/gin"
)

const (
	authorizationheaderKey  = "authorization"
	authorizationTypeBearer = "bearer"
	authorizationPayloadKey = "authorization_payload"

	adminRole = token.RoleAdmin
)

// authMiddleware requires a valid bearer token. Without a token maker every request is refused.
func authMiddleware(tokenMaker token.Maker) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if tokenMaker == nil {
			ctx.AbortWithStatusJSON(http.StatusServiceUnavailable, NewErrorResponse(ErrAdminDisabled))
			return
		}

		authorizationHeader := ctx.GetHeader(authorizationheaderKey)
		if len(authorizationHeader) == 0 {
			err := errors.New("authorization header is not provided")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(err))
			return
		}

		fields := strings.Fields(authorizationHeader)
		if len(fields) != 2 {
			err := errors.New("invalid authorization header format")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(err))
			return
		}

		authorizationType := strings.ToLower(fields[0])
		if authorizationType != authorizationTypeBearer {
			err := fmt.Errorf("unsupported authorization type %s", authorizationType)
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(err))
			return
		}

		payload, err := tokenMaker.VerifyToken(fields[1])
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, NewErrorResponse(err))
			return
		}

		ctx.Set(authorizationPayloadKey, payload)
		ctx.Next()
	}
}

// requireRole must run after authMiddleware.
func requireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		payload, ok := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
		if !ok || payload.Role != role {
			ctx.AbortWithStatusJSON(http.StatusForbidden, NewErrorResponse(ErrForbiddenRole))
			return
		}

		ctx.Next()
	}
}
