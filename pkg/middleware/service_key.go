package middleware

import (
	"context"
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/multiplatform-ads-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyCompany contextKey = "company_id"

	ServiceKeyHeader = "X-API-Key"
	CompanyIDHeader  = "X-Company-ID"
)

// Rotas que não exigem a chave de serviço
var publicPaths = []string{"/healthcheck", "/metrics"}

func isPublicPath(path string) bool {
	for _, public := range publicPaths {
		if path == public {
			return true
		}
	}
	return false
}

// ServiceKey exige a chave de serviço em X-API-Key (ou Authorization: Bearer).
// Chave vazia desliga a verificação, apenas para ambiente local.
func ServiceKey(key string) func(http.Handler) http.Handler {
	if key == "" {
		logrus.Warn("ADMIN_API_KEY não configurada, rotas sem autenticação")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" || isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			provided := r.Header.Get(ServiceKeyHeader)
			if provided == "" {
				provided = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Chave de serviço inválida", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireCompany exige o tenant no cabeçalho X-Company-ID e o coloca no contexto
func RequireCompany() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			companyID := strings.TrimSpace(r.Header.Get(CompanyIDHeader))
			if companyID == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Cabeçalho X-Company-ID é obrigatório", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyCompany, companyID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CompanyID obtém o tenant colocado no contexto por RequireCompany
func CompanyID(ctx context.Context) string {
	companyID, _ := ctx.Value(ContextKeyCompany).(string)
	return companyID
}
