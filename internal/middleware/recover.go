package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"pet-registry/internal/platform/httpx"
	"pet-registry/internal/platform/logger"
)

// Recover reemplaza a chi/middleware.Recoverer: un panic se responde con el
// mismo body de error que cualquier fallo no clasificado (500 "Server error").
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.FromContext(r.Context(), log).Error("panic recovered", logger.Fields{
					"panic": fmt.Sprint(rec),
					"stack": string(debug.Stack()),
				})
				httpx.WriteErrorBody(w, http.StatusInternalServerError, httpx.MsgServerError, fmt.Sprint(rec))
			}()

			next.ServeHTTP(w, r)
		})
	}
}
