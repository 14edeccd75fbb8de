package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/zahratravel/agency-backend/api/responses"
	pkgerrors "github.com/zahratravel/agency-backend/pkg/errors"
	"github.com/zahratravel/agency-backend/pkg/logger"
)

func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					ctx := r.Context()
					if logg != nil {
						ctx = logg.WithFields(ctx, map[string]any{
							"stack": string(debug.Stack()),
						})
					}
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("%v", rec)
					}
					responses.WriteError(ctx, logg, w,
						pkgerrors.Wrap(pkgerrors.CodeInternal, err, "recovered from panic"))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
