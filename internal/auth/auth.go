package auth

import (
	"crypto/subtle"
	"net/http"

	"github.com/Lelo88/items-api-golang/internal/httpx"
)

// HeaderAPIKey es el header que transporta la clave pre-compartida.
const HeaderAPIKey = "X-API-Key"

// RequireKey devuelve un middleware que exige la clave pre-compartida.
// Con clave vacía la autenticación queda deshabilitada y el middleware es pass-through.
// Header ausente => 401; clave incorrecta => 403. La comparación es de tiempo constante.
func RequireKey(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}

		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			provided := request.Header.Get(HeaderAPIKey)
			if provided == "" {
				httpx.Fail(writer, request, http.StatusUnauthorized, "missing api key")
				return
			}

			if subtle.ConstantTimeCompare([]byte(provided), []byte(key)) != 1 {
				httpx.Fail(writer, request, http.StatusForbidden, "invalid api key")
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
