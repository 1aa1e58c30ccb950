package middleware

import (
	"crypto/subtle"
	"net/http"
	"zeit/shared/constant"
	"zeit/shared/failure"
	"zeit/transport/http/response"
)

// APIKey requires the configured key in the X-API-Key header. With no key
// configured the service is open, which is the default for this read-only
// API.
func (a *appMiddleware) APIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		expected := a.config.App.APIKey
		if expected == "" {
			next.ServeHTTP(writer, request)

			return
		}

		provided := request.Header.Get(constant.RequestHeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(provided), []byte(expected)) != 1 {
			response.WithError(writer, failure.Unauthorized("Missing or invalid API key"))

			return
		}

		next.ServeHTTP(writer, request)
	})
}
