package response

import (
	"encoding/json"
	"libraryhub/shared/constant"
	"libraryhub/shared/failure"
	"libraryhub/shared/logger"
	"net/http"

	"github.com/rs/zerolog/log"
)

type Error struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

type Message struct {
	Message string `json:"message"`
}

type Pagination struct {
	Page      int `json:"page"`
	Limit     int `json:"limit"`
	TotalData int `json:"total_data"`
	TotalPage int `json:"total_page"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: message})
}

// WithPayload sends a message together with a payload stored under the given key,
// e.g. {"message": "...", "booking": {...}}.
func WithPayload(writer http.ResponseWriter, code int, message, key string, payload any) {
	response(writer, code, map[string]any{
		"message": message,
		key:       payload,
	})
}

// WithPaginatedPayload behaves like WithPayload and appends pagination metadata.
func WithPaginatedPayload(writer http.ResponseWriter, code int, message, key string, payload any, pagination Pagination) {
	response(writer, code, map[string]any{
		"message":    message,
		key:          payload,
		"pagination": pagination,
	})
}

// WithError sends a response with an error message. Unexpected errors are logged
// and hidden behind a generic message.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)
	message := err.Error()

	if code >= http.StatusInternalServerError {
		log.Error().Err(err).Int("code", code).Msg("request failed with internal error")

		message = constant.ResponseErrorInternal
	}

	response(writer, code, Error{Message: message, Error: http.StatusText(code)})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
