package worldtime

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"zeit/infras/otel"
	"zeit/internal/domains/worldtime/model"
	"zeit/internal/domains/worldtime/model/dto"
	"zeit/internal/domains/worldtime/service"
	"zeit/shared/constant"
	"zeit/shared/failure"
	"zeit/shared/validator"
	"zeit/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.WorldTime
	otel    otel.Otel
}

func New(service service.WorldTime, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/time", func(routerGroup chi.Router) {
		routerGroup.Post("/current", handler.CurrentTime)
		routerGroup.Post("/convert", handler.Convert)
	})
}

// CurrentTime handles the get_current_time operation.
// @Summary Get the current time in a timezone
// @Description Get the current time in a specific IANA timezone. Defaults to UTC if no timezone is provided.
// @Tags Time
// @Accept json
// @Produce json
// @Param request body dto.CurrentTimeRequest false "Current Time Request"
// @Success 200 {object} response.ToolEnvelope "Current time result"
// @Failure 400 {object} response.Error
// @Router /v1/time/current [post]
func (handler *Handler) CurrentTime(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CurrentTime")
	defer scope.End()

	// An empty body is a valid request meaning UTC.
	req := dto.CurrentTimeRequest{}
	if err := json.NewDecoder(request.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to decode request body")

		response.WithError(writer, failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)))

		return
	}

	res, err := handler.service.CurrentTime(ctx, req)
	if err != nil {
		if verr, ok := model.AsValidation(err); ok {
			scope.AddEvent("Rejected current time query: " + verr.Error())

			response.WithToolError(writer, verr)

			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get current time")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Current time resolved for " + res.Timezone)

	response.WithToolResult(writer, res)
}

// Convert handles the convert_time operation.
// @Summary Convert a time between timezones
// @Description Convert an HH:MM time from a source IANA timezone to a target IANA timezone on today's date.
// @Tags Time
// @Accept json
// @Produce json
// @Param request body dto.ConvertTimeRequest true "Convert Time Request"
// @Success 200 {object} response.ToolEnvelope "Conversion result"
// @Failure 400 {object} response.Error
// @Router /v1/time/convert [post]
func (handler *Handler) Convert(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Convert")
	defer scope.End()

	req := dto.ConvertTimeRequest{}
	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Convert(ctx, req)
	if err != nil {
		if verr, ok := model.AsValidation(err); ok {
			scope.AddEvent("Rejected conversion query: " + verr.Error())

			response.WithToolError(writer, verr)

			return
		}

		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to convert time")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Converted " + req.Time + " from " + res.Source.Timezone + " to " + res.Target.Timezone)

	response.WithToolResult(writer, res)
}
