package worldtime_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	otelMocks "zeit/infras/otel/mocks"
	"zeit/internal/domains/worldtime/mocks"
	"zeit/internal/domains/worldtime/model"
	"zeit/internal/domains/worldtime/model/dto"
	"zeit/internal/handlers/worldtime"
)

func newRouter(service *mocks.MockWorldTime) *chi.Mux {
	handler := worldtime.New(service, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Route("/v1", func(routerGroup chi.Router) {
		handler.Router(routerGroup)
	})

	return router
}

type envelope struct {
	IsError bool            `json:"is_error"`
	Data    json.RawMessage `json:"data"`
	Error   *string         `json:"error"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()

	env := envelope{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &env))

	return env
}

func TestCurrentTime_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockWorldTime(ctrl)
	mockService.EXPECT().
		CurrentTime(gomock.Any(), dto.CurrentTimeRequest{Timezone: "Asia/Tokyo"}).
		Return(dto.CurrentTimeResponse{
			Timezone:  "Asia/Tokyo",
			Datetime:  "2025-01-15T21:00:00+09:00",
			UTCOffset: "+09:00",
			IsDST:     false,
		}, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/time/current", strings.NewReader(`{"timezone":"Asia/Tokyo"}`))

	newRouter(mockService).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	env := decodeEnvelope(t, recorder)
	assert.False(t, env.IsError)

	res := dto.CurrentTimeResponse{}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "Asia/Tokyo", res.Timezone)
	assert.Equal(t, "+09:00", res.UTCOffset)
}

func TestCurrentTime_EmptyBodyMeansUTC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockWorldTime(ctrl)
	mockService.EXPECT().
		CurrentTime(gomock.Any(), dto.CurrentTimeRequest{}).
		Return(dto.CurrentTimeResponse{Timezone: "UTC", UTCOffset: "+00:00"}, nil)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/time/current", nil)

	newRouter(mockService).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	env := decodeEnvelope(t, recorder)
	assert.False(t, env.IsError)
}

func TestCurrentTime_ValidationErrorUsesEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockWorldTime(ctrl)
	mockService.EXPECT().
		CurrentTime(gomock.Any(), gomock.Any()).
		Return(dto.CurrentTimeResponse{}, model.InvalidZone("Fake/Zone"))

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/time/current", strings.NewReader(`{"timezone":"Fake/Zone"}`))

	newRouter(mockService).ServeHTTP(recorder, request)

	// Validation failures are payload-level, not protocol-level.
	assert.Equal(t, http.StatusOK, recorder.Code)

	env := decodeEnvelope(t, recorder)
	assert.True(t, env.IsError)
	require.NotNil(t, env.Error)
	assert.Contains(t, *env.Error, "Invalid timezone: 'Fake/Zone'")
}

func TestCurrentTime_MalformedJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockWorldTime(ctrl)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/time/current", strings.NewReader(`{"timezone":`))

	newRouter(mockService).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestConvert_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	req := dto.ConvertTimeRequest{
		SourceTimezone: "UTC",
		Time:           "12:00",
		TargetTimezone: "America/New_York",
	}

	mockService := mocks.NewMockWorldTime(ctrl)
	mockService.EXPECT().
		Convert(gomock.Any(), req).
		Return(dto.ConvertTimeResponse{
			Source:         dto.ZoneTimeEntry{Timezone: "UTC", Datetime: "2025-01-15T12:00:00+00:00", UTCOffset: "+00:00"},
			Target:         dto.ZoneTimeEntry{Timezone: "America/New_York", Datetime: "2025-01-15T07:00:00-05:00", UTCOffset: "-05:00"},
			TimeDifference: "-5:00",
		}, nil)

	body := `{"source_timezone":"UTC","time":"12:00","target_timezone":"America/New_York"}`

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/time/convert", strings.NewReader(body))

	newRouter(mockService).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	env := decodeEnvelope(t, recorder)
	assert.False(t, env.IsError)

	res := dto.ConvertTimeResponse{}
	require.NoError(t, json.Unmarshal(env.Data, &res))
	assert.Equal(t, "-5:00", res.TimeDifference)
	assert.Equal(t, "America/New_York", res.Target.Timezone)
}

func TestConvert_MissingFieldsRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The service must not be called when required fields are missing.
	mockService := mocks.NewMockWorldTime(ctrl)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing source", body: `{"time":"12:00","target_timezone":"UTC"}`},
		{name: "missing time", body: `{"source_timezone":"UTC","target_timezone":"UTC"}`},
		{name: "missing target", body: `{"source_timezone":"UTC","time":"12:00"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/v1/time/convert", strings.NewReader(tt.body))

			newRouter(mockService).ServeHTTP(recorder, request)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Contains(t, recorder.Body.String(), "required")
		})
	}
}

func TestConvert_ValidationErrorUsesEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockWorldTime(ctrl)
	mockService.EXPECT().
		Convert(gomock.Any(), gomock.Any()).
		Return(dto.ConvertTimeResponse{}, model.NonexistentCivilTime("02:30", "America/New_York"))

	body := `{"source_timezone":"America/New_York","time":"02:30","target_timezone":"UTC"}`

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/v1/time/convert", strings.NewReader(body))

	newRouter(mockService).ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)

	env := decodeEnvelope(t, recorder)
	assert.True(t, env.IsError)
	require.NotNil(t, env.Error)
	assert.Contains(t, *env.Error, "spring forward")
}
