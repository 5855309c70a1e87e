package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"fleettrack/internal/delivery/http/response"
	"fleettrack/internal/delivery/http/validator"
	"fleettrack/internal/domain/entity"
	domainerrors "fleettrack/internal/domain/errors"
	mockUC "fleettrack/internal/mocks/usecase"
	"fleettrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	handler *TrackerHandler
	uc      *mockUC.MockTrackerUsecase
	echo    *echo.Echo
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	t.Helper()

	uc := mockUC.NewMockTrackerUsecase(t)
	h := &TrackerHandler{
		trackerUC: uc,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	e := echo.New()
	e.Validator = validator.New()

	return &handlerFixture{handler: h, uc: uc, echo: e}
}

func (f *handlerFixture) request(method, target, body string, params ...string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := f.echo.NewContext(req, rec)
	for i := 0; i+1 < len(params); i += 2 {
		c.SetParamNames(params[i])
		c.SetParamValues(params[i+1])
	}

	return c, rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestUpdateLocation_Success(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	state := &entity.DeviceState{
		Device: entity.Device{
			DeviceID:     "truck-7",
			Latitude:     25.03,
			Longitude:    121.56,
			LastUpdateAt: time.Now(),
		},
		EffectiveAwake: true,
		Status:         entity.StatusOnline,
	}

	f.uc.EXPECT().
		UpsertLocation(mock.Anything, mock.MatchedBy(func(input *usecase.LocationUpdateInput) bool {
			return input.DeviceID == "truck-7" && input.Latitude == 25.03 && input.Longitude == 121.56
		})).
		Return(state, nil).
		Once()

	c, rec := f.request(http.MethodPost, "/location/update",
		`{"deviceId":"truck-7","lat":25.03,"lon":121.56,"battery":80}`)

	require.NoError(t, f.handler.UpdateLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeResponse(t, rec)
	assert.True(t, resp.Success)
}

func TestUpdateLocation_GeofencePassedThrough(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	f.uc.EXPECT().
		UpsertLocation(mock.Anything, mock.MatchedBy(func(input *usecase.LocationUpdateInput) bool {
			return input.Geofence != nil &&
				input.Geofence.Name == "Depot" &&
				input.Geofence.Transition == "exit"
		})).
		Return(&entity.DeviceState{}, nil).
		Once()

	c, rec := f.request(http.MethodPost, "/location/update",
		`{"deviceId":"truck-7","lat":25.03,"lon":121.56,"geofence":{"name":"Depot","transition":"exit","message":"left the depot"}}`)

	require.NoError(t, f.handler.UpdateLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateLocation_MissingCoordinates(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	c, rec := f.request(http.MethodPost, "/location/update", `{"deviceId":"truck-7"}`)

	require.NoError(t, f.handler.UpdateLocation(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
}

func TestUpdateLocation_ZeroCoordinatesAccepted(t *testing.T) {
	t.Parallel()

	// lat/lon bind as pointers so an explicit zero passes required and
	// reaches the usecase.
	f := newHandlerFixture(t)

	f.uc.EXPECT().
		UpsertLocation(mock.Anything, mock.MatchedBy(func(input *usecase.LocationUpdateInput) bool {
			return input.Latitude == 0 && input.Longitude == 0
		})).
		Return(&entity.DeviceState{}, nil).
		Once()

	c, rec := f.request(http.MethodPost, "/location/update",
		`{"deviceId":"buoy-1","lat":0,"lon":0}`)

	require.NoError(t, f.handler.UpdateLocation(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDevice_NotFoundMapped(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	f.uc.EXPECT().
		GetDevice(mock.Anything, "ghost").
		Return(nil, domainerrors.ErrDeviceNotFound).
		Once()

	c, rec := f.request(http.MethodGet, "/devices/ghost", "", "id", "ghost")

	require.NoError(t, f.handler.GetDevice(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	resp := decodeResponse(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DEVICE_NOT_FOUND", resp.Error.Code)
}

func TestListDevices_Success(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	states := []*entity.DeviceState{
		{Device: entity.Device{DeviceID: "truck-1"}, Status: entity.StatusOffline},
		{Device: entity.Device{DeviceID: "truck-2"}, Status: entity.StatusOnline},
	}

	f.uc.EXPECT().
		ListDevices(mock.Anything).
		Return(states, nil).
		Once()

	c, rec := f.request(http.MethodGet, "/devices", "")

	require.NoError(t, f.handler.ListDevices(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWakeAll_Success(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	f.uc.EXPECT().
		WakeAll(mock.Anything).
		Return(nil).
		Once()

	c, rec := f.request(http.MethodPost, "/devices/wakeup-all", "")

	require.NoError(t, f.handler.WakeAll(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSleep_NotFoundMapped(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	f.uc.EXPECT().
		Sleep(mock.Anything, "ghost").
		Return(domainerrors.ErrDeviceNotFound).
		Once()

	c, rec := f.request(http.MethodPost, "/devices/ghost/sleep", "", "id", "ghost")

	require.NoError(t, f.handler.Sleep(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWatch_RequiresWatcherID(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	c, rec := f.request(http.MethodPost, "/devices/truck-7/watch", `{}`, "id", "truck-7")

	require.NoError(t, f.handler.Watch(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWatch_WatcherIDFromQuery(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	f.uc.EXPECT().
		Watch(mock.Anything, "truck-7", "viewer-2").
		Return(nil).
		Once()

	c, rec := f.request(http.MethodPost, "/devices/truck-7/watch?watcherId=viewer-2", "", "id", "truck-7")

	require.NoError(t, f.handler.Watch(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWatch_Success(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	f.uc.EXPECT().
		Watch(mock.Anything, "truck-7", "viewer-1").
		Return(nil).
		Once()

	c, rec := f.request(http.MethodPost, "/devices/truck-7/watch",
		`{"watcherId":"viewer-1"}`, "id", "truck-7")

	require.NoError(t, f.handler.Watch(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnwatch_Success(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	f.uc.EXPECT().
		Unwatch(mock.Anything, "truck-7", "viewer-1").
		Return(nil).
		Once()

	c, rec := f.request(http.MethodPost, "/devices/truck-7/unwatch",
		`{"watcherId":"viewer-1"}`, "id", "truck-7")

	require.NoError(t, f.handler.Unwatch(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRing_Success(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	f.uc.EXPECT().
		Ring(mock.Anything, "truck-7").
		Return(nil).
		Once()

	c, rec := f.request(http.MethodPost, "/devices/truck-7/ring", "", "id", "truck-7")

	require.NoError(t, f.handler.Ring(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestResetAlarm_Success(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	f.uc.EXPECT().
		ResetAlarm(mock.Anything, "truck-7").
		Return(nil).
		Once()

	c, rec := f.request(http.MethodPost, "/devices/truck-7/reset-alarm", "", "id", "truck-7")

	require.NoError(t, f.handler.ResetAlarm(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	f := newHandlerFixture(t)

	c, rec := f.request(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
