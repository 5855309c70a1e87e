package handler

import (
	"log/slog"
	"net/http"

	"fleettrack/internal/delivery/http/response"
	"fleettrack/internal/domain/entity"
	domainerrors "fleettrack/internal/domain/errors"
	"fleettrack/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// TrackerHandlerParams holds dependencies for TrackerHandler, injected by Fx.
type TrackerHandlerParams struct {
	fx.In

	TrackerUC usecase.TrackerUsecase
	Logger    *slog.Logger
}

// TrackerHandler holds dependencies for device tracking handlers
type TrackerHandler struct {
	trackerUC usecase.TrackerUsecase
	logger    *slog.Logger
}

// NewTrackerHandler is the constructor for TrackerHandler
func NewTrackerHandler(params TrackerHandlerParams) *TrackerHandler {
	return &TrackerHandler{
		trackerUC: params.TrackerUC,
		logger:    params.Logger,
	}
}

// LocationUpdateRequest represents the request body for a device location fix
type LocationUpdateRequest struct {
	DeviceID    string           `json:"deviceId" validate:"required"`
	Latitude    *float64         `json:"lat" validate:"required,min=-90,max=90"`
	Longitude   *float64         `json:"lon" validate:"required,min=-180,max=180"`
	Speed       *float64         `json:"speed,omitempty" validate:"omitempty,min=0"`
	Accuracy    *float64         `json:"accuracy,omitempty" validate:"omitempty,min=0"`
	Battery     *float64         `json:"battery,omitempty" validate:"omitempty,min=0,max=100"`
	DisplayName *string          `json:"name,omitempty"`
	PushToken   *string          `json:"pushToken,omitempty"`
	Geofence    *GeofenceRequest `json:"geofence,omitempty"`
}

// GeofenceRequest represents a geofence crossing attached to a location fix
type GeofenceRequest struct {
	Name       string `json:"name" validate:"required"`
	Transition string `json:"transition" validate:"required,oneof=enter exit"`
	Message    string `json:"message,omitempty"`
}

// WatchRequest represents the request body for watch and unwatch calls
type WatchRequest struct {
	WatcherID string `json:"watcherId" validate:"required"`
}

// UpdateLocation handles an incoming device location fix
func (h *TrackerHandler) UpdateLocation(c echo.Context) error {
	var req LocationUpdateRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid location input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.LocationUpdateInput{
		DeviceID:    req.DeviceID,
		Latitude:    *req.Latitude,
		Longitude:   *req.Longitude,
		Speed:       req.Speed,
		Accuracy:    req.Accuracy,
		Battery:     req.Battery,
		DisplayName: req.DisplayName,
		PushToken:   req.PushToken,
	}
	if req.Geofence != nil {
		input.Geofence = &entity.GeofenceEvent{
			Name:       req.Geofence.Name,
			Transition: req.Geofence.Transition,
			Message:    req.Geofence.Message,
		}
	}

	state, err := h.trackerUC.UpsertLocation(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Location updated successfully")
}

// ListDevices handles retrieving the whole fleet with derived state
func (h *TrackerHandler) ListDevices(c echo.Context) error {
	states, err := h.trackerUC.ListDevices(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, states, "Devices retrieved successfully")
}

// GetDevice handles retrieving a single device with derived state
func (h *TrackerHandler) GetDevice(c echo.Context) error {
	state, err := h.trackerUC.GetDevice(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, state, "Device retrieved successfully")
}

// WakeAll handles requesting location reports from the whole fleet
func (h *TrackerHandler) WakeAll(c echo.Context) error {
	if err := h.trackerUC.WakeAll(c.Request().Context()); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Fleet wakeup requested")
}

// Sleep handles clearing the awake request for one device
func (h *TrackerHandler) Sleep(c echo.Context) error {
	if err := h.trackerUC.Sleep(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device set to sleep")
}

// Watch handles registering a viewer on one device
func (h *TrackerHandler) Watch(c echo.Context) error {
	watcherID, err := h.watcherID(c)
	if watcherID == "" {
		return err
	}

	if err := h.trackerUC.Watch(c.Request().Context(), c.Param("id"), watcherID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Watch registered")
}

// Unwatch handles removing a viewer from one device
func (h *TrackerHandler) Unwatch(c echo.Context) error {
	watcherID, err := h.watcherID(c)
	if watcherID == "" {
		return err
	}

	if err := h.trackerUC.Unwatch(c.Request().Context(), c.Param("id"), watcherID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Watch removed")
}

// watcherID reads the viewer id from the query string, falling back to a
// JSON body. When empty, the returned error is the 400 already written.
func (h *TrackerHandler) watcherID(c echo.Context) (string, error) {
	if id := c.QueryParam("watcherId"); id != "" {
		return id, nil
	}

	var req WatchRequest
	if err := c.Bind(&req); err == nil && req.WatcherID != "" {
		return req.WatcherID, nil
	}

	return "", response.BadRequest(c, "VALIDATION_ERROR", "watcherId is required")
}

// Ring handles raising the alarm on one device
func (h *TrackerHandler) Ring(c echo.Context) error {
	if err := h.trackerUC.Ring(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Alarm raised")
}

// ResetAlarm handles silencing the alarm on one device
func (h *TrackerHandler) ResetAlarm(c echo.Context) error {
	if err := h.trackerUC.ResetAlarm(c.Request().Context(), c.Param("id")); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Alarm reset")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// handleAppError handles application errors
func (h *TrackerHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), err.Error())
	}

	return errors.WithStack(err)
}
