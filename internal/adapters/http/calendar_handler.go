package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskmaster/shamsi/internal/infrastructure/logger"
	"github.com/taskmaster/shamsi/internal/ports"
	"github.com/taskmaster/shamsi/pkg/jalali"
)

// CalendarHandler handles conversion and formatting requests
type CalendarHandler struct {
	calendarService ports.CalendarService
	logger          *logger.Logger
}

// NewCalendarHandler creates a new calendar handler
func NewCalendarHandler(calendarService ports.CalendarService, logger *logger.Logger) *CalendarHandler {
	return &CalendarHandler{
		calendarService: calendarService,
		logger:          logger,
	}
}

// Register mounts the calendar routes on g
func (h *CalendarHandler) Register(g *echo.Group) {
	g.GET("/format", h.Format)
	g.GET("/convert/to-jalali", h.ToJalali)
	g.GET("/convert/to-gregorian", h.ToGregorian)
	g.GET("/validate", h.Validate)
	g.POST("/transliterate", h.Transliterate)
	g.GET("/date", h.GetDate)
	g.GET("/mktime", h.Mktime)
}

// bind decodes and validates a request struct
func bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// toHTTPError maps calendar errors to client errors; anything else is a 500
func (h *CalendarHandler) toHTTPError(c echo.Context, op string, err error) error {
	switch {
	case errors.Is(err, jalali.ErrInvalidDate),
		errors.Is(err, jalali.ErrUnknownZone),
		errors.Is(err, jalali.ErrUnknownNumeralStyle),
		errors.Is(err, jalali.ErrInvalidTimestamp):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	h.logger.Errorw("Calendar operation failed", "operation", op, "error", err, "path", c.Request().URL.Path)
	return echo.NewHTTPError(http.StatusInternalServerError, "Calendar operation failed")
}

// Format handles GET /format
func (h *CalendarHandler) Format(c echo.Context) error {
	var req ports.FormatRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.calendarService.Format(c.Request().Context(), req)
	if err != nil {
		return h.toHTTPError(c, "format", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ToJalali handles GET /convert/to-jalali
func (h *CalendarHandler) ToJalali(c echo.Context) error {
	var req ports.DateRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.calendarService.ToJalali(c.Request().Context(), req)
	if err != nil {
		return h.toHTTPError(c, "to_jalali", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// ToGregorian handles GET /convert/to-gregorian
func (h *CalendarHandler) ToGregorian(c echo.Context) error {
	var req ports.DateRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.calendarService.ToGregorian(c.Request().Context(), req)
	if err != nil {
		return h.toHTTPError(c, "to_gregorian", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Validate handles GET /validate. Out-of-range values yield valid=false, not 400.
func (h *CalendarHandler) Validate(c echo.Context) error {
	var req ports.DateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	resp, err := h.calendarService.Validate(c.Request().Context(), req)
	if err != nil {
		return h.toHTTPError(c, "validate", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Transliterate handles POST /transliterate
func (h *CalendarHandler) Transliterate(c echo.Context) error {
	var req ports.TransliterateRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.calendarService.Transliterate(c.Request().Context(), req)
	if err != nil {
		return h.toHTTPError(c, "transliterate", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetDate handles GET /date
func (h *CalendarHandler) GetDate(c echo.Context) error {
	var req ports.GetDateRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.calendarService.GetDate(c.Request().Context(), req)
	if err != nil {
		return h.toHTTPError(c, "get_date", err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Mktime handles GET /mktime
func (h *CalendarHandler) Mktime(c echo.Context) error {
	var req ports.MktimeRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := h.calendarService.Mktime(c.Request().Context(), req)
	if err != nil {
		return h.toHTTPError(c, "mktime", err)
	}
	return c.JSON(http.StatusOK, resp)
}
