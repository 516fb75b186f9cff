package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/taskmaster/shamsi/internal/infrastructure/cache"
	"github.com/taskmaster/shamsi/internal/infrastructure/config"
	"github.com/taskmaster/shamsi/internal/infrastructure/logger"
	"github.com/taskmaster/shamsi/internal/infrastructure/metrics"
	"github.com/taskmaster/shamsi/internal/ports"
	"github.com/taskmaster/shamsi/pkg/jalali"
)

// CalendarService implements ports.CalendarService on top of pkg/jalali
type CalendarService struct {
	cache   cache.RenderCache
	metrics *metrics.Metrics
	logger  *logger.Logger

	zone   *time.Location
	digits jalali.NumeralStyle
	layout string
	now    func() time.Time
}

var _ ports.CalendarService = (*CalendarService)(nil)

// NewCalendarService creates a calendar service with the configured defaults
func NewCalendarService(cfg config.CalendarConfig, renderCache cache.RenderCache, m *metrics.Metrics, appLogger *logger.Logger) (*CalendarService, error) {
	zone, err := jalali.LoadZone(cfg.DefaultZone)
	if err != nil {
		return nil, fmt.Errorf("default zone: %w", err)
	}

	digits, err := jalali.ParseNumeralStyle(cfg.Digits)
	if err != nil {
		return nil, fmt.Errorf("default digits: %w", err)
	}

	if renderCache == nil {
		renderCache = cache.NopCache{}
	}

	return &CalendarService{
		cache:   renderCache,
		metrics: m,
		logger:  appLogger.WithComponent("calendar"),
		zone:    zone,
		digits:  digits,
		layout:  cfg.DefaultLayout,
		now:     time.Now,
	}, nil
}

func (s *CalendarService) resolveZone(name string) (*time.Location, error) {
	if name == "" {
		return s.zone, nil
	}
	return jalali.LoadZone(name)
}

func (s *CalendarService) resolveDigits(name string) (jalali.NumeralStyle, error) {
	if name == "" {
		return s.digits, nil
	}
	return jalali.ParseNumeralStyle(name)
}

// resolveTimestamp returns the parsed timestamp and whether it was explicit
func (s *CalendarService) resolveTimestamp(raw string) (int64, bool, error) {
	if raw == "" {
		return s.now().Unix(), false, nil
	}
	ts, err := jalali.ParseTimestamp(raw)
	if err != nil {
		return 0, false, err
	}
	return ts, true, nil
}

// Format renders a timestamp. Output for explicit timestamps is cached.
func (s *CalendarService) Format(ctx context.Context, req ports.FormatRequest) (*ports.FormatResponse, error) {
	resp, err := s.format(ctx, req)
	s.metrics.ObserveOperation("format", err)
	return resp, err
}

func (s *CalendarService) format(ctx context.Context, req ports.FormatRequest) (*ports.FormatResponse, error) {
	loc, err := s.resolveZone(req.Zone)
	if err != nil {
		return nil, err
	}
	style, err := s.resolveDigits(req.Digits)
	if err != nil {
		return nil, err
	}
	ts, explicit, err := s.resolveTimestamp(req.Timestamp)
	if err != nil {
		return nil, err
	}
	layout := req.Layout
	if layout == "" {
		layout = s.layout
	}

	resp := &ports.FormatResponse{
		Timestamp: ts,
		Zone:      loc.String(),
		Digits:    style.String(),
	}

	if !explicit {
		resp.Result = jalali.Format(layout, ts, loc, style)
		return resp, nil
	}

	key := cache.Key(layout, strconv.FormatInt(ts, 10), loc.String(), style.String())
	if val, ok := s.lookup(ctx, key); ok {
		resp.Result = val
		resp.Cached = true
		return resp, nil
	}

	resp.Result = jalali.Format(layout, ts, loc, style)
	if err := s.cache.Set(ctx, key, resp.Result); err != nil {
		s.logger.LogCacheEvent("set", key, err)
	}
	return resp, nil
}

func (s *CalendarService) lookup(ctx context.Context, key string) (string, bool) {
	val, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		s.logger.LogCacheEvent("get", key, err)
		s.metrics.ObserveCache(metrics.CacheError)
		return "", false
	case ok:
		s.metrics.ObserveCache(metrics.CacheHit)
		return val, true
	default:
		s.metrics.ObserveCache(metrics.CacheMiss)
		return "", false
	}
}

// ToJalali converts a Gregorian date
func (s *CalendarService) ToJalali(ctx context.Context, req ports.DateRequest) (*ports.JalaliDateResponse, error) {
	var resp *ports.JalaliDateResponse
	err := checkGregorian(req.Year, req.Month, req.Day)
	if err == nil {
		jy, jm, jd := jalali.GregorianToJalali(req.Year, req.Month, req.Day)
		resp = &ports.JalaliDateResponse{
			Year:      jy,
			Month:     jm,
			Day:       jd,
			MonthName: jalali.MonthName(jm),
			Leap:      jalali.IsLeap(jy),
			DayOfYear: jalali.DayOfYear(jm, jd),
		}
	}
	s.metrics.ObserveOperation("to_jalali", err)
	return resp, err
}

func checkGregorian(y, m, d int) error {
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if m < 1 || m > 12 || t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return fmt.Errorf("%w: gregorian %04d-%02d-%02d", jalali.ErrInvalidDate, y, m, d)
	}
	return nil
}

// ToGregorian converts a Jalali date; invalid dates are rejected
func (s *CalendarService) ToGregorian(ctx context.Context, req ports.DateRequest) (*ports.GregorianDateResponse, error) {
	var resp *ports.GregorianDateResponse
	err := checkJalali(req.Year, req.Month, req.Day)
	if err == nil {
		gy, gm, gd := jalali.JalaliToGregorian(req.Year, req.Month, req.Day)
		resp = &ports.GregorianDateResponse{Year: gy, Month: gm, Day: gd}
	}
	s.metrics.ObserveOperation("to_gregorian", err)
	return resp, err
}

func checkJalali(y, m, d int) error {
	if !jalali.IsValidDate(m, d, y) {
		return fmt.Errorf("%w: jalali %d/%d/%d", jalali.ErrInvalidDate, y, m, d)
	}
	return nil
}

// Validate reports whether a Jalali date exists
func (s *CalendarService) Validate(ctx context.Context, req ports.DateRequest) (*ports.ValidateResponse, error) {
	s.metrics.ObserveOperation("validate", nil)
	return &ports.ValidateResponse{
		Valid: jalali.IsValidDate(req.Month, req.Day, req.Year),
		Leap:  req.Year >= 1 && jalali.IsLeap(req.Year),
	}, nil
}

// Transliterate rewrites the digits of a text into the requested style
func (s *CalendarService) Transliterate(ctx context.Context, req ports.TransliterateRequest) (*ports.TransliterateResponse, error) {
	style, err := jalali.ParseNumeralStyle(req.To)
	s.metrics.ObserveOperation("transliterate", err)
	if err != nil {
		return nil, err
	}
	return &ports.TransliterateResponse{Result: jalali.Transliterate(req.Text, style)}, nil
}

// GetDate returns the structured Jalali breakdown of a timestamp
func (s *CalendarService) GetDate(ctx context.Context, req ports.GetDateRequest) (*ports.DateRecordResponse, error) {
	resp, err := s.getDate(req)
	s.metrics.ObserveOperation("get_date", err)
	return resp, err
}

func (s *CalendarService) getDate(req ports.GetDateRequest) (*ports.DateRecordResponse, error) {
	loc, err := s.resolveZone(req.Zone)
	if err != nil {
		return nil, err
	}
	style, err := s.resolveDigits(req.Digits)
	if err != nil {
		return nil, err
	}
	ts, _, err := s.resolveTimestamp(req.Timestamp)
	if err != nil {
		return nil, err
	}

	record := jalali.GetDate(ts, loc)
	resp := &ports.DateRecordResponse{Zone: loc.String(), Digits: style.String()}
	if style == jalali.Persian {
		rendered := record.Render(style)
		resp.Rendered = &rendered
	} else {
		resp.Record = &record
	}
	return resp, nil
}

// Mktime returns the Unix timestamp of a Jalali wall-clock time
func (s *CalendarService) Mktime(ctx context.Context, req ports.MktimeRequest) (*ports.MktimeResponse, error) {
	resp, err := s.mktime(req)
	s.metrics.ObserveOperation("mktime", err)
	return resp, err
}

func (s *CalendarService) mktime(req ports.MktimeRequest) (*ports.MktimeResponse, error) {
	if err := checkJalali(req.Year, req.Month, req.Day); err != nil {
		return nil, err
	}
	loc, err := s.resolveZone(req.Zone)
	if err != nil {
		return nil, err
	}
	return &ports.MktimeResponse{
		Timestamp: jalali.Mktime(req.Year, req.Month, req.Day, req.Hour, req.Minute, req.Second, loc),
		Zone:      loc.String(),
	}, nil
}
