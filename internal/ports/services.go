package ports

import (
	"context"

	"github.com/taskmaster/shamsi/pkg/jalali"
)

// CalendarService interface for conversion and formatting operations
type CalendarService interface {
	Format(ctx context.Context, req FormatRequest) (*FormatResponse, error)
	ToJalali(ctx context.Context, req DateRequest) (*JalaliDateResponse, error)
	ToGregorian(ctx context.Context, req DateRequest) (*GregorianDateResponse, error)
	Validate(ctx context.Context, req DateRequest) (*ValidateResponse, error)
	Transliterate(ctx context.Context, req TransliterateRequest) (*TransliterateResponse, error)
	GetDate(ctx context.Context, req GetDateRequest) (*DateRecordResponse, error)
	Mktime(ctx context.Context, req MktimeRequest) (*MktimeResponse, error)
}

// Request/Response Types

// FormatRequest renders a timestamp; empty fields fall back to configured defaults
type FormatRequest struct {
	Layout    string `query:"layout" json:"layout" validate:"max=256"`
	Timestamp string `query:"ts" json:"ts" validate:"max=32"`
	Zone      string `query:"zone" json:"zone" validate:"max=64"`
	Digits    string `query:"digits" json:"digits" validate:"max=32"`
}

type FormatResponse struct {
	Result    string `json:"result"`
	Timestamp int64  `json:"timestamp"`
	Zone      string `json:"zone"`
	Digits    string `json:"digits"`
	Cached    bool   `json:"cached"`
}

// DateRequest carries a calendar date in either calendar
type DateRequest struct {
	Year  int `query:"year" json:"year" validate:"required"`
	Month int `query:"month" json:"month" validate:"required,min=1,max=12"`
	Day   int `query:"day" json:"day" validate:"required,min=1,max=31"`
}

type JalaliDateResponse struct {
	Year      int    `json:"year"`
	Month     int    `json:"month"`
	Day       int    `json:"day"`
	MonthName string `json:"month_name"`
	Leap      bool   `json:"leap"`
	DayOfYear int    `json:"day_of_year"`
}

type GregorianDateResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type ValidateResponse struct {
	Valid bool `json:"valid"`
	Leap  bool `json:"leap"`
}

type TransliterateRequest struct {
	Text string `json:"text" validate:"max=4096"`
	To   string `json:"to" validate:"required,max=32"`
}

type TransliterateResponse struct {
	Result string `json:"result"`
}

type GetDateRequest struct {
	Timestamp string `query:"ts" validate:"max=32"`
	Zone      string `query:"zone" validate:"max=64"`
	Digits    string `query:"digits" validate:"max=32"`
}

// DateRecordResponse holds either Record (Latin digits) or Rendered (Persian digits)
type DateRecordResponse struct {
	Record   *jalali.Record         `json:"record,omitempty"`
	Rendered *jalali.RenderedRecord `json:"rendered,omitempty"`
	Zone     string                 `json:"zone"`
	Digits   string                 `json:"digits"`
}

type MktimeRequest struct {
	Year   int    `query:"year" validate:"required"`
	Month  int    `query:"month" validate:"required,min=1,max=12"`
	Day    int    `query:"day" validate:"required,min=1,max=31"`
	Hour   int    `query:"hour" validate:"min=0,max=23"`
	Minute int    `query:"minute" validate:"min=0,max=59"`
	Second int    `query:"second" validate:"min=0,max=59"`
	Zone   string `query:"zone" validate:"max=64"`
}

type MktimeResponse struct {
	Timestamp int64  `json:"timestamp"`
	Zone      string `json:"zone"`
}
