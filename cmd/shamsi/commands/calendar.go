package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/taskmaster/shamsi/internal/application/services"
	"github.com/taskmaster/shamsi/internal/infrastructure/cache"
	"github.com/taskmaster/shamsi/internal/infrastructure/logger"
	"github.com/taskmaster/shamsi/internal/ports"
	"github.com/taskmaster/shamsi/pkg/jalali"
)

// newCalendarService builds an uncached service from the environment defaults
func newCalendarService() (ports.CalendarService, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return services.NewCalendarService(cfg.Calendar, cache.NopCache{}, nil, logger.NewNop())
}

// parseDateArgs reads year, month and day; Persian digits are accepted
func parseDateArgs(args []string) (ports.DateRequest, error) {
	var v [3]int
	for i, a := range args {
		n, err := strconv.Atoi(jalali.ToLatin(a))
		if err != nil {
			return ports.DateRequest{}, fmt.Errorf("%q is not a number", a)
		}
		v[i] = n
	}
	return ports.DateRequest{Year: v[0], Month: v[1], Day: v[2]}, nil
}

// NewFormatCommand creates the format command
func NewFormatCommand() *cobra.Command {
	var req ports.FormatRequest

	cmd := &cobra.Command{
		Use:   "format [layout]",
		Short: "Render a timestamp as a Jalali date",
		Example: `  shamsi format "l j F Y" --ts 1710892800
  shamsi format "Y/m/d H:i" --digits en --zone UTC`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				req.Layout = args[0]
			}
			svc, err := newCalendarService()
			if err != nil {
				return err
			}
			resp, err := svc.Format(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Result)
			return nil
		},
	}

	addMomentFlags(cmd, &req.Timestamp, &req.Zone, &req.Digits)
	return cmd
}

func addMomentFlags(cmd *cobra.Command, ts, zone, digits *string) {
	cmd.Flags().StringVar(ts, "ts", "", "Unix timestamp in seconds (default now)")
	cmd.Flags().StringVar(zone, "zone", "", "IANA time zone (default CALENDAR_DEFAULT_ZONE)")
	cmd.Flags().StringVar(digits, "digits", "", "Numeral style: fa or en (default CALENDAR_DIGITS)")
}

// NewToJalaliCommand creates the to-jalali command
func NewToJalaliCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "to-jalali YEAR MONTH DAY",
		Short:   "Convert a Gregorian date to Jalali",
		Example: "  shamsi to-jalali 2024 3 20",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parseDateArgs(args)
			if err != nil {
				return err
			}
			svc, err := newCalendarService()
			if err != nil {
				return err
			}
			resp, err := svc.ToJalali(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%04d/%02d/%02d %s\n", resp.Year, resp.Month, resp.Day, resp.MonthName)
			return nil
		},
	}
}

// NewToGregorianCommand creates the to-gregorian command
func NewToGregorianCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "to-gregorian YEAR MONTH DAY",
		Short:   "Convert a Jalali date to Gregorian",
		Example: "  shamsi to-gregorian 1403 1 1",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parseDateArgs(args)
			if err != nil {
				return err
			}
			svc, err := newCalendarService()
			if err != nil {
				return err
			}
			resp, err := svc.ToGregorian(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%04d-%02d-%02d\n", resp.Year, resp.Month, resp.Day)
			return nil
		},
	}
}

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate YEAR MONTH DAY",
		Short: "Check whether a Jalali date exists",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := parseDateArgs(args)
			if err != nil {
				return err
			}
			svc, err := newCalendarService()
			if err != nil {
				return err
			}
			resp, err := svc.Validate(cmd.Context(), req)
			if err != nil {
				return err
			}
			if !resp.Valid {
				return fmt.Errorf("%d/%d/%d is not a valid Jalali date", req.Year, req.Month, req.Day)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}

// NewTranslitCommand creates the translit command
func NewTranslitCommand() *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:     "translit TEXT",
		Short:   "Convert digits between Latin and Persian",
		Example: "  shamsi translit 1403/01/01 --to fa",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newCalendarService()
			if err != nil {
				return err
			}
			resp, err := svc.Transliterate(cmd.Context(), ports.TransliterateRequest{Text: args[0], To: to})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Result)
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "fa", "Target numeral style: fa or en")
	return cmd
}

// NewDateCommand creates the date command
func NewDateCommand() *cobra.Command {
	var req ports.GetDateRequest

	cmd := &cobra.Command{
		Use:   "date",
		Short: "Print the Jalali breakdown of a timestamp as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newCalendarService()
			if err != nil {
				return err
			}
			resp, err := svc.GetDate(cmd.Context(), req)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}

	addMomentFlags(cmd, &req.Timestamp, &req.Zone, &req.Digits)
	return cmd
}

// NewMktimeCommand creates the mktime command
func NewMktimeCommand() *cobra.Command {
	var req ports.MktimeRequest

	cmd := &cobra.Command{
		Use:     "mktime YEAR MONTH DAY",
		Short:   "Convert a Jalali wall-clock time to a Unix timestamp",
		Example: "  shamsi mktime 1403 1 1 --hour 12 --zone Asia/Tehran",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := parseDateArgs(args)
			if err != nil {
				return err
			}
			req.Year, req.Month, req.Day = date.Year, date.Month, date.Day

			svc, err := newCalendarService()
			if err != nil {
				return err
			}
			resp, err := svc.Mktime(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), resp.Timestamp)
			return nil
		},
	}

	cmd.Flags().IntVar(&req.Hour, "hour", 0, "Hour (0-23)")
	cmd.Flags().IntVar(&req.Minute, "minute", 0, "Minute (0-59)")
	cmd.Flags().IntVar(&req.Second, "second", 0, "Second (0-59)")
	cmd.Flags().StringVar(&req.Zone, "zone", "", "IANA time zone (default CALENDAR_DEFAULT_ZONE)")
	return cmd
}
