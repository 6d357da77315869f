package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/limbo/twentyfourseven/internal/service"
)

const dateLayout = "2006-01-02"

var errBadParam = errors.New("invalid parameter")

// parseTime accepts RFC3339 timestamps and plain dates. A plain date is read in loc;
// with endOfDay it stands for the last instant of that day.
func parseTime(value string, loc *time.Location, endOfDay bool) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	d, err := time.ParseInLocation(dateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is neither a date nor a timestamp", errBadParam, value)
	}
	if endOfDay {
		return d.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
	}
	return d, nil
}

func (s *Server) queryTime(r *http.Request, name string, endOfDay bool) (time.Time, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required", errBadParam, name)
	}
	return parseTime(value, s.loc, endOfDay)
}

// queryOptionalTime returns nil when the parameter is absent.
func (s *Server) queryOptionalTime(r *http.Request, name string, endOfDay bool) (*time.Time, error) {
	if r.URL.Query().Get(name) == "" {
		return nil, nil
	}
	t, err := s.queryTime(r, name, endOfDay)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func queryUUID(r *http.Request, name string) (uuid.UUID, error) {
	value := r.URL.Query().Get(name)
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s must be a uuid", errBadParam, name)
	}
	return id, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return def, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadParam, name)
	}
	return n, nil
}

// monthRef reads the {year}/{month} path of the authenticated user.
func monthRef(r *http.Request) (service.MonthRef, error) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		return service.MonthRef{}, err
	}
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil || year < 1 || year > 9999 {
		return service.MonthRef{}, fmt.Errorf("%w: year", errBadParam)
	}
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || month < 1 || month > 12 {
		return service.MonthRef{}, fmt.Errorf("%w: month", errBadParam)
	}
	return service.MonthRef{UserID: uid, Year: year, Month: time.Month(month)}, nil
}
