package request

import (
	"time"

	requesterrors "github.com/Ezra12363/Conge-sub001/internal/request/errors"
)

// ComputeDays returns the inclusive day count of [start, end]:
// (end - start in whole days) + 1.
func ComputeDays(start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, requesterrors.ErrInvalidDateRange
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, requesterrors.ErrInvalidDateFormat
	}
	return t, nil
}
