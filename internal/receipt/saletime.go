package receipt

import (
	"strings"
	"time"

	"github.com/rezonia/qreet/internal/model"
)

var saleTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"02.01.2006 15:04",
	"20" + timestampLayout,
}

// ParseSaleTime reads a sale time as typed by a person or sent by a client:
// RFC 3339, "2006-01-02 15:04[:05]", "2006-01-02T15:04", "02.01.2006 15:04"
// or the code's own YYMMDDHHmm. Times without a zone are taken in loc.
func ParseSaleTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if loc == nil {
		loc = time.UTC
	}
	if len(s) == timestampLength && isDigits(s) {
		s = "20" + s
	}
	for _, layout := range saleTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, model.NewCodeError(model.ErrInvalidFormat, "timestamp", s, `expected "2006-01-02 15:04" or RFC 3339`, nil)
}
