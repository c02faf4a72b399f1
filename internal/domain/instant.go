package domain

import (
	"strconv"
	"strings"
	"time"
)

// Instant is an absolute point in time, independent of display timezone.
// The server emits timestamps in several encodings (epoch seconds, epoch
// milliseconds, and a family of ISO-8601 variants); Instant normalizes all
// of them on decode and always encodes back as RFC 3339 UTC.
type Instant struct {
	time.Time
}

// instantLayouts is tried in declared order; the first match wins.
var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseInstant parses an arbitrary server-supplied date representation.
// Numeric values are epoch timestamps: magnitudes above 10^12 are
// milliseconds, anything else seconds. Strings walk the layout ladder.
func ParseInstant(value string) (Instant, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Instant{}, &DecodeError{Raw: value}
	}

	if epoch, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return instantFromEpoch(epoch), nil
	}

	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return Instant{t.UTC()}, nil
		}
	}
	return Instant{}, &DecodeError{Raw: value}
}

func instantFromEpoch(epoch float64) Instant {
	abs := epoch
	if abs < 0 {
		abs = -abs
	}
	if abs > 1e12 {
		epoch /= 1000
	}
	sec := int64(epoch)
	nsec := int64((epoch - float64(sec)) * float64(time.Second))
	return Instant{time.Unix(sec, nsec).UTC()}
}

// UnmarshalJSON accepts either a JSON number or a JSON string.
func (i *Instant) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		return nil
	}
	raw = strings.Trim(raw, `"`)
	parsed, err := ParseInstant(raw)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// MarshalJSON always emits RFC 3339 UTC.
func (i Instant) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.UTC().Format(time.RFC3339) + `"`), nil
}

func (i Instant) Equal(other Instant) bool {
	return i.Time.Equal(other.Time)
}
