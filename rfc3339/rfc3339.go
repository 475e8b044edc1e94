// Package rfc3339 formats timestamps as RFC 3339 text without allocating.
// https://datatracker.ietf.org/doc/html/rfc3339
//
// The produced layout is
//
//	YYYY-MM-DDThh:mm:ss[.fff|.ffffff|.fffffffff](Z|±hh:mm)
//
// Fractional seconds are omitted when zero and otherwise use the shortest of
// millisecond, microsecond or nanosecond precision that represents the value
// exactly. A zero offset is written as "Z".
package rfc3339

import (
	"errors"
	"time"

	"github.com/ngrash/go-rfc3339/internal/civil"
)

var (
	// ErrOutOfRange is returned for timestamps whose local time falls outside
	// 0001-01-01T00:00:00 to 9999-12-31T23:59:59, or whose Nsec or Offset
	// fields are outside their domain.
	ErrOutOfRange = errors.New("rfc3339: timestamp out of range")
	// ErrBufferTooSmall is returned when the destination cannot hold the
	// formatted timestamp.
	ErrBufferTooSmall = errors.New("rfc3339: buffer too small")
)

const (
	// MinSec is the local time 0001-01-01T00:00:00 in seconds since the Unix epoch.
	MinSec int64 = (civil.MinRataDie - civil.UnixEpoch) * secondsPerDay
	// MaxSec is the local time 9999-12-31T23:59:59 in seconds since the Unix epoch.
	MaxSec int64 = (civil.MaxRataDie-civil.UnixEpoch+1)*secondsPerDay - 1

	// MaxNsec is the largest valid value of Timestamp.Nsec.
	MaxNsec = 999999999
	// MaxOffset is the largest valid magnitude of Timestamp.Offset in minutes.
	MaxOffset = 1439

	// MaxLen is the length of the longest formatted timestamp,
	// e.g. "2006-01-02T15:04:05.999999999+07:00".
	MaxLen = len("YYYY-MM-DDThh:mm:ss.fffffffff+hh:mm")

	secondsPerDay = 86400
	// epoch shifts Unix seconds to seconds since 0000-12-31T00:00:00, so that
	// dividing by secondsPerDay yields a Rata Die day number.
	epoch = civil.UnixEpoch * secondsPerDay
)

// Timestamp is an instant together with the UTC offset it is displayed in.
type Timestamp struct {
	// Sec is the number of seconds since 1970-01-01T00:00:00Z.
	Sec int64
	// Nsec is the nanosecond fraction of the second in [0, 999999999].
	Nsec int32
	// Offset is the UTC offset in minutes in [-1439, 1439].
	Offset int16
}

// FromTime returns the Timestamp of t in t's location.
// Zone offsets that are not a whole number of minutes are truncated.
// Offsets too large for Timestamp.Offset yield a Timestamp that is not Valid.
func FromTime(t time.Time) Timestamp {
	_, off := t.Zone()
	m := off / 60
	if m > MaxOffset {
		m = MaxOffset + 1
	} else if m < -MaxOffset {
		m = -MaxOffset - 1
	}
	return Timestamp{
		Sec:    t.Unix(),
		Nsec:   int32(t.Nanosecond()),
		Offset: int16(m),
	}
}

// Time returns ts as a time.Time in a fixed zone with ts.Offset.
func (ts Timestamp) Time() time.Time {
	t := time.Unix(ts.Sec, int64(ts.Nsec))
	if ts.Offset == 0 {
		return t.UTC()
	}
	return t.In(time.FixedZone("", int(ts.Offset)*60))
}

// Valid returns ErrOutOfRange if ts cannot be formatted.
func (ts Timestamp) Valid() error {
	sec := ts.Sec + int64(ts.Offset)*60
	if sec < MinSec || sec > MaxSec ||
		ts.Nsec < 0 || ts.Nsec > MaxNsec ||
		ts.Offset < -MaxOffset || ts.Offset > MaxOffset {
		return ErrOutOfRange
	}
	return nil
}

// String returns the RFC 3339 representation of ts,
// or "<invalid timestamp>" if ts is out of range.
func (ts Timestamp) String() string {
	var buf [MaxLen + 1]byte
	n := Format(buf[:], ts)
	if n == 0 {
		return "<invalid timestamp>"
	}
	return string(buf[:n])
}

// MarshalText implements encoding.TextMarshaler.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return AppendFormat(make([]byte, 0, MaxLen), ts)
}
