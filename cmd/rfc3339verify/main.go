// Command rfc3339verify formats one timestamp per day of the supported
// calendar and checks each result against the time package's parser.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/ngrash/go-rfc3339/internal/civil"
	"github.com/ngrash/go-rfc3339/rfc3339"
)

var (
	stepFlag   = flag.Uint("step", 1, "Number of days between checked timestamps")
	offsetFlag = flag.Int("offset", 0, "UTC offset in minutes")
	nsecFlag   = flag.Int("nsec", 123000000, "Nanosecond fraction")
	secFlag    = flag.Int("sec", 12*3600+34*60+56, "Second of the local day")
	maxFlag    = flag.Int("max", 10, "Stop after this many mismatches")
)

// result is what a formatted timestamp says about itself, and what it
// should say.
type result struct {
	Time    time.Time
	Year    int
	Month   int
	Day     int
	Weekday time.Weekday
}

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()
	if *stepFlag == 0 {
		return fmt.Errorf("step must be positive")
	}
	if *nsecFlag < 0 || *nsecFlag > rfc3339.MaxNsec {
		return fmt.Errorf("nsec must be in [0, %d]", rfc3339.MaxNsec)
	}
	if *offsetFlag < -rfc3339.MaxOffset || *offsetFlag > rfc3339.MaxOffset {
		return fmt.Errorf("offset must be in [%d, %d]", -rfc3339.MaxOffset, rfc3339.MaxOffset)
	}
	if *secFlag < 0 || *secFlag >= 86400 {
		return fmt.Errorf("sec must be in [0, 86399]")
	}

	var (
		buf        [rfc3339.MaxLen + 1]byte
		checked    int
		mismatches int
		step       = uint64(*stepFlag)
	)
	for rdn := uint64(civil.MinRataDie); rdn <= civil.MaxRataDie; rdn += step {
		local := (int64(rdn)-civil.UnixEpoch)*86400 + int64(*secFlag)
		ts := rfc3339.Timestamp{
			Sec:    local - int64(*offsetFlag)*60,
			Nsec:   int32(*nsecFlag),
			Offset: int16(*offsetFlag),
		}

		n, err := rfc3339.FormatTo(buf[:], ts)
		if err != nil {
			return fmt.Errorf("formatting %+v: %w", ts, err)
		}
		s := string(buf[:n])
		checked++

		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", s, err)
		}

		y, m, d := civil.Date(uint32(rdn))
		want := result{
			Time:    ts.Time(),
			Year:    int(y),
			Month:   int(m),
			Day:     int(d),
			Weekday: time.Weekday(civil.Weekday(uint32(rdn))),
		}
		got := result{
			Time:    parsed,
			Year:    parsed.Year(),
			Month:   int(parsed.Month()),
			Day:     parsed.Day(),
			Weekday: parsed.Weekday(),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			mismatches++
			fmt.Printf("%s (day %d) mismatch (-want +got):\n%s\n", s, rdn, diff)
			if mismatches >= *maxFlag {
				break
			}
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("%d mismatches in %d timestamps", mismatches, checked)
	}
	fmt.Printf("%d timestamps verified\n", checked)
	return nil
}
