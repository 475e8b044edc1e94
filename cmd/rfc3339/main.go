// Command rfc3339 prints the RFC 3339 text of Unix timestamps given as
// arguments, or of the current time when none are given.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ngrash/go-rfc3339/rfc3339"
)

var (
	nsecFlag   = flag.Int("nsec", 0, "Nanosecond fraction applied to every timestamp")
	offsetFlag = flag.Int("offset", 0, "UTC offset in minutes")
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func run() error {
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: rfc3339 [flags] [unix seconds...]")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		now := time.Now()
		args = []string{strconv.FormatInt(now.Unix(), 10)}
		if !isFlagSet("nsec") {
			*nsecFlag = now.Nanosecond()
		}
	}

	var buf [rfc3339.MaxLen + 1]byte
	for _, arg := range args {
		sec, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("parsing seconds: %w", err)
		}
		ts := rfc3339.Timestamp{
			Sec:    sec,
			Nsec:   int32(*nsecFlag),
			Offset: int16(*offsetFlag),
		}
		if int(ts.Nsec) != *nsecFlag || int(ts.Offset) != *offsetFlag {
			return fmt.Errorf("formatting %s: %w", arg, rfc3339.ErrOutOfRange)
		}
		n, err := rfc3339.FormatTo(buf[:], ts)
		if err != nil {
			return fmt.Errorf("formatting %s: %w", arg, err)
		}
		fmt.Println(string(buf[:n]))
	}
	return nil
}

func isFlagSet(name string) bool {
	var set bool
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
