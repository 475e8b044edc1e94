package rfc3339

import "github.com/ngrash/go-rfc3339/internal/civil"

// Len returns the length of the RFC 3339 text of ts, not counting the
// terminating NUL written by Format. It returns 0 if ts is out of range.
func Len(ts Timestamp) int {
	if ts.Valid() != nil {
		return 0
	}
	n, _, _ := layout(ts)
	return n
}

// layout returns the text length of a valid ts, the fraction to print and
// the length of the fraction including the dot.
func layout(ts Timestamp) (n int, f uint32, flen int) {
	n = len("YYYY-MM-DDThh:mm:ssZ")
	if ts.Offset != 0 {
		n += len("+hh:mm") - len("Z")
	}

	f = uint32(ts.Nsec)
	switch {
	case f == 0:
	case f%1000000 == 0:
		f, flen = f/1000000, len(".fff")
	case f%1000 == 0:
		f, flen = f/1000, len(".ffffff")
	default:
		flen = len(".fffffffff")
	}
	return n + flen, f, flen
}

// Format writes the RFC 3339 text of ts followed by a NUL byte into dst and
// returns the length of the text. It returns 0 and leaves dst untouched if ts
// is out of range or dst is too short to hold the text and the NUL byte.
//
// Format does not allocate.
func Format(dst []byte, ts Timestamp) int {
	if ts.Valid() != nil {
		return 0
	}

	n, f, flen := layout(ts)
	if n+1 > len(dst) {
		return 0
	}

	sec := uint64(ts.Sec + int64(ts.Offset)*60 + epoch)
	y, m, d := civil.Date(uint32(sec / secondsPerDay))

	p := dst[:n+1]
	p[3] = '0' + byte(y%10)
	y /= 10
	p[2] = '0' + byte(y%10)
	y /= 10
	p[1] = '0' + byte(y%10)
	y /= 10
	p[0] = '0' + byte(y%10)
	p = p[4:]

	p[2] = '0' + byte(m%10)
	m /= 10
	p[1] = '0' + byte(m%10)
	p[0] = '-'
	p = p[3:]

	p[2] = '0' + byte(d%10)
	d /= 10
	p[1] = '0' + byte(d%10)
	p[0] = '-'
	p = p[3:]

	// Seconds of the day are split into base-60 digit pairs by dividing by 10
	// and 6 in turn.
	v := uint32(sec % secondsPerDay)
	p[8] = '0' + byte(v%10)
	v /= 10
	p[7] = '0' + byte(v%6)
	v /= 6
	p[6] = ':'
	p[5] = '0' + byte(v%10)
	v /= 10
	p[4] = '0' + byte(v%6)
	v /= 6
	p[3] = ':'
	p[2] = '0' + byte(v%10)
	v /= 10
	p[1] = '0' + byte(v%10)
	p[0] = 'T'
	p = p[9:]

	if flen > 0 {
		for i := flen - 1; i > 0; i-- {
			p[i] = '0' + byte(f%10)
			f /= 10
		}
		p[0] = '.'
		p = p[flen:]
	}

	if ts.Offset == 0 {
		p[0] = 'Z'
		p = p[1:]
	} else {
		if ts.Offset < 0 {
			p[0] = '-'
			v = uint32(-ts.Offset)
		} else {
			p[0] = '+'
			v = uint32(ts.Offset)
		}
		p[5] = '0' + byte(v%10)
		v /= 10
		p[4] = '0' + byte(v%6)
		v /= 6
		p[3] = ':'
		p[2] = '0' + byte(v%10)
		v /= 10
		p[1] = '0' + byte(v%10)
		p = p[6:]
	}
	p[0] = 0

	return n
}

// AppendFormat appends the RFC 3339 text of ts to b and returns the extended
// buffer. It returns b unchanged and ErrOutOfRange if ts is out of range.
func AppendFormat(b []byte, ts Timestamp) ([]byte, error) {
	var buf [MaxLen + 1]byte
	n := Format(buf[:], ts)
	if n == 0 {
		return b, ErrOutOfRange
	}
	return append(b, buf[:n]...), nil
}

// FormatTo is like Format but reports why nothing was written.
func FormatTo(dst []byte, ts Timestamp) (int, error) {
	if err := ts.Valid(); err != nil {
		return 0, err
	}
	if n := Format(dst, ts); n > 0 {
		return n, nil
	}
	return 0, ErrBufferTooSmall
}
