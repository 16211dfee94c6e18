package gotds

import (
	"encoding/binary"
	"fmt"
	"time"
)

// DateTime is a cracked datetime value. Offset is the zone offset in minutes
// and is only set for datetimeoffset columns.
type DateTime struct {
	Year       int
	Month      int
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
	Offset     int
}

// Time returns d as a time.Time, in UTC unless d carries an offset.
func (d DateTime) Time() time.Time {
	loc := time.UTC
	if d.Offset != 0 {
		loc = time.FixedZone("", d.Offset*60)
	}
	return time.Date(d.Year, time.Month(d.Month), d.Day, d.Hour, d.Minute, d.Second, d.Nanosecond, loc)
}

func (d DateTime) String() string {
	s := fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", d.Year, d.Month, d.Day, d.Hour, d.Minute, d.Second)
	if d.Nanosecond != 0 {
		s += fmt.Sprintf(".%03d", d.Nanosecond/int(time.Millisecond))
	}
	if d.Offset != 0 {
		sign := '+'
		off := d.Offset
		if off < 0 {
			sign, off = '-', -off
		}
		s += fmt.Sprintf(" %c%02d:%02d", sign, off/60, off%60)
	}
	return s
}

func (d DateTime) isZero() bool {
	return d == DateTime{}
}

func crackTime(t time.Time, offset int) DateTime {
	return DateTime{
		Year:       t.Year(),
		Month:      int(t.Month()),
		Day:        t.Day(),
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Nanosecond: t.Nanosecond(),
		Offset:     offset,
	}
}

var (
	datetimeEpoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	dateEpoch     = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
)

const (
	ticksPerDay   = 300 * 86400
	minutesPerDay = 24 * 60
)

// crackDateTime decodes a datetime or smalldatetime value. ok is false for
// a malformed value.
func crackDateTime(raw []byte) (DateTime, bool) {
	switch len(raw) {
	case 8:
		days := int32(binary.LittleEndian.Uint32(raw[0:4]))
		ticks := binary.LittleEndian.Uint32(raw[4:8])
		if ticks >= ticksPerDay {
			return DateTime{}, false
		}
		// ticks are 1/300 s, rounded to the nearest millisecond
		ms := (int64(ticks)*20 + 3) / 6
		t := datetimeEpoch.AddDate(0, 0, int(days)).Add(time.Duration(ms) * time.Millisecond)
		return crackTime(t, 0), true
	case 4:
		days := binary.LittleEndian.Uint16(raw[0:2])
		minutes := binary.LittleEndian.Uint16(raw[2:4])
		if minutes >= minutesPerDay {
			return DateTime{}, false
		}
		t := datetimeEpoch.AddDate(0, 0, int(days)).Add(time.Duration(minutes) * time.Minute)
		return crackTime(t, 0), true
	}
	return DateTime{}, false
}

func decodeDays(raw []byte) time.Time {
	days := int(raw[0]) | int(raw[1])<<8 | int(raw[2])<<16
	return dateEpoch.AddDate(0, 0, days)
}

// decodeTimeOfDay reads a scaled time of day of 3 to 5 bytes.
func decodeTimeOfDay(raw []byte, scale int) (time.Duration, bool) {
	if len(raw) < 3 || len(raw) > 5 || scale < 0 || scale > 7 {
		return 0, false
	}
	var v uint64
	for i := len(raw) - 1; i >= 0; i-- {
		v = v<<8 | uint64(raw[i])
	}
	for i := scale; i < 9; i++ {
		v *= 10
	}
	d := time.Duration(v)
	if d >= 24*time.Hour {
		return 0, false
	}
	return d, true
}

func crackDate(raw []byte) (DateTime, bool) {
	if len(raw) != 3 {
		return DateTime{}, false
	}
	return crackTime(decodeDays(raw), 0), true
}

func crackTimeN(raw []byte, scale int) (DateTime, bool) {
	d, ok := decodeTimeOfDay(raw, scale)
	if !ok {
		return DateTime{}, false
	}
	return crackTime(datetimeEpoch.Add(d), 0), true
}

func crackDateTime2(raw []byte, scale int) (DateTime, bool) {
	if len(raw) < 6 {
		return DateTime{}, false
	}
	n := len(raw) - 3
	d, ok := decodeTimeOfDay(raw[:n], scale)
	if !ok {
		return DateTime{}, false
	}
	return crackTime(decodeDays(raw[n:]).Add(d), 0), true
}

// crackDateTimeOffset decodes a UTC datetime2 followed by a signed offset in minutes.
func crackDateTimeOffset(raw []byte, scale int) (DateTime, bool) {
	if len(raw) < 8 {
		return DateTime{}, false
	}
	n := len(raw) - 2
	utc, ok := crackDateTime2(raw[:n], scale)
	if !ok {
		return DateTime{}, false
	}
	offset := int(int16(binary.LittleEndian.Uint16(raw[n:])))
	local := utc.Time().In(time.FixedZone("", offset*60))
	return crackTime(local, offset), true
}
