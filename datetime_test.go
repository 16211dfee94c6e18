package gotds

import (
	"testing"
	"time"
)

func TestDateTimeString(t *testing.T) {
	testcases := []struct {
		in   DateTime
		want string
	}{
		{DateTime{Year: 2023, Month: 12, Day: 25, Hour: 13, Minute: 30, Nanosecond: 3000000}, "2023-12-25 13:30:00.003"},
		{DateTime{Year: 1900, Month: 1, Day: 1}, "1900-01-01 00:00:00"},
		{DateTime{Year: 2024, Month: 3, Day: 1, Hour: 12, Offset: 120}, "2024-03-01 12:00:00 +02:00"},
		{DateTime{Year: 2024, Month: 3, Day: 1, Hour: 5, Minute: 30, Offset: -330}, "2024-03-01 05:30:00 -05:30"},
	}
	for _, tc := range testcases {
		t.Run(tc.want, func(t *testing.T) {
			assertEqualE(t, tc.in.String(), tc.want)
		})
	}
}

func TestDateTimeTime(t *testing.T) {
	d := DateTime{Year: 2024, Month: 3, Day: 1, Hour: 12, Offset: 120}
	assertTrueE(t, d.Time().Equal(time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)))
	_, offset := d.Time().Zone()
	assertEqualE(t, offset, 7200)

	utc := DateTime{Year: 1999, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59}
	assertEqualE(t, utc.Time().Location(), time.UTC)
}

func TestCrackDateTimeTickRounding(t *testing.T) {
	testcases := []struct {
		ticks uint32
		ms    int
	}{
		{0, 0},
		{1, 3},
		{2, 7},
		{3, 10},
		{299, 997},
	}
	for _, tc := range testcases {
		d, ok := crackDateTime(datetimeBytes(0, tc.ticks))
		assertTrueF(t, ok)
		assertEqualE(t, d.Nanosecond, tc.ms*int(time.Millisecond))
	}
}

func TestDecodeTimeOfDayRejectsOutOfRange(t *testing.T) {
	_, ok := decodeTimeOfDay([]byte{0xff, 0xff, 0xff, 0xff, 0xff}, 7)
	assertFalseE(t, ok, "more than a day")
	_, ok = decodeTimeOfDay([]byte{1, 2}, 0)
	assertFalseE(t, ok, "too short")
	_, ok = decodeTimeOfDay([]byte{1, 2, 3}, 8)
	assertFalseE(t, ok, "bad scale")
}
