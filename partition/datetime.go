package partition

import (
	"fmt"
	"strings"
	"time"
)

// DatetimeField enumerates the integer fields which can be extracted from datetime values
type DatetimeField int

const (
	// Year is the calendar year
	Year DatetimeField = iota
	// Month is the month of the year, 1-12
	Month
	// Day is the day of the month, 1-31
	Day
	// Hour is the hour of the day, 0-23
	Hour
	// Minute is the minute of the hour, 0-59
	Minute
	// Second is the second of the minute, 0-59
	Second
	// Weekday is the day of the week, with Monday=0 and Sunday=6
	Weekday
	// DayOfYear is the ordinal day of the year, 1-366
	DayOfYear
)

func (f DatetimeField) extract(t time.Time) int64 {
	switch f {
	case Year:
		return int64(t.Year())
	case Month:
		return int64(t.Month())
	case Day:
		return int64(t.Day())
	case Hour:
		return int64(t.Hour())
	case Minute:
		return int64(t.Minute())
	case Second:
		return int64(t.Second())
	case Weekday:
		return int64((t.Weekday() + 6) % 7)
	case DayOfYear:
		return int64(t.YearDay())
	}
	return 0
}

func datetimeValues(x interface{}) (vector, *TimeArray, error) {
	v, ok := x.(vector)
	if !ok {
		return nil, nil, fmt.Errorf("datetime properties require a Series or Index, not %T", x)
	}
	ta, ok := v.vector().(*TimeArray)
	if !ok {
		return nil, nil, fmt.Errorf("datetime properties require datetime values, not %s", v.vector().DType().Name())
	}
	return v, ta, nil
}

// ExtractDatetime extracts an integer field from every value of a datetime Series or Index
func ExtractDatetime(x interface{}, field DatetimeField) (interface{}, error) {
	v, ta, err := datetimeValues(x)
	if err != nil {
		return nil, err
	}
	res := make(Int64Array, len(ta.Values))
	for i, t := range ta.Values {
		res[i] = field.extract(t)
	}
	return v.withValues(v.Name(), res), nil
}

// Strftime renders every value of a datetime Series or Index using a C-style
// format string, e.g. "%Y-%m-%d"
func Strftime(x interface{}, format string) (interface{}, error) {
	v, ta, err := datetimeValues(x)
	if err != nil {
		return nil, err
	}
	res := make(StringArray, len(ta.Values))
	for i, t := range ta.Values {
		if res[i], err = strftime(t, format); err != nil {
			return nil, err
		}
	}
	return v.withValues(v.Name(), res), nil
}

// strftimeLayouts maps strftime directives to Go reference layouts
var strftimeLayouts = map[byte]string{
	'Y': "2006",
	'y': "06",
	'm': "01",
	'd': "02",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'b': "Jan",
	'B': "January",
	'a': "Mon",
	'A': "Monday",
	'j': "002",
	'z': "-0700",
	'Z': "MST",
}

// strftime formats each directive on its own, so that literal text is never read as a layout
func strftime(t time.Time, format string) (string, error) {
	var res strings.Builder
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			res.WriteByte(c)
			continue
		}
		i++
		if i >= len(format) {
			return "", fmt.Errorf("format %q ends with an incomplete directive", format)
		}
		switch d := format[i]; d {
		case '%':
			res.WriteByte('%')
		case 'f':
			fmt.Fprintf(&res, "%06d", t.Nanosecond()/1000)
		default:
			layout, ok := strftimeLayouts[d]
			if !ok {
				return "", fmt.Errorf("unsupported directive %%%c in format %q", d, format)
			}
			res.WriteString(t.Format(layout))
		}
	}
	return res.String(), nil
}
