package calendar

// date holds the fields shared by every calendar date type along with the
// Julian Day computed when the value was built.
type date struct {
	f  Fields
	jd JD
}

func (d date) Year() int { return d.f.Year }
func (d date) Month() int { return d.f.Month }
func (d date) Day() int { return d.f.Day }
func (d date) Hour() int { return d.f.Hour }
func (d date) Minute() int { return d.f.Minute }
func (d date) Second() float64 { return d.f.Second }

// Fields returns the date as a plain tuple.
func (d date) Fields() Fields { return d.f }

// JD returns the Julian Day of the date.
func (d date) JD() JD { return d.jd }

// Weekday returns the civil day of the week.
func (d date) Weekday() Weekday { return d.jd.Weekday() }

// IsZero reports whether the date was never built.
func (d date) IsZero() bool { return d == date{} }

func (d date) String() string { return d.f.String() }

// makeDate validates f against cal and caches its Julian Day.
func makeDate(cal Calendar, f Fields) (date, error) {
	jd, err := cal.ToJD(f.Year, f.Month, f.Day, f.Hour, f.Minute, f.Second)
	if err != nil {
		return date{}, err
	}
	return date{f: f, jd: jd}, nil
}

// dateFromJD builds a date in cal from a Julian Day.
func dateFromJD(cal Calendar, jd JD) (date, error) {
	f, err := cal.FromJD(jd)
	if err != nil {
		return date{}, err
	}
	return makeDate(cal, f)
}

// shifted applies o to d in cal.
func shifted(cal Calendar, d date, o Offset) (date, error) {
	if o.Value == 0 {
		return d, nil
	}
	f, err := shift(cal, d.f, d.jd, o)
	if err != nil {
		return date{}, err
	}
	return makeDate(cal, f)
}

func ymdhms(year, month, day, hour, minute int, second float64) Fields {
	return Fields{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: second}
}
