package interpreter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DateResolution tags a resolved calendar date (midnight, clock's location)
// with whether the transcript stated it explicitly.
type DateResolution struct {
	Value    time.Time
	Explicit bool
}

var weekdayNames = []struct {
	name string
	day  time.Weekday
}{
	{"domingo", time.Sunday},
	{"segunda", time.Monday},
	{"terça", time.Tuesday},
	{"terca", time.Tuesday},
	{"quarta", time.Wednesday},
	{"quinta", time.Thursday},
	{"sexta", time.Friday},
	{"sábado", time.Saturday},
	{"sabado", time.Saturday},
}

var monthNames = map[string]time.Month{
	"janeiro":   time.January,
	"fevereiro": time.February,
	"março":     time.March,
	"marco":     time.March,
	"abril":     time.April,
	"maio":      time.May,
	"junho":     time.June,
	"julho":     time.July,
	"agosto":    time.August,
	"setembro":  time.September,
	"outubro":   time.October,
	"novembro":  time.November,
	"dezembro":  time.December,
}

var (
	numericDateRe = regexp.MustCompile(`(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?`)
	writtenDateRe = regexp.MustCompile(`(\d{1,2}) de ([a-zçã]+)(?: de (\d{4}))?`)
	dayOfMonthRe  = regexp.MustCompile(` dia (\d{1,2})\b`)
)

// dateRule isolates the substring of the transcript that encodes the date.
// Rules run in order; the first match wins.
type dateRule struct {
	name    string
	extract func(t string) (string, bool)
}

var dateRules = []dateRule{
	{"hoje", func(t string) (string, bool) {
		if strings.Contains(t, "hoje") {
			return "hoje", true
		}
		return "", false
	}},
	{"amanhã", func(t string) (string, bool) {
		if strings.Contains(t, "amanhã") || strings.Contains(t, "amanha") {
			return "amanhã", true
		}
		return "", false
	}},
	{"weekday", func(t string) (string, bool) {
		for _, wd := range weekdayNames {
			if strings.Contains(t, wd.name) {
				return "próxima " + wd.name, true
			}
		}
		return "", false
	}},
	{"numeric", func(t string) (string, bool) {
		if m := numericDateRe.FindString(t); m != "" {
			return m, true
		}
		return "", false
	}},
	{"written-month", func(t string) (string, bool) {
		if m := writtenDateRe.FindStringSubmatch(t); m != nil {
			if _, known := monthNames[m[2]]; known {
				return m[0], true
			}
		}
		return "", false
	}},
	{"dia-n", func(t string) (string, bool) {
		if m := dayOfMonthRe.FindStringSubmatch(t); m != nil {
			return "dia " + m[1], true
		}
		return "", false
	}},
}

// ExtractDateExpression isolates the date cue from a lowercased transcript.
// Empty means no cue, which resolves to today.
func ExtractDateExpression(t string) string {
	for _, r := range dateRules {
		if expr, ok := r.extract(t); ok {
			return expr
		}
	}
	return ""
}

// ResolveDate converts a date expression into a concrete date relative to
// now. Unparseable expressions fall back to today rather than failing the
// whole command.
func ResolveDate(expr string, now time.Time) DateResolution {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case expr == "":
		return DateResolution{Value: today}
	case expr == "hoje":
		return DateResolution{Value: today, Explicit: true}
	case expr == "amanhã":
		return DateResolution{Value: today.AddDate(0, 0, 1), Explicit: true}
	case strings.HasPrefix(expr, "próxima "):
		return resolveWeekday(strings.TrimPrefix(expr, "próxima "), today, now)
	case strings.HasPrefix(expr, "dia "):
		return resolveDayOfMonth(strings.TrimPrefix(expr, "dia "), today, now)
	}

	if m := numericDateRe.FindStringSubmatch(expr); m != nil {
		return resolveNumericDate(m, today, now)
	}
	if m := writtenDateRe.FindStringSubmatch(expr); m != nil {
		return resolveWrittenDate(m, today, now)
	}
	return DateResolution{Value: today}
}

// resolveWeekday finds the next occurrence of the named weekday. When today
// already is that weekday the full week is added: "próxima segunda" said on
// a Monday means the Monday seven days out, never today.
func resolveWeekday(name string, today, now time.Time) DateResolution {
	for _, wd := range weekdayNames {
		if wd.name != name {
			continue
		}
		add := (int(wd.day) - int(now.Weekday()) + 7) % 7
		if add == 0 {
			add = 7
		}
		return DateResolution{Value: today.AddDate(0, 0, add), Explicit: true}
	}
	return DateResolution{Value: today}
}

// resolveDayOfMonth handles "dia N": day N of the current month, rolled
// forward to next month when N already passed. Never a past date.
func resolveDayOfMonth(s string, today, now time.Time) DateResolution {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 31 {
		return DateResolution{Value: today}
	}
	month := now.Month()
	if n < now.Day() {
		month++ // time.Date normalizes December overflow
	}
	return DateResolution{
		Value:    time.Date(now.Year(), month, n, 0, 0, 0, 0, now.Location()),
		Explicit: true,
	}
}

func resolveNumericDate(m []string, today, now time.Time) DateResolution {
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return DateResolution{Value: today}
	}

	year := now.Year()
	if m[3] != "" {
		y, _ := strconv.Atoi(m[3])
		if y < 100 {
			y += 2000
		}
		year = y
	}
	return DateResolution{
		Value:    time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location()),
		Explicit: true,
	}
}

func resolveWrittenDate(m []string, today, now time.Time) DateResolution {
	day, _ := strconv.Atoi(m[1])
	month, known := monthNames[m[2]]
	if !known || day < 1 || day > 31 {
		return DateResolution{Value: today}
	}

	year := now.Year()
	if m[3] != "" {
		year, _ = strconv.Atoi(m[3])
	}
	return DateResolution{
		Value:    time.Date(year, month, day, 0, 0, 0, 0, now.Location()),
		Explicit: true,
	}
}
