package daykey

import (
	"adventbot/internal/domain"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

// Layout - формат ключа дня.
const Layout = "2006-01-02"

// DefaultTimeZone - часовой пояс, в котором считается "сегодня".
const DefaultTimeZone = "Asia/Tokyo"

var dayPattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// publicationLayouts перечисляет форматы дат, встречающиеся в RSS и Atom.
// Буквенные зоны заранее заменяются числовым смещением, см. namedZoneOffsets.
// Форматы без зоны трактуются как UTC.
var publicationLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04 -0700",
	"Mon, 02 Jan 2006 15:04 -0700",
	time.RFC822Z,
	"2 Jan 2006 15:04:05 -0700",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02T15:04:05-0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	Layout,
}

// namedZoneOffsets - фиксированные смещения буквенных зон RFC 822.
// Прочие названия (например, JST) не распознаются.
var namedZoneOffsets = map[string]string{
	"UT":  "+0000",
	"UTC": "+0000",
	"GMT": "+0000",
	"EST": "-0500",
	"EDT": "-0400",
	"CST": "-0600",
	"CDT": "-0500",
	"MST": "-0700",
	"MDT": "-0600",
	"PST": "-0800",
	"PDT": "-0700",
}

var namedZoneSuffix = regexp.MustCompile(`^(.*\d)\s+([A-Za-z]+)$`)

// LoadLocation загружает часовой пояс по имени IANA.
// База зон встроена в бинарник, поэтому работает и на минимальных образах.
func LoadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load time zone %q: %w", name, err)
	}
	return loc, nil
}

// FormatDay возвращает календарную дату момента t в поясе loc в виде YYYY-MM-DD.
func FormatDay(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(Layout)
}

// ParseDay разбирает строку YYYY-MM-DD в полночь UTC этого дня.
// Нулевые, отрицательные и выходящие за календарь компоненты отклоняются.
func ParseDay(s string) (time.Time, error) {
	m := dayPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return time.Time{}, &domain.MalformedDateError{Input: s}
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])
	if year <= 0 || month <= 0 || day <= 0 {
		return time.Time{}, &domain.MalformedDateError{Input: s}
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, &domain.MalformedDateError{Input: s}
	}
	return t, nil
}

// ParsePublicationDate разбирает дату публикации записи.
// Результат не зависит от локального часового пояса машины.
// Возвращает false для пустой или нераспознанной строки.
func ParsePublicationDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if m := namedZoneSuffix.FindStringSubmatch(s); m != nil {
		offset, ok := namedZoneOffsets[strings.ToUpper(m[2])]
		if !ok {
			return time.Time{}, false
		}
		s = m[1] + " " + offset
	}
	for _, layout := range publicationLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// NextOccurrence возвращает ближайший момент после now, когда часы в поясе loc
// показывают clock (формат HH:MM).
func NextOccurrence(now time.Time, clock string, loc *time.Location) (time.Time, error) {
	hm, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	local := now.In(loc)
	next := time.Date(local.Year(), local.Month(), local.Day(), hm.Hour(), hm.Minute(), 0, 0, loc)
	if !next.After(local) {
		next = time.Date(local.Year(), local.Month(), local.Day()+1, hm.Hour(), hm.Minute(), 0, 0, loc)
	}
	return next, nil
}
