package entities

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

var (
	rePresent = regexp.MustCompile(`(?i)\b(present|current|now|ongoing|to\s+date)\b`)

	// "Jan 2020", "January 2020", "Sept. 2020"
	reMonthYear = regexp.MustCompile(`(?i)\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+('?\d{2}|\d{4})\b`)

	// "01/2020", "1-2020"
	reNumMonthYear = regexp.MustCompile(`\b(0?[1-9]|1[0-2])[/-](\d{4})\b`)

	reYear = regexp.MustCompile(`\b(19|20)\d{2}\b`)
)

// ParseDateRange parses an employment date range such as
// "Jan 2020 - Present" or "2018-2021". It returns nil start and end
// when nothing parseable is present; a nil end with current=true means
// the position is ongoing. It never panics on malformed input.
func ParseDateRange(s string) (start, end *time.Time, current bool) {
	if strings.TrimSpace(s) == "" {
		return nil, nil, false
	}
	current = rePresent.MatchString(s)

	dates := collectDates(s)
	switch len(dates) {
	case 0:
		return nil, nil, current
	case 1:
		return &dates[0], nil, current
	}

	// More than two tokens can appear in noisy lines; the earliest is
	// the start and the latest the end.
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	start = &dates[0]
	if !current {
		end = &dates[len(dates)-1]
	}
	return start, end, current
}

// collectDates finds every date token in order of appearance, most
// specific pattern first so "Jan 2020" is not double-counted as "2020".
func collectDates(s string) []time.Time {
	type span struct{ lo, hi int }
	var out []time.Time
	var taken []span

	overlaps := func(lo, hi int) bool {
		for _, t := range taken {
			if lo < t.hi && hi > t.lo {
				return true
			}
		}
		return false
	}

	for _, m := range reMonthYear.FindAllStringSubmatchIndex(s, -1) {
		lo, hi := m[0], m[1]
		mon := monthsByPrefix[strings.ToLower(s[m[2]:m[3]])]
		yr := parseYear(strings.TrimPrefix(s[m[4]:m[5]], "'"))
		if yr == 0 {
			continue
		}
		out = append(out, time.Date(yr, mon, 1, 0, 0, 0, 0, time.UTC))
		taken = append(taken, span{lo, hi})
	}
	for _, m := range reNumMonthYear.FindAllStringSubmatchIndex(s, -1) {
		lo, hi := m[0], m[1]
		if overlaps(lo, hi) {
			continue
		}
		mn, _ := strconv.Atoi(s[m[2]:m[3]])
		yr, _ := strconv.Atoi(s[m[4]:m[5]])
		out = append(out, time.Date(yr, time.Month(mn), 1, 0, 0, 0, 0, time.UTC))
		taken = append(taken, span{lo, hi})
	}
	for _, m := range reYear.FindAllStringIndex(s, -1) {
		if overlaps(m[0], m[1]) {
			continue
		}
		yr, _ := strconv.Atoi(s[m[0]:m[1]])
		out = append(out, time.Date(yr, time.January, 1, 0, 0, 0, 0, time.UTC))
		taken = append(taken, span{m[0], m[1]})
	}
	return out
}

// parseYear accepts 4-digit years and 2-digit years with a pivot at
// 50: "99" is 1999, "21" is 2021.
func parseYear(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	switch {
	case n >= 1900 && n <= 2100:
		return n
	case n >= 0 && n < 50:
		return 2000 + n
	case n >= 50 && n < 100:
		return 1900 + n
	}
	return 0
}
