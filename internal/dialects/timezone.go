package dialects

import (
	"regexp"
	"strconv"
)

// Timezone selects how timestamps are adjusted before formatting.
// It is either the UTC sentinel, the local-system sentinel, or a signed
// offset of the form (+|-)HH[:MM]. The zero value means UTC.
type Timezone string

const (
	// TimezoneUTC formats timestamps in UTC.
	TimezoneUTC Timezone = "Z"
	// TimezoneLocal formats timestamps using the local system offset.
	TimezoneLocal Timezone = "local"
)

var offsetRegex = regexp.MustCompile(`^([+-])(\d{1,2}):?(\d{2})?$`)

// IsLocal reports whether tz is the local-system sentinel.
func (tz Timezone) IsLocal() bool {
	return tz == TimezoneLocal
}

// OffsetMinutes parses tz as a numeric UTC offset. "Z" and the empty string
// are zero minutes. Strings of the form (+|-)HH[:MM] yield sign*(HH*60+MM),
// with MM defaulting to 0 when absent. Anything else is unparseable and
// reports ok=false, meaning no adjustment should be applied.
func (tz Timezone) OffsetMinutes() (minutes int, ok bool) {
	if tz == "" || tz == TimezoneUTC {
		return 0, true
	}
	m := offsetRegex.FindStringSubmatch(string(tz))
	if m == nil {
		return 0, false
	}
	hours, _ := strconv.Atoi(m[2])
	mins := 0
	if m[3] != "" {
		mins, _ = strconv.Atoi(m[3])
	}
	minutes = hours*60 + mins
	if m[1] == "-" {
		minutes = -minutes
	}
	return minutes, true
}
