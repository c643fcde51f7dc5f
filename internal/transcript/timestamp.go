package transcript

import (
	"strconv"
	"strings"
)

// ParseCueTimestamp converts a cue timestamp "HH:MM:SS.mmm" into seconds as
// hours*3600 + minutes*60 + seconds + millis/1000. Anything that does not have
// exactly three colon-separated parts resolves to 0; unparsable numeric parts
// count as 0.
func ParseCueTimestamp(ts string) float64 {
	parts := strings.Split(strings.TrimSpace(ts), ":")
	if len(parts) != 3 {
		return 0
	}

	hours := atoi(parts[0])
	minutes := atoi(parts[1])

	secPart, millisPart, _ := strings.Cut(parts[2], ".")
	if !strings.Contains(parts[2], ".") {
		// Some exporters use a comma as the decimal separator.
		secPart, millisPart, _ = strings.Cut(parts[2], ",")
	}
	seconds := atoi(secPart)
	millis := atoi(millisPart)

	return float64(hours*3600+minutes*60+seconds) + float64(millis)/1000
}

// ParseClockTimestamp converts "H:MM:SS" (1–2 digit hours) into whole seconds.
// Malformed input resolves to 0.
func ParseClockTimestamp(ts string) float64 {
	parts := strings.Split(strings.TrimSpace(ts), ":")
	if len(parts) != 3 {
		return 0
	}
	return float64(atoi(parts[0])*3600 + atoi(parts[1])*60 + atoi(parts[2]))
}

func atoi(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
