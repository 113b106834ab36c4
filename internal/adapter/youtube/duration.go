package youtube

import (
	"regexp"
	"strconv"
)

var isoDurationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// parseISODuration converts an ISO-8601 duration code of the form PT#H#M#S
// into seconds. Missing components count as 0; anything malformed yields 0.
func parseISODuration(code string) int {
	match := isoDurationRe.FindStringSubmatch(code)
	if match == nil {
		return 0
	}

	hours, _ := strconv.Atoi(match[1])
	minutes, _ := strconv.Atoi(match[2])
	seconds, _ := strconv.Atoi(match[3])

	return hours*3600 + minutes*60 + seconds
}
