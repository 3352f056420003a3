package paginate

import (
	"regexp"
	"strings"
)

var (
	reBulletPrefix  = regexp.MustCompile(`^\s*([\*\-]|\d+\.)\s*`)
	reHeadingPrefix = regexp.MustCompile(`^\s*#+\s*`)
)

// CleanLine strips leading bullet markers, leading heading markers, and
// emphasis markers from one line, then trims whitespace.
func CleanLine(line string) string {
	line = reBulletPrefix.ReplaceAllString(line, "")
	line = reHeadingPrefix.ReplaceAllString(line, "")
	line = strings.ReplaceAll(line, "**", "")
	line = strings.ReplaceAll(line, "*", "")
	return strings.TrimSpace(line)
}
