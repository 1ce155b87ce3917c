package docmap

import (
	"regexp"
	"strconv"
	"strings"
)

// indexTokenPattern matches segments that address a list index. The
// optional decimal suffix is tolerated for historical reasons; since
// expressions are split on '.', a token can never actually carry one.
var indexTokenPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// SplitPath splits a dot-notation expression into its segments. The
// split is literal: there is no escaping for dots inside key names,
// no trimming, and an empty expression yields a single empty segment.
func SplitPath(expr string) []string {
	return strings.Split(expr, ".")
}

// IsIndexToken reports whether segment addresses a list index rather
// than an object key.
func IsIndexToken(segment string) bool {
	return indexTokenPattern.MatchString(segment)
}

func parseIndex(segment string) (int, error) {
	return strconv.Atoi(segment)
}
