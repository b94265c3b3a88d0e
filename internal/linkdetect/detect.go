// Package linkdetect decides whether message text contains a link and
// extracts the matched link substrings for audit display.
package linkdetect

import "regexp"

// The three patterns run in a fixed order: Discord invites, YouTube links,
// then generic URLs. The generic pattern is a strict superset of the other
// two, so detection would work with it alone; the split is kept on purpose
// because extraction labels which category produced each match. Do not
// collapse them.
var patterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(https?://)?(www\.)?(discord\.(gg|io|me|li)|discordapp\.com/invite)/[a-zA-Z0-9]+`),
	regexp.MustCompile(`(?i)(https?://)?(www\.)?(youtube\.com|youtu\.be)/[^\s]+`),
	regexp.MustCompile(`(?i)(https?://)?(www\.)?([a-zA-Z0-9-]+\.)+[a-zA-Z]{2,}(/\S*)?`),
}

// ContainsLink reports whether text matches any of the link patterns.
func ContainsLink(text string) bool {
	for _, re := range patterns {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// ExtractLinks returns the distinct matched link substrings in pattern
// order, then match order within each pattern. Duplicates across patterns
// are suppressed by exact string equality. Callers cap the result for
// display (the audit embed shows at most 3).
func ExtractLinks(text string) []string {
	var links []string
	seen := map[string]struct{}{}
	for _, re := range patterns {
		for _, match := range re.FindAllString(text, -1) {
			if _, dup := seen[match]; dup {
				continue
			}
			seen[match] = struct{}{}
			links = append(links, match)
		}
	}
	return links
}
