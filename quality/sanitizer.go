package quality

import (
	"regexp"
	"strings"
)

// Filler the backend tends to bolt onto otherwise good output. Prefixes are
// tried before suffixes; interior content is never touched.
var prefixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(sure[,!]?\s*)`),
	regexp.MustCompile(`(?i)^(certainly[,!]?\s*)`),
	regexp.MustCompile(`(?i)^(of course[,!]?\s*)`),
	regexp.MustCompile(`(?i)^(absolutely[,!]?\s*)`),
	regexp.MustCompile(`(?i)^(here is[^:]*:\s*)`),
	regexp.MustCompile(`(?i)^(here's[^:]*:\s*)`),
	regexp.MustCompile(`(?i)^(i've created[^:]*:\s*)`),
}

var suffixPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s*let me know if you (need|want|would like)[^.]*\.?\s*$`),
	regexp.MustCompile(`(?i)\s*feel free to[^.]*\.?\s*$`),
	regexp.MustCompile(`(?i)\s*hope this helps[^.]*\.?\s*$`),
	regexp.MustCompile(`(?i)\s*i hope this[^.]*\.?\s*$`),
}

// Clean strips known filler prefixes and suffixes from model output.
// Pure and idempotent; no backend call, no failure mode.
func Clean(text string) string {
	cleaned := text

	for _, re := range prefixPatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}
	for _, re := range suffixPatterns {
		cleaned = re.ReplaceAllString(cleaned, "")
	}

	return strings.TrimSpace(cleaned)
}
