package utils

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

var (
	codeBlockRe  = regexp.MustCompile("```(?:json)?\\s*\\n?([\\s\\S]*?)\\n?```")
	jsonObjectRe = regexp.MustCompile(`\{[\s\S]*\}`)
	jsonArrayRe  = regexp.MustCompile(`\[[\s\S]*\]`)
)

// ErrNoJSON is returned when no well-formed JSON can be located in a response.
var ErrNoJSON = errors.New("unable to locate JSON in response")

// ExtractJSON locates the JSON payload in a model response. Models sometimes
// wrap JSON in markdown fences or surround it with prose; this tries, in
// order: the whole string, a fenced code block, the outermost object, the
// outermost array. The returned string is guaranteed to be valid JSON.
func ExtractJSON(content string) (string, error) {
	content = strings.TrimSpace(content)

	if json.Valid([]byte(content)) {
		return content, nil
	}

	if matches := codeBlockRe.FindStringSubmatch(content); len(matches) > 1 {
		candidate := strings.TrimSpace(matches[1])
		if json.Valid([]byte(candidate)) {
			return candidate, nil
		}
	}

	if match := jsonObjectRe.FindString(content); match != "" && json.Valid([]byte(match)) {
		return match, nil
	}

	if match := jsonArrayRe.FindString(content); match != "" && json.Valid([]byte(match)) {
		return match, nil
	}

	return "", ErrNoJSON
}

// UnmarshalLenient unmarshals a model response into v, tolerating fences and
// surrounding prose via ExtractJSON.
func UnmarshalLenient(content string, v any) error {
	payload, err := ExtractJSON(content)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(payload), v)
}
