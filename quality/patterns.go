package quality

import (
	"encoding/json"
	"os"
	"regexp"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/voicebubble/voicebubble/log"
)

// defaultSlopPatterns is the compiled-in cross-category blocklist. It applies
// to every output regardless of category, on top of category-specific rules.
var defaultSlopPatterns = []string{
	`(?i)^(sure|certainly|of course|absolutely)[,!]`,
	`(?i)^(here is|here's|i've created|i have created)`,
	`(?i)hope this helps`,
	`(?i)let me know if you (need|want|would like)`,
	`(?i)feel free to`,
	`(?i)\bdelve\b`,
	`(?i)\bevergreen\b`,
	`(?i)\btapestry\b`,
	`(?i)in conclusion,`,
	`(?i)it's important to note`,
	`(?i)at the end of the day`,
}

// PatternSet holds the active forbidden-phrase patterns. The blocklist is
// policy data, not code: it can be replaced wholesale from a JSON file and
// hot-reloaded when that file changes.
type PatternSet struct {
	mu       sync.RWMutex
	patterns []*regexp.Regexp
	watcher  *fsnotify.Watcher
}

// NewPatternSet returns a set loaded with the compiled-in defaults.
func NewPatternSet() *PatternSet {
	ps := &PatternSet{}
	ps.patterns = compile(defaultSlopPatterns, "builtin")
	return ps
}

func compile(raw []string, source string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(raw))
	for _, p := range raw {
		re, err := regexp.Compile(p)
		if err != nil {
			log.Warn().Str("pattern", p).Str("source", source).Err(err).Msg("skipping invalid slop pattern")
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}

// Match returns every pattern that fires on the output, as pattern strings.
func (ps *PatternSet) Match(output string) []string {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	var hits []string
	for _, re := range ps.patterns {
		if re.MatchString(output) {
			hits = append(hits, re.String())
		}
	}
	return hits
}

// LoadFile replaces the pattern list from a JSON file holding an array of
// regex strings. The defaults are kept as a base; file patterns are appended.
func (ps *PatternSet) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var raw []string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	compiled := compile(defaultSlopPatterns, "builtin")
	compiled = append(compiled, compile(raw, path)...)

	ps.mu.Lock()
	ps.patterns = compiled
	ps.mu.Unlock()

	log.Info().Str("path", path).Int("patterns", len(compiled)).Msg("slop patterns loaded")
	return nil
}

// Watch loads the file and reloads it whenever it changes. A broken edit
// keeps the previous list in place.
func (ps *PatternSet) Watch(path string) error {
	if err := ps.LoadFile(path); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return err
	}
	ps.watcher = watcher

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					if err := ps.LoadFile(path); err != nil {
						log.Warn().Err(err).Str("path", path).Msg("slop pattern reload failed, keeping previous set")
					}
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("slop pattern watcher error")
			}
		}
	}()

	return nil
}

// Close stops the file watcher, if running.
func (ps *PatternSet) Close() {
	if ps.watcher != nil {
		ps.watcher.Close()
	}
}
