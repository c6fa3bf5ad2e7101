package rewrite

import "github.com/voicebubble/voicebubble/db"

// SQLiteCache backs the engine cache with the shared sqlite database
type SQLiteCache struct{}

func NewSQLiteCache() *SQLiteCache {
	return &SQLiteCache{}
}

func (c *SQLiteCache) Get(text, presetID, language string) (string, int, bool, error) {
	cached, err := db.GetCachedRewrite(db.CacheKey(text, presetID, language))
	if err != nil || cached == nil {
		return "", 0, false, err
	}
	return cached.Output, cached.Score, true, nil
}

func (c *SQLiteCache) Set(text, presetID, language, output string, score int) error {
	return db.SetCachedRewrite(db.CacheKey(text, presetID, language), presetID, language, output, score)
}
