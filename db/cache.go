package db

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"time"
)

// CachedRewrite is a stored rewrite result
type CachedRewrite struct {
	Key       string
	PresetID  string
	Language  string
	Output    string
	Score     int
	CreatedAt int64
}

// CacheKey derives the lookup key for a rewrite request. Identical inputs
// always map to the same key.
func CacheKey(text, presetID, language string) string {
	h := sha256.Sum256([]byte(text + "|" + presetID + "|" + language))
	return hex.EncodeToString(h[:])
}

// GetCachedRewrite returns the cached result for a key, or nil when absent
func GetCachedRewrite(key string) (*CachedRewrite, error) {
	var c CachedRewrite
	err := GetDB().QueryRow(`
		SELECT key, preset_id, language, output, score, created_at
		FROM rewrite_cache WHERE key = ?
	`, key).Scan(&c.Key, &c.PresetID, &c.Language, &c.Output, &c.Score, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// SetCachedRewrite stores or replaces a rewrite result
func SetCachedRewrite(key, presetID, language, output string, score int) error {
	_, err := GetDB().Exec(`
		INSERT INTO rewrite_cache (key, preset_id, language, output, score, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			output = excluded.output,
			score = excluded.score,
			created_at = excluded.created_at
	`, key, presetID, language, output, score, time.Now().UnixMilli())
	return err
}

// PruneCache deletes entries older than the given age
func PruneCache(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge).UnixMilli()
	res, err := GetDB().Exec("DELETE FROM rewrite_cache WHERE created_at < ?", cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
