package storage

import (
	"fmt"
	"time"
)

// WordStat counts how often a vocabulary word has been cleared.
type WordStat struct {
	Word        string
	Times       int
	LastCleared time.Time
}

// RecordClearedWords adds one clear to each word for the given game.
// Empty words are skipped. All words are written in one transaction.
func (s *Store) RecordClearedWords(gameID string, words []string) error {
	if len(words) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	stmt, err := tx.Prepare(
		`INSERT INTO cleared_words (game_id, word, times, last_cleared)
		 VALUES (?, ?, 1, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id, word) DO UPDATE SET
		     times = times + 1,
		     last_cleared = CURRENT_TIMESTAMP`,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prepare word insert: %w", err)
	}
	defer stmt.Close()

	for _, w := range words {
		if w == "" {
			continue
		}
		if _, err := stmt.Exec(gameID, w); err != nil {
			return fmt.Errorf("storage: cannot record word %q: %w", w, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit words: %w", err)
	}
	return nil
}

// TopWords returns the most cleared words. An empty gameID aggregates
// across all games.
func (s *Store) TopWords(gameID string, limit int) ([]WordStat, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT word, SUM(times) AS total, MAX(last_cleared)
		 FROM cleared_words
		 WHERE (? = '' OR game_id = ?)
		 GROUP BY word
		 ORDER BY total DESC, word ASC
		 LIMIT ?`

	rows, err := s.db.Query(query, gameID, gameID, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query words: %w", err)
	}
	defer rows.Close()

	var stats []WordStat
	for rows.Next() {
		var ws WordStat
		var last any
		if err := rows.Scan(&ws.Word, &ws.Times, &last); err != nil {
			return nil, fmt.Errorf("storage: cannot scan word row: %w", err)
		}
		ws.LastCleared = parseTime(last)
		stats = append(stats, ws)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

// ClearWords deletes word statistics. An empty gameID deletes everything.
func (s *Store) ClearWords(gameID string) error {
	_, err := s.db.Exec("DELETE FROM cleared_words WHERE (? = '' OR game_id = ?)", gameID, gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear words: %w", err)
	}
	return nil
}
