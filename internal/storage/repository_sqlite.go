package storage

import (
	"errors"
	"time"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/game"

	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
}

func NewSQLiteRepository(db *gorm.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateSession(s *game.Session) error {
	return r.db.Create(s).Error
}

func (r *sqliteRepository) GetSessionByCode(code string) (*game.Session, error) {
	var s game.Session
	if err := r.db.Where("code = ?", code).First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *sqliteRepository) UpdateSession(s *game.Session) error {
	return r.db.Save(s).Error
}

func (r *sqliteRepository) RecordDecision(s *game.Session, d *game.Decision) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(s).Error; err != nil {
			return err
		}
		d.SessionID = s.ID
		return tx.Create(d).Error
	})
}

func (r *sqliteRepository) RecordResult(s *game.Session, res *game.Result) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(s).Error; err != nil {
			return err
		}
		res.SessionID = s.ID
		return tx.Create(res).Error
	})
}

func (r *sqliteRepository) ListDecisions(sessionID uint) ([]game.Decision, error) {
	var out []game.Decision
	if err := r.db.Where("session_id = ?", sessionID).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteIdleSessions soft-deletes idle sessions and their history. The rows
// stay behind for all-time stats but are no longer reachable by code.
func (r *sqliteRepository) DeleteIdleSessions(cutoff time.Time) (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		idle := tx.Model(&game.Session{}).Select("id").Where("last_activity_at < ?", cutoff)
		if err := tx.Where("session_id IN (?)", idle).Delete(&game.Decision{}).Error; err != nil {
			return err
		}
		res := tx.Where("last_activity_at < ?", cutoff).Delete(&game.Session{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected
		return nil
	})
	return deleted, err
}

type verdictRow struct {
	Verdict game.Verdict
	N       int64
}

// GetStats returns all-time session counts, verdict distribution over every
// finished playthrough, and the topTokens most committed tokens. Purged
// sessions and decisions still count.
func (r *sqliteRepository) GetStats(topTokens int) (*game.Stats, error) {
	if topTokens <= 0 {
		topTokens = 5
	}
	st := &game.Stats{Verdicts: map[game.Verdict]int64{}, TopTokens: []game.TokenCount{}}
	if err := r.db.Unscoped().Model(&game.Session{}).Count(&st.SessionsStarted).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&game.Result{}).Count(&st.PlaythroughsCompleted).Error; err != nil {
		return nil, err
	}

	var rows []verdictRow
	if err := r.db.Model(&game.Result{}).
		Select("verdict, count(*) AS n").
		Group("verdict").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		st.Verdicts[row.Verdict] = row.N
	}

	if err := r.db.Unscoped().Model(&game.Decision{}).
		Select("token_id, count(*) AS count").
		Group("token_id").
		Order("count DESC").
		Order("token_id ASC").
		Limit(topTokens).
		Scan(&st.TopTokens).Error; err != nil {
		return nil, err
	}
	return st, nil
}
