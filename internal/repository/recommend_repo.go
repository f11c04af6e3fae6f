package repository

import (
	"errors"

	"github.com/damoang/angple-moderation/internal/domain"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// RecommendRepository defines the one-vote-per-user ledger operations.
// The ledger row and the aggregate counter on the content row always move
// in the same transaction.
type RecommendRepository interface {
	HasVoted(boardType string, contentID, userID int64) (bool, error)
	AddVote(boardType, postTable string, contentID, userID int64) (bool, error)
	RemoveVote(boardType, postTable string, contentID, userID int64) (bool, error)
	GetRecommendCount(postTable string, contentID int64) (int, error)
}

type recommendRepository struct {
	db *gorm.DB
}

// NewRecommendRepository creates a new RecommendRepository
func NewRecommendRepository(db *gorm.DB) RecommendRepository {
	return &recommendRepository{db: db}
}

// HasVoted checks whether the user already has a ledger entry for the content
func (r *recommendRepository) HasVoted(boardType string, contentID, userID int64) (bool, error) {
	var count int64
	err := r.db.Model(&domain.RecommendationEntry{}).
		Where("board_type = ? AND content_id = ? AND user_id = ?", boardType, contentID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AddVote inserts a ledger entry and increments recommend_count in one
// transaction. Returns false when the user had already voted: the unique key
// on (board_type, content_id, user_id) rejects the insert, so of two
// concurrent first votes exactly one wins and the loser is a clean no-op.
func (r *recommendRepository) AddVote(boardType, postTable string, contentID, userID int64) (bool, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		entry := &domain.RecommendationEntry{
			BoardType: boardType,
			ContentID: contentID,
			UserID:    userID,
		}
		if err := tx.Create(entry).Error; err != nil {
			return err
		}

		return tx.Table(postTable).
			Where("id = ?", contentID).
			UpdateColumn("recommend_count", gorm.Expr("recommend_count + 1")).Error
	})
	if err != nil {
		if isDuplicateKey(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// RemoveVote deletes the ledger entry and decrements recommend_count in one
// transaction. Returns false when there was no entry to remove; the decrement
// is conditioned on a positive counter so it can never go negative.
func (r *recommendRepository) RemoveVote(boardType, postTable string, contentID, userID int64) (bool, error) {
	removed := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("board_type = ? AND content_id = ? AND user_id = ?", boardType, contentID, userID).
			Delete(&domain.RecommendationEntry{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return nil
		}

		removed = true
		return tx.Table(postTable).
			Where("id = ? AND recommend_count > 0", contentID).
			UpdateColumn("recommend_count", gorm.Expr("recommend_count - 1")).Error
	})
	return removed, err
}

// GetRecommendCount returns the current aggregate counter from the post table
func (r *recommendRepository) GetRecommendCount(postTable string, contentID int64) (int, error) {
	var result struct {
		RecommendCount int `gorm:"column:recommend_count"`
	}
	err := r.db.Table(postTable).
		Select("recommend_count").
		Where("id = ?", contentID).
		Scan(&result).Error
	if err != nil {
		return 0, err
	}
	return result.RecommendCount, nil
}

// isDuplicateKey reports whether err is a unique-constraint violation
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
