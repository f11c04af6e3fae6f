package repository

import (
	"errors"

	"github.com/damoang/angple-moderation/internal/common"
	"github.com/damoang/angple-moderation/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PenaltyRepository handles user penalty and account status operations
type PenaltyRepository interface {
	ApplyPenalty(penalty *domain.PenaltyEntry, report *domain.ReportEntry) error
	LiftPenalty(id int64) (bool, error)
	GetByID(id int64) (*domain.PenaltyEntry, error)
	FindByUser(userID int64, page, limit int) ([]domain.PenaltyEntry, int64, error)
	GetAccountStatus(userID int64) (string, error)
}

type penaltyRepository struct {
	db *gorm.DB
}

// NewPenaltyRepository creates a new PenaltyRepository
func NewPenaltyRepository(db *gorm.DB) PenaltyRepository {
	return &penaltyRepository{db: db}
}

// ApplyPenalty records a penalty in one transaction: the optional source
// report, the penalty row, and the account status flip to restricted. Either
// all three land or none do. When report is non-nil its generated ID is
// linked onto the penalty before insert.
func (r *penaltyRepository) ApplyPenalty(penalty *domain.PenaltyEntry, report *domain.ReportEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if report != nil {
			if err := tx.Create(report).Error; err != nil {
				return err
			}
			penalty.RelatedReportID = &report.ID
		}

		if err := tx.Create(penalty).Error; err != nil {
			return err
		}

		status := &domain.AccountStatus{
			UserID: penalty.UserID,
			Status: domain.AccountStatusRestricted,
		}
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{"status": domain.AccountStatusRestricted}),
		}).Create(status).Error
	})
}

// LiftPenalty marks an active penalty as lifted. Returns false without error
// when the penalty was already lifted. The account status is left as is;
// other penalties may still be in force and the flip back to active is an
// explicit admin decision, not a side effect.
func (r *penaltyRepository) LiftPenalty(id int64) (bool, error) {
	result := r.db.Model(&domain.PenaltyEntry{}).
		Where("id = ? AND status = ?", id, domain.PenaltyStatusActive).
		Update("status", domain.PenaltyStatusLifted)
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.Model(&domain.PenaltyEntry{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return false, err
		}
		if count == 0 {
			return false, common.ErrPenaltyNotFound
		}
		return false, nil
	}
	return true, nil
}

// GetByID retrieves a penalty by ID
func (r *penaltyRepository) GetByID(id int64) (*domain.PenaltyEntry, error) {
	var penalty domain.PenaltyEntry
	err := r.db.Where("id = ?", id).First(&penalty).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.ErrPenaltyNotFound
		}
		return nil, err
	}
	return &penalty, nil
}

// FindByUser returns a user's penalties, newest first
func (r *penaltyRepository) FindByUser(userID int64, page, limit int) ([]domain.PenaltyEntry, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := r.db.Model(&domain.PenaltyEntry{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var penalties []domain.PenaltyEntry
	offset := (page - 1) * limit
	if err := query.Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&penalties).Error; err != nil {
		return nil, 0, err
	}

	return penalties, total, nil
}

// GetAccountStatus returns the account status for a user. A user with no
// row has never been penalized and is active.
func (r *penaltyRepository) GetAccountStatus(userID int64) (string, error) {
	var status domain.AccountStatus
	err := r.db.Where("user_id = ?", userID).First(&status).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.AccountStatusActive, nil
		}
		return "", err
	}
	return status.Status, nil
}
