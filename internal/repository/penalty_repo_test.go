package repository

import (
	"testing"
	"time"

	"github.com/damoang/angple-moderation/internal/common"
	"github.com/damoang/angple-moderation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupPenaltyTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.ReportEntry{},
		&domain.PenaltyEntry{},
		&domain.AccountStatus{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func newTestPenalty(userID int64) *domain.PenaltyEntry {
	now := time.Now()
	return &domain.PenaltyEntry{
		UserID:    userID,
		Reason:    "반복 도배",
		StartDate: now,
		EndDate:   now.AddDate(0, 0, 7),
		Status:    domain.PenaltyStatusActive,
		Duration:  domain.PenaltyDurationTemporary,
		IssuedBy:  1,
	}
}

func TestApplyPenalty(t *testing.T) {
	t.Run("징계와 계정 상태가 함께 반영됨", func(t *testing.T) {
		db := setupPenaltyTestDB(t)
		repo := NewPenaltyRepository(db)

		penalty := newTestPenalty(42)
		require.NoError(t, repo.ApplyPenalty(penalty, nil))
		assert.NotZero(t, penalty.ID)
		assert.Nil(t, penalty.RelatedReportID)

		status, err := repo.GetAccountStatus(42)
		require.NoError(t, err)
		assert.Equal(t, domain.AccountStatusRestricted, status)
	})

	t.Run("신고 동반 징계는 신고가 먼저 저장되고 ID가 연결됨", func(t *testing.T) {
		db := setupPenaltyTestDB(t)
		repo := NewPenaltyRepository(db)

		report := &domain.ReportEntry{
			TargetType:   "freeboard_post_10",
			Reason:       domain.CategorySpamAd,
			Status:       domain.ReportStatusActive,
			ReporterID:   1,
			TargetUserID: 42,
		}
		penalty := newTestPenalty(42)
		require.NoError(t, repo.ApplyPenalty(penalty, report))

		require.NotNil(t, penalty.RelatedReportID)
		assert.Equal(t, report.ID, *penalty.RelatedReportID)

		var saved domain.ReportEntry
		require.NoError(t, db.Where("id = ?", report.ID).First(&saved).Error)
		assert.Equal(t, int64(42), saved.TargetUserID)
	})

	t.Run("기존 제한 계정에 추가 징계를 내려도 상태 upsert가 성공함", func(t *testing.T) {
		db := setupPenaltyTestDB(t)
		repo := NewPenaltyRepository(db)

		require.NoError(t, repo.ApplyPenalty(newTestPenalty(42), nil))
		require.NoError(t, repo.ApplyPenalty(newTestPenalty(42), nil))

		var rows int64
		require.NoError(t, db.Model(&domain.AccountStatus{}).Where("user_id = ?", 42).Count(&rows).Error)
		assert.Equal(t, int64(1), rows)

		_, total, err := repo.FindByUser(42, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("트랜잭션 실패 시 신고도 징계도 남지 않음", func(t *testing.T) {
		db := setupPenaltyTestDB(t)
		repo := NewPenaltyRepository(db)
		require.NoError(t, db.Migrator().DropTable(&domain.AccountStatus{}))

		report := &domain.ReportEntry{
			Reason:       domain.CategorySpamAd,
			Status:       domain.ReportStatusActive,
			ReporterID:   1,
			TargetUserID: 42,
		}
		err := repo.ApplyPenalty(newTestPenalty(42), report)
		assert.Error(t, err)

		var reports, penalties int64
		require.NoError(t, db.Model(&domain.ReportEntry{}).Count(&reports).Error)
		require.NoError(t, db.Model(&domain.PenaltyEntry{}).Count(&penalties).Error)
		assert.Equal(t, int64(0), reports)
		assert.Equal(t, int64(0), penalties)
	})
}

func TestLiftPenaltyDB(t *testing.T) {
	t.Run("활성 징계 해제", func(t *testing.T) {
		db := setupPenaltyTestDB(t)
		repo := NewPenaltyRepository(db)

		penalty := newTestPenalty(42)
		require.NoError(t, repo.ApplyPenalty(penalty, nil))

		lifted, err := repo.LiftPenalty(penalty.ID)
		assert.NoError(t, err)
		assert.True(t, lifted)

		saved, err := repo.GetByID(penalty.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.PenaltyStatusLifted, saved.Status)

		// 계정 상태는 해제의 부수 효과로 바뀌지 않음
		status, err := repo.GetAccountStatus(42)
		require.NoError(t, err)
		assert.Equal(t, domain.AccountStatusRestricted, status)
	})

	t.Run("이미 해제된 징계는 no-op", func(t *testing.T) {
		db := setupPenaltyTestDB(t)
		repo := NewPenaltyRepository(db)

		penalty := newTestPenalty(42)
		require.NoError(t, repo.ApplyPenalty(penalty, nil))
		_, err := repo.LiftPenalty(penalty.ID)
		require.NoError(t, err)

		lifted, err := repo.LiftPenalty(penalty.ID)
		assert.NoError(t, err)
		assert.False(t, lifted)
	})

	t.Run("없는 징계", func(t *testing.T) {
		db := setupPenaltyTestDB(t)
		repo := NewPenaltyRepository(db)

		_, err := repo.LiftPenalty(999)
		assert.ErrorIs(t, err, common.ErrPenaltyNotFound)
	})
}

func TestGetAccountStatusDefault(t *testing.T) {
	db := setupPenaltyTestDB(t)
	repo := NewPenaltyRepository(db)

	// 징계 이력이 없는 사용자는 행 자체가 없고 active로 취급
	status, err := repo.GetAccountStatus(12345)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusActive, status)
}
