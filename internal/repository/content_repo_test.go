package repository

import (
	"testing"
	"time"

	"github.com/damoang/angple-moderation/internal/common"
	"github.com/damoang/angple-moderation/internal/contenttype"
	"github.com/damoang/angple-moderation/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupContentTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.Table("freeboard").AutoMigrate(&domain.ContentRecord{}); err != nil {
		t.Fatalf("failed to migrate content table: %v", err)
	}
	if err := db.Table(domain.AuditTablePost).AutoMigrate(&domain.AuditLogEntry{}); err != nil {
		t.Fatalf("failed to migrate audit table: %v", err)
	}
	return db
}

func seedPost(t *testing.T, db *gorm.DB, status string) int64 {
	t.Helper()
	post := &domain.ContentRecord{
		AuthorID: 3,
		Subject:  "테스트 글",
		Content:  "내용",
		Status:   status,
	}
	require.NoError(t, db.Table("freeboard").Create(post).Error)
	return post.ID
}

func auditRowCount(t *testing.T, db *gorm.DB, targetID int64) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Table(domain.AuditTablePost).
		Where("board_type = ? AND target_id = ? AND action = ?",
			"freeboard", targetID, domain.AuditActionDelete).
		Count(&count).Error)
	return count
}

func freeboardStatus(t *testing.T, db *gorm.DB, id int64) string {
	t.Helper()
	var post domain.ContentRecord
	require.NoError(t, db.Table("freeboard").Where("id = ?", id).First(&post).Error)
	return post.Status
}

func TestSoftDeletePost(t *testing.T) {
	ct, tables, err := contenttype.Resolve("freeboard")
	require.NoError(t, err)

	t.Run("삭제 시 상태 전환과 감사 로그가 함께 기록됨", func(t *testing.T) {
		db := setupContentTestDB(t)
		repo := NewContentRepository(db, NewAuditRepository(db))
		id := seedPost(t, db, domain.ContentStatusActive)

		changed, err := repo.SoftDeletePost(ct, tables, id, 99)
		assert.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, domain.ContentStatusDeleted, freeboardStatus(t, db, id))
		assert.Equal(t, int64(1), auditRowCount(t, db, id))
	})

	t.Run("이미 삭제된 글은 no-op, 로그도 한 건 그대로", func(t *testing.T) {
		db := setupContentTestDB(t)
		repo := NewContentRepository(db, NewAuditRepository(db))
		id := seedPost(t, db, domain.ContentStatusActive)

		_, err := repo.SoftDeletePost(ct, tables, id, 99)
		require.NoError(t, err)

		changed, err := repo.SoftDeletePost(ct, tables, id, 99)
		assert.NoError(t, err)
		assert.False(t, changed)
		assert.Equal(t, int64(1), auditRowCount(t, db, id))
	})

	t.Run("없는 글", func(t *testing.T) {
		db := setupContentTestDB(t)
		repo := NewContentRepository(db, NewAuditRepository(db))

		_, err := repo.SoftDeletePost(ct, tables, 12345, 99)
		assert.ErrorIs(t, err, common.ErrPostNotFound)
	})
}

func TestRecoverPost(t *testing.T) {
	ct, tables, err := contenttype.Resolve("freeboard")
	require.NoError(t, err)

	t.Run("복구 시 상태가 돌아오고 삭제 로그가 철회됨", func(t *testing.T) {
		db := setupContentTestDB(t)
		repo := NewContentRepository(db, NewAuditRepository(db))
		id := seedPost(t, db, domain.ContentStatusActive)

		_, err := repo.SoftDeletePost(ct, tables, id, 99)
		require.NoError(t, err)

		changed, err := repo.RecoverPost(ct, tables, id, 99)
		assert.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, domain.ContentStatusActive, freeboardStatus(t, db, id))
		assert.Equal(t, int64(0), auditRowCount(t, db, id))
	})

	t.Run("이미 활성 상태면 no-op", func(t *testing.T) {
		db := setupContentTestDB(t)
		repo := NewContentRepository(db, NewAuditRepository(db))
		id := seedPost(t, db, domain.ContentStatusActive)

		changed, err := repo.RecoverPost(ct, tables, id, 99)
		assert.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("삭제 로그 없는 삭제 글은 복구를 거부하고 롤백", func(t *testing.T) {
		db := setupContentTestDB(t)
		repo := NewContentRepository(db, NewAuditRepository(db))
		id := seedPost(t, db, domain.ContentStatusDeleted)

		changed, err := repo.RecoverPost(ct, tables, id, 99)
		assert.ErrorIs(t, err, common.ErrAuditEntryMissing)
		assert.False(t, changed)
		assert.Equal(t, domain.ContentStatusDeleted, freeboardStatus(t, db, id))
	})

	t.Run("없는 글", func(t *testing.T) {
		db := setupContentTestDB(t)
		repo := NewContentRepository(db, NewAuditRepository(db))

		_, err := repo.RecoverPost(ct, tables, 12345, 99)
		assert.ErrorIs(t, err, common.ErrPostNotFound)
	})
}

func TestIncrementViewCount(t *testing.T) {
	_, tables, err := contenttype.Resolve("freeboard")
	require.NoError(t, err)

	t.Run("조회수 증가", func(t *testing.T) {
		db := setupContentTestDB(t)
		repo := NewContentRepository(db, NewAuditRepository(db))
		id := seedPost(t, db, domain.ContentStatusActive)

		require.NoError(t, repo.IncrementViewCount(tables, id))
		require.NoError(t, repo.IncrementViewCount(tables, id))

		post, err := repo.GetPost(tables, id)
		require.NoError(t, err)
		assert.Equal(t, 2, post.ViewCount)
	})

	t.Run("없는 글", func(t *testing.T) {
		db := setupContentTestDB(t)
		repo := NewContentRepository(db, NewAuditRepository(db))

		err := repo.IncrementViewCount(tables, 12345)
		assert.ErrorIs(t, err, common.ErrPostNotFound)
	})
}

func TestAuditListByTarget(t *testing.T) {
	db := setupContentTestDB(t)
	audit := NewAuditRepository(db)

	for i := 0; i < 3; i++ {
		require.NoError(t, audit.Append(domain.AuditTablePost, &domain.AuditLogEntry{
			Action:    domain.AuditActionModify,
			BoardType: "freeboard",
			TargetID:  7,
			ActorID:   int64(i + 1),
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		}))
	}

	entries, total, err := audit.ListByTarget(domain.AuditTablePost, "freeboard", 7, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, entries, 2)
}
