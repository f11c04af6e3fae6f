package domain

import "time"

// RecommendationEntry is the per-user-per-item vote ledger row in the
// log_recommend table. Its presence is the sole source of truth for
// "has voted"; the aggregate counter on the content row is updated in the
// same transaction, never independently. The (board_type, content_id,
// user_id) unique key is what makes concurrent duplicate votes lose.
type RecommendationEntry struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	BoardType string    `gorm:"column:board_type;size:20;uniqueIndex:uq_recommend" json:"board_type"`
	ContentID int64     `gorm:"column:content_id;uniqueIndex:uq_recommend" json:"content_id"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:uq_recommend" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName returns the table name for GORM
func (RecommendationEntry) TableName() string {
	return "log_recommend"
}

// RecommendResponse is the response DTO for recommend actions
type RecommendResponse struct {
	RecommendCount  int  `json:"recommend_count"`
	UserRecommended bool `json:"user_recommended"`
}
