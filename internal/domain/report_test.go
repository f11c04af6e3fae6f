package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"known category passes through", "profanity_hate_speech", CategoryProfanity},
		{"adult content", "adult_content", CategoryAdultContent},
		{"impersonation", "impersonation_fraud", CategoryImpersonation},
		{"copyright", "copyright_infringement", CategoryCopyright},
		{"spam itself", "spam_ad", CategorySpamAd},
		{"unknown coerces to spam_ad", "xyz", CategorySpamAd},
		{"empty coerces to spam_ad", "", CategorySpamAd},
		{"case sensitive", "Spam_Ad", CategorySpamAd},
		{"legacy free-form reason", "도배", CategorySpamAd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeCategory(tt.input))
		})
	}
}

func TestValidReportStatus(t *testing.T) {
	assert.True(t, ValidReportStatus("active"))
	assert.True(t, ValidReportStatus("resolved"))
	assert.True(t, ValidReportStatus("rejected"))
	assert.False(t, ValidReportStatus("pending"))
	assert.False(t, ValidReportStatus(""))
	assert.False(t, ValidReportStatus("ACTIVE"))
}

func TestPenaltyTerm(t *testing.T) {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("7일 제한", func(t *testing.T) {
		duration, end := PenaltyTerm(start, "restrict", 7)
		assert.Equal(t, PenaltyDurationTemporary, duration)
		assert.Equal(t, start.AddDate(0, 0, 7), end)
	})

	t.Run("1일 제한", func(t *testing.T) {
		duration, end := PenaltyTerm(start, "restrict", 1)
		assert.Equal(t, PenaltyDurationTemporary, duration)
		assert.Equal(t, start.AddDate(0, 0, 1), end)
	})

	t.Run("0일은 영구", func(t *testing.T) {
		duration, end := PenaltyTerm(start, "restrict", 0)
		assert.Equal(t, PenaltyDurationPermanent, duration)
		assert.Equal(t, PermanentEndDate, end)
	})

	t.Run("음수 일수는 영구", func(t *testing.T) {
		duration, end := PenaltyTerm(start, "restrict", -1)
		assert.Equal(t, PenaltyDurationPermanent, duration)
		assert.Equal(t, PermanentEndDate, end)
	})

	t.Run("permanent 타입은 일수와 무관하게 영구", func(t *testing.T) {
		duration, end := PenaltyTerm(start, "permanent", 30)
		assert.Equal(t, PenaltyDurationPermanent, duration)
		assert.Equal(t, PermanentEndDate, end)
	})
}

func TestPenaltyEntry_IsPermanent(t *testing.T) {
	p := &PenaltyEntry{Duration: PenaltyDurationPermanent}
	assert.True(t, p.IsPermanent())

	p = &PenaltyEntry{Duration: PenaltyDurationTemporary}
	assert.False(t, p.IsPermanent())
}

func TestReportEntry_ToResponse(t *testing.T) {
	r := &ReportEntry{
		ID:           3,
		TargetType:   CategorySpamAd,
		Reason:       "광고 도배",
		Status:       ReportStatusActive,
		ReporterID:   5,
		TargetUserID: 9,
		CreatedAt:    time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC),
	}
	resp := r.ToResponse()
	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "spam_ad", resp.TargetType)
	assert.Equal(t, "2025-06-01 10:30:00", resp.CreatedAt)
}
