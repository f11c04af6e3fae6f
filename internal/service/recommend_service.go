package service

import (
	"github.com/damoang/angple-moderation/internal/common"
	"github.com/damoang/angple-moderation/internal/contenttype"
	"github.com/damoang/angple-moderation/internal/domain"
	"github.com/damoang/angple-moderation/internal/repository"
)

// RecommendService defines the one-vote-per-user recommend business logic
type RecommendService interface {
	Recommend(contentType string, contentID, userID int64) (*domain.RecommendResponse, error)
	CancelRecommend(contentType string, contentID, userID int64) (*domain.RecommendResponse, error)
	GetStatus(contentType string, contentID, userID int64) (*domain.RecommendResponse, error)
}

type recommendService struct {
	recommendRepo repository.RecommendRepository
	contentRepo   repository.ContentRepository
}

// NewRecommendService creates a new RecommendService
func NewRecommendService(recommendRepo repository.RecommendRepository, contentRepo repository.ContentRepository) RecommendService {
	return &recommendService{
		recommendRepo: recommendRepo,
		contentRepo:   contentRepo,
	}
}

// Recommend adds the caller's vote. Voting twice is not an error: the second
// call changes nothing and the response reports the unchanged state. Authors
// cannot vote on their own content.
func (s *recommendService) Recommend(contentType string, contentID, userID int64) (*domain.RecommendResponse, error) {
	ct, tables, err := contenttype.Resolve(contentType)
	if err != nil {
		return nil, err
	}

	authorID, err := s.contentRepo.GetPostAuthorID(tables, contentID)
	if err != nil {
		return nil, err
	}
	if authorID == userID {
		return nil, common.ErrSelfRecommend
	}

	if _, err := s.recommendRepo.AddVote(ct.String(), tables.Post, contentID, userID); err != nil {
		return nil, err
	}

	count, err := s.recommendRepo.GetRecommendCount(tables.Post, contentID)
	if err != nil {
		return nil, err
	}

	return &domain.RecommendResponse{
		RecommendCount:  count,
		UserRecommended: true,
	}, nil
}

// CancelRecommend retracts the caller's vote. Retracting a vote that does
// not exist changes nothing.
func (s *recommendService) CancelRecommend(contentType string, contentID, userID int64) (*domain.RecommendResponse, error) {
	ct, tables, err := contenttype.Resolve(contentType)
	if err != nil {
		return nil, err
	}

	if _, err := s.recommendRepo.RemoveVote(ct.String(), tables.Post, contentID, userID); err != nil {
		return nil, err
	}

	count, err := s.recommendRepo.GetRecommendCount(tables.Post, contentID)
	if err != nil {
		return nil, err
	}

	return &domain.RecommendResponse{
		RecommendCount:  count,
		UserRecommended: false,
	}, nil
}

// GetStatus returns the current count and whether the caller has voted
func (s *recommendService) GetStatus(contentType string, contentID, userID int64) (*domain.RecommendResponse, error) {
	ct, tables, err := contenttype.Resolve(contentType)
	if err != nil {
		return nil, err
	}

	count, err := s.recommendRepo.GetRecommendCount(tables.Post, contentID)
	if err != nil {
		return nil, err
	}

	voted := false
	if userID != 0 {
		voted, err = s.recommendRepo.HasVoted(ct.String(), contentID, userID)
		if err != nil {
			return nil, err
		}
	}

	return &domain.RecommendResponse{
		RecommendCount:  count,
		UserRecommended: voted,
	}, nil
}
