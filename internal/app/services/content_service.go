package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
)

// ContentService returns the html body of a course or scholarship
type ContentService interface {
	GetContent(ctx context.Context, id string) (*models.Content, error)
}

// contentServiceImpl implements ContentService over one repository
type contentServiceImpl struct {
	repo     repositories.ContentRepository
	notFound error
	kind     string
}

// NewCourseService creates the content service for courses
func NewCourseService(repo repositories.ContentRepository) ContentService {
	return &contentServiceImpl{repo: repo, notFound: apperrors.ErrCourseNotFound, kind: "course"}
}

// NewScholarshipService creates the content service for scholarships
func NewScholarshipService(repo repositories.ContentRepository) ContentService {
	return &contentServiceImpl{repo: repo, notFound: apperrors.ErrScholarshipNotFound, kind: "scholarship"}
}

// GetContent retrieves the id and html of one record
func (s *contentServiceImpl) GetContent(ctx context.Context, id string) (*models.Content, error) {
	content, err := s.repo.FindContentByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, s.notFound
		}
		if errors.Is(err, apperrors.ErrInvalidID) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving %s: %w", s.kind, err)
	}
	return content, nil
}
