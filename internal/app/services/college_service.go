package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/models/dto"
	"github.com/yigit/collegehub/internal/app/repositories"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
	"github.com/yigit/collegehub/internal/pkg/currency"
	"github.com/yigit/collegehub/internal/pkg/helpers"
	"github.com/yigit/collegehub/internal/pkg/logger"
)

// RateProvider supplies currency conversion rates
type RateProvider interface {
	LatestRates(ctx context.Context) (*currency.Snapshot, error)
}

// CollegeService defines the interface for college-related operations
type CollegeService interface {
	ListFilterOptions(ctx context.Context) ([]models.UniqueFilterOptions, error)
	ListColleges(ctx context.Context) ([]models.College, error)
	GetCollegeDetail(ctx context.Context, id string) (*dto.CollegeDetailResponse, error)
	FilterColleges(ctx context.Context, filter models.CollegeFilter) (*models.CollegePage, error)
	CountByCountry(ctx context.Context, country string) (int64, error)
}

// collegeServiceImpl implements the CollegeService interface
type collegeServiceImpl struct {
	collegeRepo      repositories.CollegeRepository
	filterOptionRepo repositories.FilterOptionRepository
	rates            RateProvider
	currencyRequired bool
}

// NewCollegeService creates a new college service instance. When currencyRequired
// is set, a college detail request fails if no rates can be obtained; otherwise the
// college is returned without conversion rates.
func NewCollegeService(
	collegeRepo repositories.CollegeRepository,
	filterOptionRepo repositories.FilterOptionRepository,
	rates RateProvider,
	currencyRequired bool,
) CollegeService {
	return &collegeServiceImpl{
		collegeRepo:      collegeRepo,
		filterOptionRepo: filterOptionRepo,
		rates:            rates,
		currencyRequired: currencyRequired,
	}
}

// ListFilterOptions returns the precomputed filter values
func (s *collegeServiceImpl) ListFilterOptions(ctx context.Context) ([]models.UniqueFilterOptions, error) {
	options, err := s.filterOptionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving filter options: %w", err)
	}
	return options, nil
}

// ListColleges returns every college without its landing blob
func (s *collegeServiceImpl) ListColleges(ctx context.Context) ([]models.College, error) {
	colleges, err := s.collegeRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving colleges: %w", err)
	}
	return colleges, nil
}

// GetCollegeDetail returns a college with its courses, scholarships and the
// current conversion rates. Rates are only requested once the college exists.
func (s *collegeServiceImpl) GetCollegeDetail(ctx context.Context, id string) (*dto.CollegeDetailResponse, error) {
	detail, err := s.collegeRepo.FindDetailByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrCollegeNotFound
		}
		if errors.Is(err, apperrors.ErrInvalidID) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving college: %w", err)
	}

	resp := &dto.CollegeDetailResponse{College: detail}
	if s.rates == nil {
		if s.currencyRequired {
			return nil, apperrors.ErrCurrencyUnavailable
		}
		return resp, nil
	}

	snapshot, err := s.rates.LatestRates(ctx)
	if err != nil {
		if s.currencyRequired {
			return nil, fmt.Errorf("error retrieving currency rates: %w", err)
		}
		logger.FromContext(ctx).Warn().Err(err).Str("collegeId", id).Msg("Serving college without currency conversion")
		return resp, nil
	}

	resp.CurrencyConversion = snapshot.Rates
	resp.CurrencyBase = snapshot.Base
	resp.CurrencyStale = snapshot.Stale
	return resp, nil
}

// FilterColleges returns one page of college/course rows. The page size depends
// on whether any filter is active.
func (s *collegeServiceImpl) FilterColleges(ctx context.Context, filter models.CollegeFilter) (*models.CollegePage, error) {
	filter = filter.Normalize()
	size := helpers.PageSizeFor(filter.Active())
	offset, limit := helpers.CalculateOffsetLimit(filter.Page, size)

	rows, total, err := s.collegeRepo.Search(ctx, filter, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error filtering colleges: %w", err)
	}

	return &models.CollegePage{
		Rows:       rows,
		TotalCount: total,
		Page:       filter.Page,
		PageSize:   size,
	}, nil
}

// CountByCountry returns how many colleges are located in country
func (s *collegeServiceImpl) CountByCountry(ctx context.Context, country string) (int64, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return 0, apperrors.NewCustomError(apperrors.ErrValidationFailed, "country cannot be empty").
			WithDetails(map[string]interface{}{"field": "country"})
	}

	count, err := s.collegeRepo.CountByCountry(ctx, country)
	if err != nil {
		return 0, fmt.Errorf("error counting colleges: %w", err)
	}
	return count, nil
}
