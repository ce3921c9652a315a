package controllers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/collegehub/internal/app/controllers"
	"github.com/yigit/collegehub/internal/app/models"
	"github.com/yigit/collegehub/internal/app/models/dto"
	"github.com/yigit/collegehub/internal/app/routes"
	"github.com/yigit/collegehub/internal/pkg/apperrors"
)

const collegeID = "65f1c2a9e4b0a1b2c3d4e5f6"

type stubCollegeService struct {
	gotFilter models.CollegeFilter
	err       error
}

func (s *stubCollegeService) ListFilterOptions(ctx context.Context) ([]models.UniqueFilterOptions, error) {
	return []models.UniqueFilterOptions{{
		ID:        "opts",
		Countries: []string{"India"},
		Programs:  []string{"MBA"},
		Types:     []string{"Full Time"},
	}}, s.err
}

func (s *stubCollegeService) ListColleges(ctx context.Context) ([]models.College, error) {
	return []models.College{{ID: collegeID, Name: "Alpha", Country: "India"}}, s.err
}

func (s *stubCollegeService) GetCollegeDetail(ctx context.Context, id string) (*dto.CollegeDetailResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	if id != collegeID {
		return nil, apperrors.ErrCollegeNotFound
	}
	return &dto.CollegeDetailResponse{
		College: &models.CollegeDetail{
			College:            models.College{ID: collegeID, Name: "Alpha"},
			CourseDetails:      []models.Course{{ID: "c1", CollegeID: collegeID, CourseName: "MBA"}},
			ScholarshipDetails: []models.Scholarship{},
		},
		CurrencyConversion: map[string]decimal.Decimal{"USD": decimal.RequireFromString("0.012")},
		CurrencyBase:       "INR",
	}, nil
}

func (s *stubCollegeService) FilterColleges(ctx context.Context, f models.CollegeFilter) (*models.CollegePage, error) {
	s.gotFilter = f
	if s.err != nil {
		return nil, s.err
	}
	size := 20
	if f.Active() {
		size = 50
	}
	return &models.CollegePage{
		Rows: []models.CollegeCourseRow{
			{ID: collegeID, Name: "Alpha", NumberOfCourses: 3, CourseID: "c1", CourseName: "Data Science"},
		},
		TotalCount: 61,
		Page:       f.Page,
		PageSize:   size,
	}, nil
}

func (s *stubCollegeService) CountByCountry(ctx context.Context, country string) (int64, error) {
	return 4, s.err
}

type stubContentService struct {
	notFound error
}

func (s stubContentService) GetContent(ctx context.Context, id string) (*models.Content, error) {
	if id != collegeID {
		return nil, s.notFound
	}
	return &models.Content{ID: id, HTML: "<h1>About</h1>"}, nil
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func newRouter(colleges *stubCollegeService, pingErr error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	routes.SetupRouter(r,
		controllers.NewCollegeController(colleges),
		controllers.NewCourseController(stubContentService{notFound: apperrors.ErrCourseNotFound}),
		controllers.NewScholarshipController(stubContentService{notFound: apperrors.ErrScholarshipNotFound}),
		controllers.NewHealthController(stubPinger{err: pingErr}, "mongo"),
	)
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &m))
	return m
}

func TestListColleges(t *testing.T) {
	r := newRouter(&stubCollegeService{}, nil)

	w := do(r, http.MethodGet, "/colleges", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Len(t, body["uniqueFilterOptions"], 1)
	assert.NotContains(t, body, "colleges")

	w = do(r, http.MethodGet, "/colleges?withColleges=true", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["colleges"], 1)

	w = do(r, http.MethodGet, "/colleges?withColleges=maybe", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListColleges_StoreFailure(t *testing.T) {
	r := newRouter(&stubCollegeService{err: errors.New("no reachable servers")}, nil)

	w := do(r, http.MethodGet, "/colleges", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := decode(t, w)
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotContains(t, w.Body.String(), "no reachable servers")
}

func TestGetCollege(t *testing.T) {
	r := newRouter(&stubCollegeService{}, nil)

	w := do(r, http.MethodGet, "/colleges/"+collegeID, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	college := body["college"].(map[string]interface{})
	assert.Equal(t, collegeID, college["_id"])
	assert.Len(t, college["courseDetails"], 1)
	assert.Equal(t, 0.012, body["currencyConversion"].(map[string]interface{})["USD"])

	w = do(r, http.MethodGet, "/colleges/65f1c2a9e4b0a1b2c3d4e5f7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "College not found", decode(t, w)["error"])
}

func TestFilterColleges(t *testing.T) {
	svc := &stubCollegeService{}
	r := newRouter(svc, nil)

	w := do(r, http.MethodPost, "/colleges/filters?page=2", `{"country":" India ","program":"","type":"","courseName":"data","collegeName":""}`)
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, "India", svc.gotFilter.Country)
	assert.Equal(t, "data", svc.gotFilter.CourseName)
	assert.Equal(t, 2, svc.gotFilter.Page)

	var resp dto.CollegeFilterResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 1)
	assert.Equal(t, int64(61), resp.TotalCount)
	assert.Equal(t, 50, resp.Pagination.PageSize)
	assert.Equal(t, 2, resp.Pagination.TotalPages)
	assert.Equal(t, 2, resp.Pagination.CurrentPage)
}

func TestFilterColleges_DefaultsAndErrors(t *testing.T) {
	svc := &stubCollegeService{}
	r := newRouter(svc, nil)

	w := do(r, http.MethodPost, "/colleges/filters", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.gotFilter.Page)
	assert.False(t, svc.gotFilter.Active())

	w = do(r, http.MethodPost, "/colleges/filters?page=0", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(dto.ErrorCodeBadRequest), decode(t, w)["code"])

	w = do(r, http.MethodPost, "/colleges/filters?page=9223372036854775807", `{"country":"India"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(dto.ErrorCodeBadRequest), decode(t, w)["code"])

	w = do(r, http.MethodPost, "/colleges/filters", `{"country":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, string(dto.ErrorCodeValidationFailed), decode(t, w)["code"])

	w = do(r, http.MethodPost, "/colleges/filters", `{"country":"`+strings.Repeat("x", 101)+`"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCountByCountry(t *testing.T) {
	r := newRouter(&stubCollegeService{}, nil)

	w := do(r, http.MethodGet, "/countries/India/colleges/count", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "India", body["country"])
	assert.Equal(t, float64(4), body["count"])
}

func TestContentEndpoints(t *testing.T) {
	r := newRouter(&stubCollegeService{}, nil)

	for _, path := range []string{"/courses/", "/scholarships/"} {
		w := do(r, http.MethodGet, path+collegeID, "")
		require.Equal(t, http.StatusOK, w.Code, path)
		body := decode(t, w)
		assert.Equal(t, collegeID, body["_id"])
		assert.Equal(t, "<h1>About</h1>", body["html"])
		assert.Len(t, body, 2)
	}

	w := do(r, http.MethodGet, "/courses/65f1c2a9e4b0a1b2c3d4e5f7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Course not found", decode(t, w)["error"])

	w = do(r, http.MethodGet, "/scholarships/65f1c2a9e4b0a1b2c3d4e5f7", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Scholarship not found", decode(t, w)["error"])
}

func TestHealth(t *testing.T) {
	w := do(newRouter(&stubCollegeService{}, nil), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode(t, w)["status"])

	w = do(newRouter(&stubCollegeService{}, errors.New("down")), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = do(newRouter(&stubCollegeService{}, nil), http.MethodGet, "/ping", "")
	assert.Equal(t, http.StatusOK, w.Code)
}
