package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"schoolscope_backend/internal/model"
	"schoolscope_backend/internal/repository"
	"schoolscope_backend/internal/stats"
	"schoolscope_backend/internal/util"
	"schoolscope_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const assessmentCacheTTL = 30 * time.Minute

// AssessmentService answers the measurement queries behind a district's
// report page: filtered results, the facet lists driving the filter UI, and
// the statewide rank. Results are cached in Redis per district and criteria,
// since the underlying data changes only on import.
type AssessmentService struct {
	MeasurementRepo *repository.MeasurementRepository
	DistrictRepo    *repository.DistrictRepository
	SchoolRepo      *repository.SchoolRepository
	Redis           *redis.Client
}

func NewAssessmentService(
	measurementRepo *repository.MeasurementRepository,
	districtRepo *repository.DistrictRepository,
	schoolRepo *repository.SchoolRepository,
	rdb *redis.Client,
) *AssessmentService {
	return &AssessmentService{
		MeasurementRepo: measurementRepo,
		DistrictRepo:    districtRepo,
		SchoolRepo:      schoolRepo,
		Redis:           rdb,
	}
}

// DistrictResults is one district's filtered measurements plus everything
// the report page needs alongside them.
type DistrictResults struct {
	Measurements []model.DistrictMeasurement `json:"measurements"`
	Grades       []stats.Facet               `json:"grades"`
	Subgroups    []stats.Facet               `json:"subgroups"`
	Rank         stats.DistrictRank          `json:"rank"`
}

func criteriaKey(c stats.Criteria) string {
	part := func(v *int) string {
		if v == nil {
			return "-"
		}
		return fmt.Sprintf("%d", *v)
	}
	return fmt.Sprintf("%s:%s:%s:%s", part(c.Year), part(c.SubjectID), part(c.SubgroupID), part(c.GradeID))
}

func (s *AssessmentService) Results(ctx context.Context, districtID uint, c stats.Criteria) (*DistrictResults, error) {
	if _, err := s.DistrictRepo.FindByID(districtID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrDistrictNotFound
	} else if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("assessments:district:%d:%s", districtID, criteriaKey(c))
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var out DistrictResults
			if err := json.Unmarshal([]byte(cached), &out); err == nil {
				return &out, nil
			}
		}
	}

	rows, err := s.MeasurementRepo.ListByDistrict(districtID)
	if err != nil {
		return nil, err
	}

	filtered := stats.Filter(rows, c)

	// Facet lists come from the rows matching everything except their own
	// dimension, so picking a grade never hides the other grades.
	gradeScope := c
	gradeScope.GradeID = nil
	subgroupScope := c
	subgroupScope.SubgroupID = nil

	out := &DistrictResults{
		Measurements: filtered,
		Grades:       stats.Grades(stats.Filter(rows, gradeScope)),
		Subgroups:    stats.Subgroups(stats.Filter(rows, subgroupScope)),
	}

	rank, err := s.rank(districtID, c)
	if err != nil {
		return nil, err
	}
	out.Rank = rank

	if s.Redis != nil {
		if payload, err := json.Marshal(out); err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, assessmentCacheTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache assessment results", zap.Error(err))
			}
		}
	}

	return out, nil
}

func (s *AssessmentService) rank(districtID uint, c stats.Criteria) (stats.DistrictRank, error) {
	all, err := s.MeasurementRepo.ListAllDistricts()
	if err != nil {
		return stats.DistrictRank{}, err
	}
	return stats.RankDistricts(stats.Filter(all, c), districtID), nil
}

// Rank is the standalone ranking endpoint's entry point.
func (s *AssessmentService) Rank(districtID uint, c stats.Criteria) (stats.DistrictRank, error) {
	if _, err := s.DistrictRepo.FindByID(districtID); errors.Is(err, gorm.ErrRecordNotFound) {
		return stats.DistrictRank{}, util.ErrDistrictNotFound
	} else if err != nil {
		return stats.DistrictRank{}, err
	}
	return s.rank(districtID, c)
}

// GradeFacets lists the grades present in a district's measurements under
// the other criteria, with grade itself left unconstrained.
func (s *AssessmentService) GradeFacets(districtID uint, c stats.Criteria) ([]stats.Facet, error) {
	rows, err := s.districtRows(districtID)
	if err != nil {
		return nil, err
	}
	c.GradeID = nil
	return stats.Grades(stats.Filter(rows, c)), nil
}

// SubgroupFacets is GradeFacets for the subgroup dimension.
func (s *AssessmentService) SubgroupFacets(districtID uint, c stats.Criteria) ([]stats.Facet, error) {
	rows, err := s.districtRows(districtID)
	if err != nil {
		return nil, err
	}
	c.SubgroupID = nil
	return stats.Subgroups(stats.Filter(rows, c)), nil
}

func (s *AssessmentService) districtRows(districtID uint) ([]model.DistrictMeasurement, error) {
	if _, err := s.DistrictRepo.FindByID(districtID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrDistrictNotFound
	} else if err != nil {
		return nil, err
	}
	return s.MeasurementRepo.ListByDistrict(districtID)
}

func (s *AssessmentService) SchoolResults(schoolID uint, c stats.Criteria) ([]model.SchoolMeasurement, error) {
	if _, err := s.SchoolRepo.FindByID(schoolID); errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSchoolNotFound
	} else if err != nil {
		return nil, err
	}
	rows, err := s.MeasurementRepo.ListBySchool(schoolID)
	if err != nil {
		return nil, err
	}
	return stats.Filter(rows, c), nil
}

// StateResults returns the statewide baseline rows for side-by-side
// comparison with a district.
func (s *AssessmentService) StateResults(c stats.Criteria) ([]model.StateMeasurement, error) {
	rows, err := s.MeasurementRepo.ListState()
	if err != nil {
		return nil, err
	}
	return stats.Filter(rows, c), nil
}

func (s *AssessmentService) Years() ([]int, error) {
	return s.MeasurementRepo.Years()
}

// ReplaceDistrictYear loads one district's measurement rows for a year,
// replacing anything already there, then drops the district's cache entries.
func (s *AssessmentService) ReplaceDistrictYear(ctx context.Context, districtID uint, year int, rows []model.DistrictMeasurement) error {
	if _, err := s.DistrictRepo.FindByID(districtID); errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrDistrictNotFound
	} else if err != nil {
		return err
	}

	for i := range rows {
		rows[i].DistrictID = districtID
		rows[i].Year = year
	}
	if err := s.MeasurementRepo.ReplaceDistrictYear(districtID, year, rows); err != nil {
		return err
	}

	s.invalidateDistrict(ctx, districtID)
	return nil
}

func (s *AssessmentService) ReplaceStateYear(ctx context.Context, year int, rows []model.StateMeasurement) error {
	for i := range rows {
		rows[i].Year = year
	}
	return s.MeasurementRepo.ReplaceStateYear(year, rows)
}

func (s *AssessmentService) invalidateDistrict(ctx context.Context, districtID uint) {
	if s.Redis == nil {
		return
	}
	pattern := fmt.Sprintf("assessments:district:%d:*", districtID)
	iter := s.Redis.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := s.Redis.Del(ctx, iter.Val()).Err(); err != nil {
			logger.Log.Warn("Failed to drop assessment cache key", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		logger.Log.Warn("Assessment cache scan failed", zap.Error(err))
	}
}
