package service

import (
	"context"
	"time"

	"github.com/sekolahdigital/siakad-backend/internal/model"
	"github.com/sekolahdigital/siakad-backend/internal/repository"
)

// DashboardService assembles the admin dashboard landing data.
type DashboardService struct {
	dashboardRepo *repository.DashboardRepository
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(dashboardRepo *repository.DashboardRepository) *DashboardService {
	return &DashboardService{dashboardRepo: dashboardRepo}
}

// DashboardData is the aggregate payload for the dashboard landing page.
type DashboardData struct {
	Counts           repository.SummaryCounts `json:"counts"`
	TodayAttendance  model.AttendanceSummary  `json:"today_attendance"`
	RecentApplicants []model.Applicant        `json:"recent_applicants"`
}

// GetDashboardData collects counts, today's attendance and the latest
// registrations in one call.
func (s *DashboardService) GetDashboardData(ctx context.Context) (*DashboardData, error) {
	counts, err := s.dashboardRepo.GetSummaryCounts(ctx)
	if err != nil {
		return nil, err
	}

	attendance, err := s.dashboardRepo.GetTodayAttendance(ctx, time.Now())
	if err != nil {
		return nil, err
	}

	recent, err := s.dashboardRepo.GetRecentApplicants(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &DashboardData{
		Counts:           counts,
		TodayAttendance:  attendance,
		RecentApplicants: recent,
	}, nil
}
