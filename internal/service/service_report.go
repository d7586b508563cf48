package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/store"
	"github.com/MKhiriev/go-recipe-keeper/internal/utils"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

const (
	genderMale   = "Male"
	genderFemale = "Female"
)

type reportService struct {
	remoteUsers store.RemoteUserRepository

	logger *logger.Logger
}

func NewReportService(remoteUsers store.RemoteUserRepository, logger *logger.Logger) ReportService {
	return &reportService{remoteUsers: remoteUsers, logger: logger}
}

// Build reads the remote users and summarizes them for year. An empty year
// selects the earliest registration year.
func (s *reportService) Build(ctx context.Context, year string) (models.Report, error) {
	users, err := s.remoteUsers.ListUsers(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*reportService.Build").Msg("listing users failed")
		return models.Report{}, fmt.Errorf("%w: %w", ErrRemoteUnavailable, err)
	}

	return BuildReport(users, year), nil
}

// BuildReport counts genders, collects the distinct registration years and
// counts registrations per month of year. Dates that are not DD/MM/YYYY are
// skipped.
func BuildReport(users []models.RemoteUser, year string) models.Report {
	report := models.Report{
		Years:   []string{},
		Monthly: map[string]int{},
	}

	seen := map[string]struct{}{}
	for _, u := range users {
		switch u.Gender {
		case genderMale:
			report.MaleCount++
		case genderFemale:
			report.FemaleCount++
		}

		if _, y, ok := utils.DateParts(u.RegistrationDate); ok {
			if _, dup := seen[y]; !dup {
				seen[y] = struct{}{}
				report.Years = append(report.Years, y)
			}
		}
	}
	sort.Strings(report.Years)

	if year == "" && len(report.Years) > 0 {
		year = report.Years[0]
	}
	report.Year = year
	if year == "" {
		return report
	}

	for _, u := range users {
		if m, y, ok := utils.DateParts(u.RegistrationDate); ok && y == year {
			report.Monthly[m]++
		}
	}

	return report
}
