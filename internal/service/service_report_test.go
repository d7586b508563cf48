// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/internal/mock"
	"github.com/MKhiriev/go-recipe-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func reportUsers() []models.RemoteUser {
	return []models.RemoteUser{
		{Gender: "Male", RegistrationDate: "12/01/2024"},
		{Gender: "Female", RegistrationDate: "03/01/2024"},
		{Gender: "Female", RegistrationDate: "28/02/2023"},
		{Gender: "male", RegistrationDate: "1/2/2024"},
		{Gender: "Other", RegistrationDate: ""},
		{Gender: "Male", RegistrationDate: "09/11/2024"},
	}
}

func TestBuildReport(t *testing.T) {
	tests := []struct {
		name        string
		year        string
		wantYear    string
		wantMonthly map[string]int
	}{
		{"defaults to first year", "", "2023", map[string]int{"02": 1}},
		{"explicit year", "2024", "2024", map[string]int{"01": 2, "11": 1}},
		{"year without registrations", "1999", "1999", map[string]int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := BuildReport(reportUsers(), tt.year)

			assert.Equal(t, 2, report.MaleCount)
			assert.Equal(t, 2, report.FemaleCount)
			assert.Equal(t, []string{"2023", "2024"}, report.Years)
			assert.Equal(t, tt.wantYear, report.Year)
			assert.Equal(t, tt.wantMonthly, report.Monthly)
		})
	}
}

func TestBuildReport_NoUsers(t *testing.T) {
	report := BuildReport(nil, "")

	assert.Zero(t, report.MaleCount)
	assert.Empty(t, report.Years)
	assert.Empty(t, report.Year)
	assert.NotNil(t, report.Monthly)
}

func TestReportService_Build(t *testing.T) {
	ctrl := gomock.NewController(t)
	remote := mock.NewMockRemoteUserRepository(ctrl)
	svc := NewReportService(remote, logger.Nop())

	remote.EXPECT().ListUsers(gomock.Any()).Return(reportUsers(), nil)
	report, err := svc.Build(context.Background(), "2024")
	require.NoError(t, err)
	assert.Equal(t, 2, report.Monthly["01"])

	remote.EXPECT().ListUsers(gomock.Any()).Return(nil, errors.New("offline"))
	_, err = svc.Build(context.Background(), "")
	require.ErrorIs(t, err, ErrRemoteUnavailable)
}
