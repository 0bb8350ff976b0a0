package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordAndAnalytics(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewVisitorService(db)

	svc.Record("203.0.113.10", "en")
	svc.Record("203.0.113.11", "ar")
	svc.Record("203.0.113.10", "ar")

	report, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, report.Total)
	assert.EqualValues(t, 1, report.Languages["en"])
	assert.EqualValues(t, 2, report.Languages["ar"])
	require.Len(t, report.Visitors, 3)

	for _, v := range report.Visitors {
		assert.Equal(t, 0, v.Duration)
		assert.False(t, v.VisitTime.IsZero())
	}
}

func TestAnalyticsEmptyLog(t *testing.T) {
	db := newTestDatabase(t)
	svc := NewVisitorService(db)

	report, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Total)
	assert.Empty(t, report.Languages)
	assert.Empty(t, report.Visitors)
}
