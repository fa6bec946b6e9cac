package service

import (
	"testing"
	"time"

	"github.com/guttosm/hotelboard/internal/apperr"
	"github.com/guttosm/hotelboard/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Granularity
		wantErr bool
	}{
		{"", models.GranularityMonth, false},
		{"month", models.GranularityMonth, false},
		{" Week ", models.GranularityWeek, false},
		{"year", models.GranularityYear, false},
		{"day", "", true},
		{"quarter", "", true},
	}
	for _, tc := range tests {
		got, err := ParsePeriod(tc.in)
		if tc.wantErr {
			assert.True(t, apperr.Is(err, apperr.ErrValidation), "period %q", tc.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseGroupBy(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Granularity
		wantErr bool
	}{
		{"", models.GranularityMonth, false},
		{"day", models.GranularityDay, false},
		{"MONTH", models.GranularityMonth, false},
		{"year", models.GranularityYear, false},
		{"week", "", true},
	}
	for _, tc := range tests {
		got, err := ParseGroupBy(tc.in)
		if tc.wantErr {
			assert.True(t, apperr.Is(err, apperr.ErrValidation), "groupBy %q", tc.in)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, tc.want, got)
	}
}

func TestParseRange(t *testing.T) {
	loc := seoul(t)

	tests := []struct {
		name     string
		from, to string
		want     *DateRange
		wantErr  bool
	}{
		{name: "absent", want: nil},
		{
			name: "date only to is inclusive",
			from: "2025-06-01", to: "2025-06-30",
			want: &DateRange{From: time.Date(2025, 6, 1, 0, 0, 0, 0, loc), To: time.Date(2025, 7, 1, 0, 0, 0, 0, loc)},
		},
		{
			name: "same day",
			from: "2025-06-01", to: "2025-06-01",
			want: &DateRange{From: time.Date(2025, 6, 1, 0, 0, 0, 0, loc), To: time.Date(2025, 6, 2, 0, 0, 0, 0, loc)},
		},
		{
			name: "rfc3339",
			from: "2025-06-01T00:00:00Z", to: "2025-06-02T12:00:00Z",
			want: &DateRange{From: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)},
		},
		{name: "only from", from: "2025-06-01", wantErr: true},
		{name: "only to", to: "2025-06-01", wantErr: true},
		{name: "bad from", from: "06/01/2025", to: "2025-06-30", wantErr: true},
		{name: "bad to", from: "2025-06-01", to: "2025-02-30", wantErr: true},
		{name: "to before from", from: "2025-06-10", to: "2025-06-01", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseRange(tc.from, tc.to, loc)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, apperr.Is(err, apperr.ErrValidation))
				return
			}
			require.NoError(t, err)
			if tc.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.True(t, tc.want.From.Equal(got.From), "from %v", got.From)
			assert.True(t, tc.want.To.Equal(got.To), "to %v", got.To)
		})
	}
}

func TestRoundRating(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{13.0 / 3.0, 4.3},
		{4.46, 4.5},
		{4.45, 4.5},
		{4.44, 4.4},
		{4.25, 4.3},
		{5, 5},
		{0, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, roundRating(tc.in), "round(%v)", tc.in)
	}
}

func TestPercentRate(t *testing.T) {
	tests := []struct {
		num, den int64
		want     int64
	}{
		{1, 5, 20},
		{1, 3, 33},
		{2, 3, 67},
		{1, 8, 13},
		{5, 5, 100},
		{7, 5, 100},
		{3, 0, 0},
		{0, 5, 0},
		{-1, 5, 0},
	}
	for _, tc := range tests {
		got := percentRate(tc.num, tc.den)
		assert.Equal(t, tc.want, got, "%d/%d", tc.num, tc.den)
		assert.GreaterOrEqual(t, got, int64(0))
		assert.LessOrEqual(t, got, int64(100))
	}
}

func TestParseOccupancyPolicy(t *testing.T) {
	p, err := ParseOccupancyPolicy("")
	require.NoError(t, err)
	assert.Equal(t, OccupancyTrailing30d, p)

	p, err = ParseOccupancyPolicy("POINT_IN_TIME")
	require.NoError(t, err)
	assert.Equal(t, OccupancyPointInTime, p)

	_, err = ParseOccupancyPolicy("average")
	assert.Error(t, err)
}

func TestReportScope_Windows(t *testing.T) {
	loc := seoul(t)
	// 2025-05-31 16:00 UTC is already June 1st in Seoul.
	sc := ReportScope{Now: time.Date(2025, 5, 31, 16, 0, 0, 0, time.UTC), Location: loc}
	assert.True(t, sc.DayStart().Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, loc)))
	assert.True(t, sc.MonthStart().Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, loc)))
	assert.True(t, sc.Empty())
}
