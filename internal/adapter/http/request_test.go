package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-deals/flight-deal-radar/internal/domain"
)

func TestSearchReportRequest_Validate_EmptyIsValid(t *testing.T) {
	req := SearchReportRequest{}
	assert.NoError(t, req.Validate())
}

func TestSearchReportRequest_Validate_NormalizesAirportCodes(t *testing.T) {
	req := SearchReportRequest{Origin: "yyz", Destination: "maa"}

	require.NoError(t, req.Validate())
	assert.Equal(t, "YYZ", req.Origin)
	assert.Equal(t, "MAA", req.Destination)
}

func TestSearchReportRequest_Validate_CollectsAllErrors(t *testing.T) {
	req := SearchReportRequest{
		Origin:      "toronto",
		Destination: "12",
		StartDate:   "bad",
		Adults:      -1,
	}

	err := req.Validate()
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)

	details := verrs.ToMap()
	assert.Len(t, details, 4)
	assert.Contains(t, details, "origin")
	assert.Contains(t, details, "destination")
	assert.Contains(t, details, "startDate")
	assert.Contains(t, details, "adults")
}

func TestSearchReportRequest_Merge(t *testing.T) {
	defaults := domain.SearchCriteria{
		Origin:      "YYZ",
		Destination: "MAA",
		StartDate:   "2026-03-20",
		EndDate:     "2026-03-24",
		Adults:      2,
		Children:    2,
	}

	tests := []struct {
		name string
		req  SearchReportRequest
		want domain.SearchCriteria
	}{
		{
			name: "empty request keeps defaults",
			req:  SearchReportRequest{},
			want: defaults,
		},
		{
			name: "route override",
			req:  SearchReportRequest{Origin: "YVR", Destination: "SIN"},
			want: domain.SearchCriteria{
				Origin:      "YVR",
				Destination: "SIN",
				StartDate:   "2026-03-20",
				EndDate:     "2026-03-24",
				Adults:      2,
				Children:    2,
			},
		},
		{
			name: "passenger override",
			req:  SearchReportRequest{Adults: 1, Children: 3},
			want: domain.SearchCriteria{
				Origin:      "YYZ",
				Destination: "MAA",
				StartDate:   "2026-03-20",
				EndDate:     "2026-03-24",
				Adults:      1,
				Children:    3,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.Merge(defaults))
		})
	}
}
