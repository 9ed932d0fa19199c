package queries_test

import (
	"math"
	"testing"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/application/usecases/queries"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuoteRateQuery_Valid(t *testing.T) {
	query := queries.NewQuoteRateQuery()
	err := query.Validate()
	require.NoError(t, err)
	assert.Nil(t, query.Distance())
}

func TestNewQuoteRateQueryForDistance_Valid(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
	}{
		{"zero", 0},
		{"typical", 120.5},
		{"large", 1e6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, err := queries.NewQuoteRateQueryForDistance(tt.distance)
			require.NoError(t, err)
			require.NoError(t, query.Validate())
			require.NotNil(t, query.Distance())
			assert.Equal(t, tt.distance, *query.Distance())
		})
	}
}

func TestNewQuoteRateQueryForDistance_NotFinite(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
	}{
		{"nan", math.NaN()},
		{"positive_infinity", math.Inf(1)},
		{"negative_infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := queries.NewQuoteRateQueryForDistance(tt.distance)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestQuoteRateQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.QuoteRateQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrQuoteRateQueryIsNotConstructed)
}
