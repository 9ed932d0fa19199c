package queries_test

import (
	"testing"
	"time"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/application/usecases/queries"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderStatsQuery_Valid(t *testing.T) {
	since := time.Now().Add(-24 * time.Hour)
	query, err := queries.NewOrderStatsQuery(since)
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, since, query.Since())
}

func TestNewOrderStatsQuery_ZeroTime(t *testing.T) {
	_, err := queries.NewOrderStatsQuery(time.Time{})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestOrderStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.OrderStatsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrOrderStatsQueryIsNotConstructed)
}
