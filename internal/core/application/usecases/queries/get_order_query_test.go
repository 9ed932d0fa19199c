package queries_test

import (
	"testing"

	"github.com/AbdullahAlSalim/skywayexpress/internal/core/application/usecases/queries"
	"github.com/AbdullahAlSalim/skywayexpress/internal/core/domain/model/kernel"
	"github.com/AbdullahAlSalim/skywayexpress/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderQuery(kernel.ID(42))
	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.Equal(t, kernel.ID(42), query.OrderID())
}

func TestNewGetOrderQuery_UnassignedID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.ID(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGetOrderQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}
