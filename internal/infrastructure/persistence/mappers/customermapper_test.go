package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradesift-io/tradesift/internal/domain/customer"
	"github.com/tradesift-io/tradesift/internal/domain/shipment"
	"github.com/tradesift-io/tradesift/internal/infrastructure/persistence/models"
)

func TestCustomerMapperRoundTrip(t *testing.T) {
	mapper := NewCustomerMapper()
	validUpto := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

	entity, err := customer.Reconstruct(
		42, "trader@example.com", "Jordan Lee", "Lee Imports", "bcrypt-hash",
		customer.CodeSubscription{Codes: []string{"8504", "72"}, ValidUpto: validUpto, DownloadRemaining: 500},
		customer.CodeSubscription{},
		created, created,
	)
	require.NoError(t, err)

	model, err := mapper.ToModel(entity)
	require.NoError(t, err)
	assert.Equal(t, uint(42), model.ID)
	assert.Equal(t, "trader@example.com", model.Email)
	assert.JSONEq(t, `["8504","72"]`, string(model.ExportCodes))
	require.NotNil(t, model.ExportValidUpto)
	assert.True(t, model.ExportValidUpto.Equal(validUpto))
	assert.Equal(t, 500, model.ExportDownloadRemaining)
	assert.Nil(t, model.ImportCodes)
	assert.Nil(t, model.ImportValidUpto)
	assert.Equal(t, 0, model.ImportDownloadRemaining)

	back, err := mapper.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, entity.ID(), back.ID())
	assert.Equal(t, entity.Email(), back.Email())
	assert.Equal(t, entity.Subscription(shipment.DirectionExport), back.Subscription(shipment.DirectionExport))
	assert.Equal(t, entity.Subscription(shipment.DirectionImport), back.Subscription(shipment.DirectionImport))
}

func TestCustomerMapperNilHandling(t *testing.T) {
	mapper := NewCustomerMapper()

	entity, err := mapper.ToEntity(nil)
	require.NoError(t, err)
	assert.Nil(t, entity)

	model, err := mapper.ToModel(nil)
	require.NoError(t, err)
	assert.Nil(t, model)
}

func TestCustomerMapperRejectsMalformedCodes(t *testing.T) {
	mapper := NewCustomerMapper()

	_, err := mapper.ToEntity(&models.CustomerModel{
		ID:          7,
		Email:       "broken@example.com",
		ExportCodes: []byte("not-json"),
	})
	assert.Error(t, err)
}
