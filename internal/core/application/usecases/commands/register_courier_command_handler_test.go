package commands_test

import (
	"errors"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterCourierCommandHandler_Handle_RegistersWithGeocodedAddress(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRegisterCourierCommand(
		"Courier", "courier@example.com", "secret", "+90 533", "Moda Cad. 7", "Kadıköy",
	)
	require.NoError(t, err)

	location := testPoint(t, 29.02, 40.98)

	geocoder := new(MockGeocoder)
	geocoder.On("Geocode", ctx, "Moda Cad. 7").Return(location, nil).Once()

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "secret").Return("hashed-secret", nil).Once()

	tokens := new(MockTokenIssuer)
	tokens.On("Issue", mock.AnythingOfType("kernel.Actor")).Return("signed-token", nil).Once()

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Add", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCourierCommandHandler(factory, geocoder, hasher, tokens)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result.Courier)
	assert.Equal(t, "Courier", result.Courier.Name())
	assert.Equal(t, "hashed-secret", result.Courier.PasswordHash())
	assert.Equal(t, location, result.Courier.Location())
	assert.False(t, result.Courier.IsActive())
	assert.Equal(t, "signed-token", result.Token)

	issuedActor, ok := tokens.Calls[0].Arguments[0].(kernel.Actor)
	require.True(t, ok)
	assert.True(t, issuedActor.IsCourier())
	assert.True(t, issuedActor.ID().IsEqual(result.Courier.ID()))

	geocoder.AssertExpectations(t)
	courierRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRegisterCourierCommandHandler_Handle_NoAddressStartsAtOrigin(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRegisterCourierCommand(
		"Courier", "courier@example.com", "secret", "", "", "",
	)
	require.NoError(t, err)

	geocoder := new(MockGeocoder)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "secret").Return("hashed-secret", nil).Once()

	tokens := new(MockTokenIssuer)
	tokens.On("Issue", mock.AnythingOfType("kernel.Actor")).Return("signed-token", nil).Once()

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Add", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCourierCommandHandler(factory, geocoder, hasher, tokens)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.OriginGeoPoint(), result.Courier.Location())
	geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

func TestRegisterCourierCommandHandler_Handle_GeocodeFailureFallsBackToOrigin(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRegisterCourierCommand(
		"Courier", "courier@example.com", "secret", "", "Nowhere 0", "",
	)
	require.NoError(t, err)

	geocoder := new(MockGeocoder)
	geocoder.On("Geocode", ctx, "Nowhere 0").
		Return(kernel.GeoPoint{}, errors.New("nominatim unavailable")).Once()

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "secret").Return("hashed-secret", nil).Once()

	tokens := new(MockTokenIssuer)
	tokens.On("Issue", mock.AnythingOfType("kernel.Actor")).Return("signed-token", nil).Once()

	courierRepo := new(MockCourierRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CourierRepository").Return(courierRepo).Once(),
		courierRepo.On("Add", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewRegisterCourierCommandHandler(factory, geocoder, hasher, tokens)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, kernel.OriginGeoPoint(), result.Courier.Location())
	geocoder.AssertExpectations(t)
}

func TestRegisterCourierCommandHandler_Handle_HashError(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRegisterCourierCommand(
		"Courier", "courier@example.com", "secret", "", "", "",
	)
	require.NoError(t, err)

	hasher := new(MockPasswordHasher)
	hasher.On("Hash", "secret").Return("", errors.New("bcrypt error")).Once()

	factory := new(MockCourierUoWFactory)

	handler := commands.NewRegisterCourierCommandHandler(
		factory, new(MockGeocoder), hasher, new(MockTokenIssuer),
	)
	_, err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.EqualError(t, err, "bcrypt error")
	factory.AssertNotCalled(t, "Create")
}

func TestNewRegisterCourierCommand(t *testing.T) {
	t.Run("should collect all missing required fields", func(t *testing.T) {
		_, err := commands.NewRegisterCourierCommand("", "", "", "", "", "")

		require.Error(t, err)
		assert.ErrorContains(t, err, "value is required: name")
		assert.ErrorContains(t, err, "value is required: email")
		assert.ErrorContains(t, err, commands.ErrPasswordIsRequired.Error())
	})

	t.Run("should allow empty phone, address and district", func(t *testing.T) {
		cmd, err := commands.NewRegisterCourierCommand(
			"Courier", "courier@example.com", "secret", "", "", "",
		)

		require.NoError(t, err)
		assert.Empty(t, cmd.Phone())
		assert.Empty(t, cmd.AddressText())
		assert.Empty(t, cmd.District())
	})
}
