package address

import (
	"context"
	"strings"

	"taza-be/internal/logger"
	"taza-be/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines the business logic for delivery addresses. Every operation
// is scoped to userID; another user's address is reported as not found.
type Service interface {
	List(ctx context.Context, userID uint) ([]*Address, error)
	Get(ctx context.Context, userID uint, addressID uuid.UUID) (*Address, error)

	Create(ctx context.Context, userID uint, input CreateAddressInput) (*Address, error)
	Update(ctx context.Context, userID uint, addressID uuid.UUID, input UpdateAddressInput) (*Address, error)
	Delete(ctx context.Context, userID uint, addressID uuid.UUID) error

	SetDefaultAddress(ctx context.Context, userID uint, addressID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(
	ctx context.Context,
	userID uint,
) ([]*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "List"),
		zap.Uint("user_id", userID),
	)

	log.Debug("listing addresses")

	return s.repo.ListByUser(ctx, userID)
}

func (s *service) Get(
	ctx context.Context,
	userID uint,
	addressID uuid.UUID,
) (*Address, error) {
	return s.repo.GetByID(ctx, addressID, userID)
}

// ValidateCreateInput trims the input in place and checks required fields.
func ValidateCreateInput(in *CreateAddressInput) error {
	in.ReceiverName = strings.TrimSpace(in.ReceiverName)
	in.Phone = utils.NormalizePhone(in.Phone)
	in.AddressLine1 = strings.TrimSpace(in.AddressLine1)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.PostalCode = strings.TrimSpace(in.PostalCode)
	in.Label = strings.TrimSpace(in.Label)
	in.AddressLine2 = utils.TrimPtr(in.AddressLine2)
	in.Landmark = utils.TrimPtr(in.Landmark)
	if in.Label == "" {
		in.Label = "Home"
	}

	switch {
	case in.ReceiverName == "":
		return ErrReceiverRequired
	case in.Phone == "":
		return ErrPhoneRequired
	case in.AddressLine1 == "":
		return ErrLine1Required
	case in.City == "":
		return ErrCityRequired
	case in.State == "":
		return ErrStateRequired
	case in.PostalCode == "":
		return ErrPostalRequired
	}
	return validateCoordinates(in.Latitude, in.Longitude)
}

func validateCoordinates(lat, lng *float64) error {
	if lat != nil && (*lat < -90 || *lat > 90) {
		return ErrInvalidCoordinate
	}
	if lng != nil && (*lng < -180 || *lng > 180) {
		return ErrInvalidCoordinate
	}
	return nil
}

func (s *service) Create(
	ctx context.Context,
	userID uint,
	input CreateAddressInput,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Create"),
		zap.Uint("user_id", userID),
	)

	if err := ValidateCreateInput(&input); err != nil {
		return nil, err
	}

	isDefault := input.SetAsDefault
	if !isDefault {
		// the first address a user saves becomes the default
		n, err := s.repo.CountByUser(ctx, userID)
		if err != nil {
			log.Error("failed to count addresses", zap.Error(err))
			return nil, err
		}
		isDefault = n == 0
	}

	addr := &Address{
		ID:           uuid.New(),
		UserID:       userID,
		Label:        input.Label,
		ReceiverName: input.ReceiverName,
		Phone:        input.Phone,
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		Landmark:     input.Landmark,
		City:         input.City,
		State:        input.State,
		PostalCode:   input.PostalCode,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		IsActive:     true,
		IsDefault:    isDefault,
	}

	if err := s.repo.Create(ctx, addr); err != nil {
		log.Error("failed to create address", zap.Error(err))
		return nil, err
	}

	log.Info("address created", zap.String("address_id", addr.ID.String()))
	return addr, nil
}

func (s *service) Update(
	ctx context.Context,
	userID uint,
	addressID uuid.UUID,
	input UpdateAddressInput,
) (*Address, error) {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Update"),
		zap.Uint("user_id", userID),
		zap.String("address_id", addressID.String()),
	)

	addr, err := s.repo.GetByID(ctx, addressID, userID)
	if err != nil {
		return nil, err
	}

	applyUpdate(addr, input)

	check := CreateAddressInput{
		Label:        addr.Label,
		ReceiverName: addr.ReceiverName,
		Phone:        addr.Phone,
		AddressLine1: addr.AddressLine1,
		AddressLine2: addr.AddressLine2,
		Landmark:     addr.Landmark,
		City:         addr.City,
		State:        addr.State,
		PostalCode:   addr.PostalCode,
		Latitude:     addr.Latitude,
		Longitude:    addr.Longitude,
	}
	if err := ValidateCreateInput(&check); err != nil {
		return nil, err
	}
	addr.Label, addr.ReceiverName, addr.Phone = check.Label, check.ReceiverName, check.Phone
	addr.AddressLine1, addr.AddressLine2, addr.Landmark = check.AddressLine1, check.AddressLine2, check.Landmark
	addr.City, addr.State, addr.PostalCode = check.City, check.State, check.PostalCode

	if err := s.repo.Update(ctx, addr); err != nil {
		log.Error("failed to update address", zap.Error(err))
		return nil, err
	}

	log.Info("address updated")
	return addr, nil
}

func applyUpdate(addr *Address, in UpdateAddressInput) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&addr.Label, in.Label)
	set(&addr.ReceiverName, in.ReceiverName)
	set(&addr.Phone, in.Phone)
	set(&addr.AddressLine1, in.AddressLine1)
	set(&addr.City, in.City)
	set(&addr.State, in.State)
	set(&addr.PostalCode, in.PostalCode)

	if in.AddressLine2 != nil {
		addr.AddressLine2 = in.AddressLine2
	}
	if in.Landmark != nil {
		addr.Landmark = in.Landmark
	}
	if in.Latitude != nil {
		addr.Latitude = in.Latitude
	}
	if in.Longitude != nil {
		addr.Longitude = in.Longitude
	}
}

func (s *service) Delete(
	ctx context.Context,
	userID uint,
	addressID uuid.UUID,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "Delete"),
		zap.String("address_id", addressID.String()),
		zap.Uint("user_id", userID),
	)

	if err := s.repo.Deactivate(ctx, addressID, userID); err != nil {
		return err
	}

	log.Info("address deleted")
	return nil
}

func (s *service) SetDefaultAddress(
	ctx context.Context,
	userID uint,
	addressID uuid.UUID,
) error {

	log := logger.FromCtx(ctx).With(
		zap.String("service", "Address"),
		zap.String("method", "SetDefaultAddress"),
		zap.String("address_id", addressID.String()),
		zap.Uint("user_id", userID),
	)

	log.Info("setting default address")

	return s.repo.SetDefault(ctx, userID, addressID)
}
