package commands

import (
	"context"
	"log/slog"

	"parkshare/internal/domain/resource"
	"parkshare/internal/domain/user"
	"parkshare/internal/pkg/clock"
	"parkshare/internal/pkg/patch"
	"parkshare/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateResourceRequest struct {
	Title             string
	Description       string
	Address           string
	Latitude          *float64
	Longitude         *float64
	PricePerHourCents int64
	PricePerDayCents  int64
}

// UpdateResourceRequest leaves nil fields untouched.
type UpdateResourceRequest struct {
	Title             *string
	Description       *string
	Address           *string
	Latitude          *float64
	Longitude         *float64
	PricePerHourCents *int64
	PricePerDayCents  *int64
	IsAvailable       *bool
}

type CreateResourceResult struct {
	ResourceID uuid.UUID
}

type ResourceCommands interface {
	CreateResource(ctx context.Context, req CreateResourceRequest, actor Actor) (*CreateResourceResult, error)
	UpdateResource(ctx context.Context, resourceID uuid.UUID, req UpdateResourceRequest, actor Actor) error
}

type resourceUseCaseImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewResourceUseCase(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) ResourceCommands {
	return &resourceUseCaseImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *resourceUseCaseImpl) CreateResource(ctx context.Context, req CreateResourceRequest, actor Actor) (*CreateResourceResult, error) {
	if !actor.Role.CanManageListings() {
		return nil, user.ErrCannotManageListings
	}

	res, err := resource.NewResource(actor.ID, resource.Details{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
	}, resource.Rates{
		PerHourCents: req.PricePerHourCents,
		PerDayCents:  req.PricePerDayCents,
	}, uc.clock.Now())
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Resources().Create(ctx, res)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("resource created", "resource_id", res.ID(), "owner_id", res.OwnerID())
	return &CreateResourceResult{ResourceID: res.ID()}, nil
}

func (uc *resourceUseCaseImpl) UpdateResource(ctx context.Context, resourceID uuid.UUID, req UpdateResourceRequest, actor Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Resources().FindByID(ctx, resourceID)
		if err != nil {
			return notFoundAs(err, resource.ErrResourceNotFound)
		}

		if err := res.Apply(actor.ID, actor.IsAdmin(), req.toUpdate(res), uc.clock.Now()); err != nil {
			return err
		}
		return tx.Resources().Update(ctx, res)
	})
}

// toUpdate merges the patch over the current values so the domain validates the
// resulting record as a whole.
func (req UpdateResourceRequest) toUpdate(current *resource.Resource) resource.Update {
	var u resource.Update

	if req.Title != nil || req.Description != nil || req.Address != nil || req.Latitude != nil || req.Longitude != nil {
		d := current.Details()
		u.Details = &resource.Details{
			Title:       patch.Coalesce(req.Title, d.Title),
			Description: patch.Coalesce(req.Description, d.Description),
			Address:     patch.Coalesce(req.Address, d.Address),
			Latitude:    patch.CoalescePtr(req.Latitude, d.Latitude),
			Longitude:   patch.CoalescePtr(req.Longitude, d.Longitude),
		}
	}

	if req.PricePerHourCents != nil || req.PricePerDayCents != nil {
		r := current.Rates()
		u.Rates = &resource.Rates{
			PerHourCents: patch.Coalesce(req.PricePerHourCents, r.PerHourCents),
			PerDayCents:  patch.Coalesce(req.PricePerDayCents, r.PerDayCents),
		}
	}

	u.IsAvailable = req.IsAvailable
	return u
}
