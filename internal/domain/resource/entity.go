package resource

import (
	"strings"
	"time"
	"unicode/utf8"

	"parkshare/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle          = errs.NewKind("resource title cannot be empty", errs.ErrValidation)
	ErrTitleTooLong        = errs.NewKind("resource title is too long (max 255 characters)", errs.ErrValidation)
	ErrDescriptionTooLong  = errs.NewKind("resource description is too long", errs.ErrValidation)
	ErrNegativeRate        = errs.NewKind("rates cannot be negative", errs.ErrValidation)
	ErrMissingOwner        = errs.NewKind("owner id is required", errs.ErrValidation)
	ErrResourceNotFound    = errs.NewKind("resource not found", errs.ErrNotFound)
	ErrNotOwner            = errs.NewKind("only the owner can change this resource", errs.ErrForbidden)
	ErrResourceUnavailable = errs.NewKind("resource is not accepting bookings", errs.ErrValidation)
)

const (
	MaxTitleLength       = 255
	MaxDescriptionLength = 2000
)

// Rates are stored in minor units. Bookings copy their own total, so changing a
// rate never touches historical bookings.
type Rates struct {
	PerHourCents int64
	PerDayCents  int64
}

func (r Rates) validate() error {
	if r.PerHourCents < 0 || r.PerDayCents < 0 {
		return ErrNegativeRate
	}
	return nil
}

type Details struct {
	Title       string
	Description string
	Address     string
	Latitude    *float64
	Longitude   *float64
}

func (d Details) normalize() (Details, error) {
	d.Title = strings.TrimSpace(d.Title)
	d.Description = strings.TrimSpace(d.Description)
	d.Address = strings.TrimSpace(d.Address)

	if d.Title == "" {
		return Details{}, ErrEmptyTitle
	}
	if utf8.RuneCountInString(d.Title) > MaxTitleLength {
		return Details{}, ErrTitleTooLong
	}
	if utf8.RuneCountInString(d.Description) > MaxDescriptionLength {
		return Details{}, ErrDescriptionTooLong
	}
	return d, nil
}

type Resource struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	details     Details
	rates       Rates
	isAvailable bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewResource(ownerID uuid.UUID, details Details, rates Rates, now time.Time) (*Resource, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	d, err := details.normalize()
	if err != nil {
		return nil, err
	}
	if err := rates.validate(); err != nil {
		return nil, err
	}

	return &Resource{
		id:          uuid.New(),
		ownerID:     ownerID,
		details:     d,
		rates:       rates,
		isAvailable: true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructResource(id, ownerID uuid.UUID, details Details, rates Rates, isAvailable bool, createdAt, updatedAt time.Time) *Resource {
	return &Resource{
		id:          id,
		ownerID:     ownerID,
		details:     details,
		rates:       rates,
		isAvailable: isAvailable,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update is nil-safe per field: nil leaves the current value.
type Update struct {
	Details     *Details
	Rates       *Rates
	IsAvailable *bool
}

func (r *Resource) Apply(actorID uuid.UUID, isAdmin bool, u Update, now time.Time) error {
	if actorID != r.ownerID && !isAdmin {
		return ErrNotOwner
	}
	if u.Details != nil {
		d, err := u.Details.normalize()
		if err != nil {
			return err
		}
		r.details = d
	}
	if u.Rates != nil {
		if err := u.Rates.validate(); err != nil {
			return err
		}
		r.rates = *u.Rates
	}
	if u.IsAvailable != nil {
		r.isAvailable = *u.IsAvailable
	}
	r.updatedAt = now
	return nil
}

// EnsureBookable rejects listings the owner has switched off.
func (r *Resource) EnsureBookable() error {
	if !r.isAvailable {
		return ErrResourceUnavailable
	}
	return nil
}

func (r *Resource) ID() uuid.UUID        { return r.id }
func (r *Resource) OwnerID() uuid.UUID   { return r.ownerID }
func (r *Resource) Details() Details     { return r.details }
func (r *Resource) Rates() Rates         { return r.rates }
func (r *Resource) IsAvailable() bool    { return r.isAvailable }
func (r *Resource) CreatedAt() time.Time { return r.createdAt }
func (r *Resource) UpdatedAt() time.Time { return r.updatedAt }
