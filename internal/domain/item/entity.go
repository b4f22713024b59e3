package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("item name is required")
	ErrEmptyDescription = errors.New("item description is required")
)

// Item entity. The booking engine consults it as the availability/ownership
// directory; item endpoints themselves are thin CRUD.
type Item struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	description string
	isAvailable bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(ownerID uuid.UUID, name, description string, isAvailable bool) (*Item, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" {
		return nil, ErrEmptyName
	}
	if description == "" {
		return nil, ErrEmptyDescription
	}

	return &Item{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		description: description,
		isAvailable: isAvailable,
	}, nil
}

func ReconstructItem(id, ownerID uuid.UUID, name, description string, isAvailable bool, createdAt, updatedAt time.Time) *Item {
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		isAvailable: isAvailable,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

// ApplyPatch overwrites only the supplied fields.
func (i *Item) ApplyPatch(name, description *string, isAvailable *bool) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return ErrEmptyName
		}
		i.name = trimmed
	}
	if description != nil {
		trimmed := strings.TrimSpace(*description)
		if trimmed == "" {
			return ErrEmptyDescription
		}
		i.description = trimmed
	}
	if isAvailable != nil {
		i.isAvailable = *isAvailable
	}
	return nil
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) OwnerID() uuid.UUID   { return i.ownerID }
func (i *Item) Name() string         { return i.name }
func (i *Item) Description() string  { return i.description }
func (i *Item) IsAvailable() bool    { return i.isAvailable }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
