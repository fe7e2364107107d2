package shared

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Users() UserRepository
	Items() ItemRepository
	Bookings() BookingRepository
	Comments() CommentRepository
	Requests() RequestRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	ItemByID(ctx context.Context, id uuid.UUID) (*ItemSnapshot, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	BookingsByItem(ctx context.Context, itemID uuid.UUID) ([]*BookingSnapshot, error)
	RequestByID(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
	UserHasDependents(ctx context.Context, userID uuid.UUID) (bool, error)
}

// Write-side snapshots keep command usecases off the read-side view types.
type UserSnapshot struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID          uuid.UUID
	Name        string
	Description string
	Available   bool
	OwnerID     uuid.UUID
	RequestID   *uuid.UUID
}

type BookingSnapshot struct {
	ID          uuid.UUID
	ItemID      uuid.UUID
	ItemOwnerID uuid.UUID
	BookerID    uuid.UUID
	Start       time.Time
	End         time.Time
	Status      string
}

type RequestSnapshot struct {
	ID          uuid.UUID
	Description string
	RequestorID uuid.UUID
}

type UserRepository interface {
	Create(ctx context.Context, db db.DBTX, u *user.User) (uuid.UUID, error)
	Update(ctx context.Context, db db.DBTX, u *user.User) error
	Delete(ctx context.Context, db db.DBTX, id uuid.UUID) error
}

type ItemRepository interface {
	Create(ctx context.Context, db db.DBTX, it *item.Item) (uuid.UUID, error)
	Update(ctx context.Context, db db.DBTX, it *item.Item) error
}

type BookingRepository interface {
	Create(ctx context.Context, db db.DBTX, b *booking.Booking) (uuid.UUID, error)
	// UpdateStatus is a compare-and-set: the row moves from expected to next
	// or the call reports a conflict, so concurrent decisions cannot race.
	UpdateStatus(ctx context.Context, db db.DBTX, id uuid.UUID, next, expected booking.Status) error
}

type CommentRepository interface {
	Create(ctx context.Context, db db.DBTX, c *comment.Comment) (uuid.UUID, error)
}

type RequestRepository interface {
	Create(ctx context.Context, db db.DBTX, r *request.ItemRequest) (uuid.UUID, error)
}
