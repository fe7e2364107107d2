//go:build unit

package commands_test

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/domain/item"
	"shareit/internal/domain/request"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/db"
	"shareit/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeUoW runs command closures against in-memory state without a database.
// Repo writes capture the entities handed to them so tests can inspect what
// the command would have persisted.
type fakeUoW struct {
	users          map[uuid.UUID]*shared.UserSnapshot
	items          map[uuid.UUID]*shared.ItemSnapshot
	bookings       map[uuid.UUID]*shared.BookingSnapshot
	bookingsByItem map[uuid.UUID][]*shared.BookingSnapshot
	requests       map[uuid.UUID]*shared.RequestSnapshot
	dependents     map[uuid.UUID]bool

	createdUser    *user.User
	updatedUser    *user.User
	deletedUserID  uuid.UUID
	createdItem    *item.Item
	updatedItem    *item.Item
	createdBooking *booking.Booking
	createdComment *comment.Comment
	createdRequest *request.ItemRequest

	statusID       uuid.UUID
	statusNext     booking.Status
	statusExpected booking.Status

	userCreateErr    error
	userUpdateErr    error
	statusUpdateErr  error
	bookingCreateErr error
}

func newFakeUoW() *fakeUoW {
	return &fakeUoW{
		users:          map[uuid.UUID]*shared.UserSnapshot{},
		items:          map[uuid.UUID]*shared.ItemSnapshot{},
		bookings:       map[uuid.UUID]*shared.BookingSnapshot{},
		bookingsByItem: map[uuid.UUID][]*shared.BookingSnapshot{},
		requests:       map[uuid.UUID]*shared.RequestSnapshot{},
		dependents:     map[uuid.UUID]bool{},
	}
}

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

// UnitOfWork

func (f *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, f)
}

func (f *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (f *fakeUoW) CommandReads() shared.CommandReads { return f }

// Tx

func (f *fakeUoW) Users() shared.UserRepository       { return fakeUserRepo{f} }
func (f *fakeUoW) Items() shared.ItemRepository       { return fakeItemRepo{f} }
func (f *fakeUoW) Bookings() shared.BookingRepository { return fakeBookingRepo{f} }
func (f *fakeUoW) Comments() shared.CommentRepository { return fakeCommentRepo{f} }
func (f *fakeUoW) Requests() shared.RequestRepository { return fakeRequestRepo{f} }
func (f *fakeUoW) Reads() shared.CommandReads         { return f }
func (f *fakeUoW) DB() db.DBTX                        { return nil }

// CommandReads

func (f *fakeUoW) UserByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	if s, ok := f.users[id]; ok {
		return s, nil
	}
	return nil, notFound("user")
}

func (f *fakeUoW) ItemByID(_ context.Context, id uuid.UUID) (*shared.ItemSnapshot, error) {
	if s, ok := f.items[id]; ok {
		return s, nil
	}
	return nil, notFound("item")
}

func (f *fakeUoW) BookingByID(_ context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	if s, ok := f.bookings[id]; ok {
		return s, nil
	}
	return nil, notFound("booking")
}

func (f *fakeUoW) BookingsByItem(_ context.Context, itemID uuid.UUID) ([]*shared.BookingSnapshot, error) {
	return f.bookingsByItem[itemID], nil
}

func (f *fakeUoW) RequestByID(_ context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	if s, ok := f.requests[id]; ok {
		return s, nil
	}
	return nil, notFound("request")
}

func (f *fakeUoW) UserHasDependents(_ context.Context, userID uuid.UUID) (bool, error) {
	return f.dependents[userID], nil
}

// Repositories

type fakeUserRepo struct{ f *fakeUoW }

func (r fakeUserRepo) Create(_ context.Context, _ db.DBTX, u *user.User) (uuid.UUID, error) {
	if r.f.userCreateErr != nil {
		return uuid.Nil, r.f.userCreateErr
	}
	r.f.createdUser = u
	return u.ID(), nil
}

func (r fakeUserRepo) Update(_ context.Context, _ db.DBTX, u *user.User) error {
	if r.f.userUpdateErr != nil {
		return r.f.userUpdateErr
	}
	r.f.updatedUser = u
	return nil
}

func (r fakeUserRepo) Delete(_ context.Context, _ db.DBTX, id uuid.UUID) error {
	r.f.deletedUserID = id
	return nil
}

type fakeItemRepo struct{ f *fakeUoW }

func (r fakeItemRepo) Create(_ context.Context, _ db.DBTX, it *item.Item) (uuid.UUID, error) {
	r.f.createdItem = it
	return it.ID(), nil
}

func (r fakeItemRepo) Update(_ context.Context, _ db.DBTX, it *item.Item) error {
	r.f.updatedItem = it
	return nil
}

type fakeBookingRepo struct{ f *fakeUoW }

func (r fakeBookingRepo) Create(_ context.Context, _ db.DBTX, b *booking.Booking) (uuid.UUID, error) {
	if r.f.bookingCreateErr != nil {
		return uuid.Nil, r.f.bookingCreateErr
	}
	r.f.createdBooking = b
	return b.ID(), nil
}

func (r fakeBookingRepo) UpdateStatus(_ context.Context, _ db.DBTX, id uuid.UUID, next, expected booking.Status) error {
	if r.f.statusUpdateErr != nil {
		return r.f.statusUpdateErr
	}
	r.f.statusID = id
	r.f.statusNext = next
	r.f.statusExpected = expected
	return nil
}

type fakeCommentRepo struct{ f *fakeUoW }

func (r fakeCommentRepo) Create(_ context.Context, _ db.DBTX, c *comment.Comment) (uuid.UUID, error) {
	r.f.createdComment = c
	return c.ID(), nil
}

type fakeRequestRepo struct{ f *fakeUoW }

func (r fakeRequestRepo) Create(_ context.Context, _ db.DBTX, req *request.ItemRequest) (uuid.UUID, error) {
	r.f.createdRequest = req
	return req.ID(), nil
}

// Seeding helpers

func (f *fakeUoW) seedUser(name, email string) uuid.UUID {
	id := uuid.New()
	f.users[id] = &shared.UserSnapshot{ID: id, Name: name, Email: email}
	return id
}

func (f *fakeUoW) seedItem(ownerID uuid.UUID, available bool) uuid.UUID {
	id := uuid.New()
	f.items[id] = &shared.ItemSnapshot{
		ID:          id,
		Name:        "Cordless drill",
		Description: "18V drill with two batteries",
		Available:   available,
		OwnerID:     ownerID,
	}
	return id
}

func (f *fakeUoW) seedBooking(snap *shared.BookingSnapshot) {
	f.bookings[snap.ID] = snap
	f.bookingsByItem[snap.ItemID] = append(f.bookingsByItem[snap.ItemID], snap)
}
