package comment

import (
	"errors"
	"strings"
	"time"

	"shareit/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrEmptyText   = errors.New("comment text cannot be empty")
	ErrTextTooLong = errors.New("comment text exceeds maximum length")
)

const MaxTextLength = 1000

type Comment struct {
	id       uuid.UUID
	itemID   uuid.UUID
	authorID uuid.UUID
	text     string
	created  time.Time
}

func NewComment(itemID, authorID uuid.UUID, text string, now time.Time) (*Comment, error) {
	t := strings.TrimSpace(text)
	if t == "" {
		return nil, ErrEmptyText
	}
	if len(t) > MaxTextLength {
		return nil, ErrTextTooLong
	}
	return &Comment{
		id:       uuid.New(),
		itemID:   itemID,
		authorID: authorID,
		text:     t,
		created:  now,
	}, nil
}

func ReconstructComment(id, itemID, authorID uuid.UUID, text string, created time.Time) *Comment {
	return &Comment{
		id:       id,
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  created,
	}
}

func (c *Comment) ID() uuid.UUID       { return c.id }
func (c *Comment) ItemID() uuid.UUID   { return c.itemID }
func (c *Comment) AuthorID() uuid.UUID { return c.authorID }
func (c *Comment) Text() string        { return c.text }
func (c *Comment) Created() time.Time  { return c.created }

// Identity implements identity.Identifiable.
func (c *Comment) Identity() uuid.UUID { return c.id }

// Eligible reports whether the author may comment on the item the bookings
// belong to: there must be a booking of theirs that was not rejected and
// has already started. A booking still waiting on its start date does not
// qualify.
func Eligible(itemBookings []*booking.Booking, authorID uuid.UUID, now time.Time) bool {
	for _, b := range itemBookings {
		if b.BookerID() != authorID {
			continue
		}
		if b.Status() == booking.StatusRejected {
			continue
		}
		if b.Period().Start().Before(now) {
			return true
		}
	}
	return false
}
