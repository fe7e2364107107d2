//go:build unit

package queries_test

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRequestStore struct {
	byID    map[uuid.UUID]*queries.RequestView
	own     []*queries.RequestView
	others  []*queries.RequestView
	answers map[uuid.UUID][]*queries.RequestAnswerView
}

func (s *stubRequestStore) FindByID(_ context.Context, id uuid.UUID) (*queries.RequestView, error) {
	if v, ok := s.byID[id]; ok {
		return v, nil
	}
	return nil, infra.WrapRepoErr("request not found", nil, infra.KindNotFound)
}

func (s *stubRequestStore) FindByRequestor(_ context.Context, _ uuid.UUID) ([]*queries.RequestView, error) {
	return s.own, nil
}

func (s *stubRequestStore) FindAllExcept(_ context.Context, _ uuid.UUID, _, _ int32) ([]*queries.RequestView, error) {
	return s.others, nil
}

func (s *stubRequestStore) AnswersForRequests(_ context.Context, _ []uuid.UUID) (map[uuid.UUID][]*queries.RequestAnswerView, error) {
	if s.answers == nil {
		return map[uuid.UUID][]*queries.RequestAnswerView{}, nil
	}
	return s.answers, nil
}

func TestRequestQueries(t *testing.T) {
	ctx := context.Background()
	viewerID := uuid.New()

	t.Run("GetByID attaches answering items", func(t *testing.T) {
		view := builder.NewRequestBuilder().BuildView()
		answer := &queries.RequestAnswerView{ID: uuid.New(), Name: "Cordless drill", OwnerID: uuid.New(), RequestID: &view.ID}
		store := &stubRequestStore{
			byID:    map[uuid.UUID]*queries.RequestView{view.ID: view},
			answers: map[uuid.UUID][]*queries.RequestAnswerView{view.ID: {answer}},
		}
		q := queries.NewRequestQueries(store, &stubUserExists{exists: true})

		got, err := q.GetByID(ctx, view.ID, viewerID)
		require.NoError(t, err)
		require.Len(t, got.Items, 1)
		assert.Equal(t, answer.ID, got.Items[0].ID)
	})

	t.Run("GetByID on unknown request maps to NotFound", func(t *testing.T) {
		store := &stubRequestStore{byID: map[uuid.UUID]*queries.RequestView{}}
		q := queries.NewRequestQueries(store, &stubUserExists{exists: true})

		_, err := q.GetByID(ctx, uuid.New(), viewerID)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("unknown viewer maps to NotFound before any lookup", func(t *testing.T) {
		q := queries.NewRequestQueries(&stubRequestStore{}, &stubUserExists{exists: false})

		_, err := q.GetByID(ctx, uuid.New(), viewerID)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrNotFound)

		_, err = q.ListOwn(ctx, viewerID)
		assert.ErrorIs(t, err, errs.ErrNotFound)

		_, err = q.ListAll(ctx, viewerID, 0, 20)
		assert.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("requests without answers carry an empty items slice", func(t *testing.T) {
		view := builder.NewRequestBuilder().BuildView()
		view.Items = nil
		store := &stubRequestStore{own: []*queries.RequestView{view}}
		q := queries.NewRequestQueries(store, &stubUserExists{exists: true})

		got, err := q.ListOwn(ctx, viewerID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.NotNil(t, got[0].Items)
		assert.Len(t, got[0].Items, 0)
	})

	t.Run("ListAll returns other users' requests", func(t *testing.T) {
		other := builder.NewRequestBuilder().BuildView()
		store := &stubRequestStore{others: []*queries.RequestView{other}}
		q := queries.NewRequestQueries(store, &stubUserExists{exists: true})

		got, err := q.ListAll(ctx, viewerID, 0, 20)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, other.ID, got[0].ID)
	})
}
