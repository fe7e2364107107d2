package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"

	"github.com/google/uuid"
)

type RequestReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindByRequestor(ctx context.Context, requestorID uuid.UUID) ([]*RequestView, error)
	// FindAllExcept pages through other users' requests, newest first.
	FindAllExcept(ctx context.Context, requestorID uuid.UUID, limit, offset int32) ([]*RequestView, error)
	AnswersForRequests(ctx context.Context, requestIDs []uuid.UUID) (map[uuid.UUID][]*RequestAnswerView, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, requestID, viewerID uuid.UUID) (*RequestView, error)
	ListOwn(ctx context.Context, requestorID uuid.UUID) ([]*RequestView, error)
	ListAll(ctx context.Context, viewerID uuid.UUID, from, size int) ([]*RequestView, error)
}

type requestQueriesImpl struct {
	store RequestReadStore
	users UserExistsStore
}

func NewRequestQueries(store RequestReadStore, users UserExistsStore) RequestQueries {
	return &requestQueriesImpl{store: store, users: users}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, requestID, viewerID uuid.UUID) (*RequestView, error) {
	if err := q.requireUser(ctx, viewerID); err != nil {
		return nil, err
	}

	view, err := q.store.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(errs.New("item request not found"), errs.ErrNotFound)
		}
		return nil, err
	}
	if err := q.attachAnswers(ctx, []*RequestView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, requestorID uuid.UUID) ([]*RequestView, error) {
	if err := q.requireUser(ctx, requestorID); err != nil {
		return nil, err
	}

	views, err := q.store.FindByRequestor(ctx, requestorID)
	if err != nil {
		return nil, err
	}
	if err := q.attachAnswers(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) ListAll(ctx context.Context, viewerID uuid.UUID, from, size int) ([]*RequestView, error) {
	if err := q.requireUser(ctx, viewerID); err != nil {
		return nil, err
	}

	from, size = NormalizePage(from, size)
	views, err := q.store.FindAllExcept(ctx, viewerID, int32(size), int32(from))
	if err != nil {
		return nil, err
	}
	if err := q.attachAnswers(ctx, views); err != nil {
		return nil, err
	}
	return views, nil
}

func (q *requestQueriesImpl) requireUser(ctx context.Context, userID uuid.UUID) error {
	exists, err := q.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.Mark(errs.New("user not found"), errs.ErrNotFound)
	}
	return nil
}

func (q *requestQueriesImpl) attachAnswers(ctx context.Context, views []*RequestView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	answers, err := q.store.AnswersForRequests(ctx, ids)
	if err != nil {
		return err
	}
	for _, v := range views {
		if items := answers[v.ID]; items != nil {
			v.Items = items
		} else {
			v.Items = []*RequestAnswerView{}
		}
	}
	return nil
}
