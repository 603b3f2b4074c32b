package queries

import (
	"context"

	"github.com/edvin/camal/internal/model"
	"github.com/edvin/camal/internal/query"
)

// Profile returns the signed-in user.
func (q *Queries) Profile(ctx context.Context) query.Result[model.User] {
	return query.Fetch(ctx, q.qc, query.Query[model.User]{
		Key: query.NewKey(TagProfile, nil),
		Fetch: func(ctx context.Context) (model.User, error) {
			env, err := q.api.Profile(ctx)
			if err != nil {
				return model.User{}, err
			}
			return env.Data, nil
		},
	})
}
