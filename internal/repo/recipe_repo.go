package repo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/adilbekov/recipebox-api/internal/domain"
)

func (s *Store) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	cur, err := s.colRecipes.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]domain.Recipe, 0)
	for cur.Next(ctx) {
		var r domain.Recipe
		if err := cur.Decode(&r); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, cur.Err()
}

// ReplaceAllRecipes wipes the collection and bulk-inserts the new set.
// Used only by the import tool; unordered so one bad document does not
// abort the rest.
func (s *Store) ReplaceAllRecipes(ctx context.Context, recipes []domain.Recipe) (int, error) {
	if _, err := s.colRecipes.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, err
	}
	if len(recipes) == 0 {
		return 0, nil
	}
	docs := make([]interface{}, 0, len(recipes))
	for i := range recipes {
		docs = append(docs, recipes[i])
	}
	res, err := s.colRecipes.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	inserted := 0
	if res != nil {
		inserted = len(res.InsertedIDs)
	}
	return inserted, err
}
