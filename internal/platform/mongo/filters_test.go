package mongo

import (
	"testing"

	"github.com/servicehub/servicehub-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestServiceFilter(t *testing.T) {
	t.Run("no filters matches everything", func(t *testing.T) {
		assert.Equal(t, bson.M{}, serviceFilter(store.ServiceQuery{}))
	})

	t.Run("keyword ORs the searchable fields", func(t *testing.T) {
		filter := serviceFilter(store.ServiceQuery{Keyword: "Clean"})

		or, ok := filter["$or"].(bson.A)
		require.True(t, ok)
		require.Len(t, or, 4)

		want := primitive.Regex{Pattern: "Clean", Options: "i"}
		assert.Equal(t, bson.M{"title": want}, or[0])
		assert.Equal(t, bson.M{"category": want}, or[1])
		assert.Equal(t, bson.M{"companyName": want}, or[2])
		assert.Equal(t, bson.M{"company": want}, or[3])
		assert.NotContains(t, filter, "category")
	})

	t.Run("keyword metacharacters are literal", func(t *testing.T) {
		filter := serviceFilter(store.ServiceQuery{Keyword: "c++ (pro)"})

		or := filter["$or"].(bson.A)
		assert.Equal(t, primitive.Regex{Pattern: `c\+\+ \(pro\)`, Options: "i"}, or[0].(bson.M)["title"])
	})

	t.Run("category is exact", func(t *testing.T) {
		filter := serviceFilter(store.ServiceQuery{Category: "Plumbing"})
		assert.Equal(t, bson.M{"category": "Plumbing"}, filter)
	})

	t.Run("all categories sentinel equals no category", func(t *testing.T) {
		assert.Equal(t,
			serviceFilter(store.ServiceQuery{Keyword: "x"}),
			serviceFilter(store.ServiceQuery{Keyword: "x", Category: store.AllCategories}))
	})
}
