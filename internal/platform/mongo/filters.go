package mongo

import (
	"regexp"

	"github.com/servicehub/servicehub-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// keywordFields are searched by the listing keyword.
var keywordFields = []string{"title", "category", "companyName", "company"}

// serviceFilter translates a listing query into a MongoDB filter. The
// keyword is quoted so it matches as a literal, case-insensitive substring.
func serviceFilter(q store.ServiceQuery) bson.M {
	filter := bson.M{}

	if q.Keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(q.Keyword), Options: "i"}
		or := make(bson.A, 0, len(keywordFields))
		for _, field := range keywordFields {
			or = append(or, bson.M{field: pattern})
		}
		filter["$or"] = or
	}

	if q.FiltersCategory() {
		filter["category"] = q.Category
	}

	return filter
}

func byID(id primitive.ObjectID) bson.M {
	return bson.M{"_id": id}
}
