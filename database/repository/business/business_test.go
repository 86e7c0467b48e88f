package businessRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListFilter_Defaults(t *testing.T) {
	filter := listFilter(ListCriteria{})

	assert.Equal(t, bson.M{"isActive": true}, filter)
}

func TestListFilter_CategoryAll(t *testing.T) {
	filter := listFilter(ListCriteria{Category: "all"})

	_, hasCategory := filter["category"]
	assert.False(t, hasCategory, "category 'all' should not constrain the filter")
}

func TestListFilter_Category(t *testing.T) {
	filter := listFilter(ListCriteria{Category: "restaurant"})

	assert.Equal(t, "restaurant", filter["category"])
	assert.Equal(t, true, filter["isActive"])
}

func TestListFilter_Search(t *testing.T) {
	filter := listFilter(ListCriteria{Search: "pharmacy"})

	assert.Equal(t, bson.M{"$search": "pharmacy"}, filter["$text"])
}

func TestListSort_NewestFirst(t *testing.T) {
	sort := listSort()

	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, sort)
}
