package mosqueRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListFilter_SearchOnly(t *testing.T) {
	assert.Equal(t, bson.M{"isActive": true}, listFilter(ListCriteria{}))

	filter := listFilter(ListCriteria{Search: "رحمة"})
	assert.Equal(t, bson.M{"$search": "رحمة"}, filter["$text"])
}

func TestListSort_Alphabetical(t *testing.T) {
	assert.Equal(t, bson.D{{Key: "name", Value: 1}}, listSort())
}
