package emergencyRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListFilter_Type(t *testing.T) {
	assert.Equal(t, bson.M{"isActive": true}, listFilter(ListCriteria{}))
	assert.Equal(t, bson.M{"isActive": true}, listFilter(ListCriteria{Type: "all"}))
	assert.Equal(t, bson.M{"isActive": true, "type": "police"}, listFilter(ListCriteria{Type: "police"}))
}

func TestListSort_PriorityThenName(t *testing.T) {
	assert.Equal(t, bson.D{
		{Key: "priority", Value: 1},
		{Key: "name", Value: 1},
	}, listSort())
}
