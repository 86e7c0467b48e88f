package medicalRepo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListFilter_TypeAllIgnored(t *testing.T) {
	filter := listFilter(ListCriteria{Type: "all"})

	assert.Equal(t, bson.M{"isActive": true}, filter)
}

func TestListFilter_EmergencyOnly(t *testing.T) {
	filter := listFilter(ListCriteria{Emergency: true, Type: "hospital"})

	assert.Equal(t, true, filter["isEmergency24h"])
	assert.Equal(t, "hospital", filter["type"])
}

func TestListSort_EmergencyFacilitiesFirst(t *testing.T) {
	sort := listSort()

	assert.Equal(t, bson.D{
		{Key: "isEmergency24h", Value: -1},
		{Key: "name", Value: 1},
	}, sort)
}
