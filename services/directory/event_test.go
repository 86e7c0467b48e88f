package directory

import (
	"testing"
	"time"

	eventRepo "ainfakroun/database/repository/event"
	"ainfakroun/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeEventRepo struct {
	listCriteria eventRepo.ListCriteria
	created      *models.Event
	updatedSet   bson.M
}

func (f *fakeEventRepo) List(c eventRepo.ListCriteria) ([]models.Event, int64, error) {
	f.listCriteria = c
	return nil, 0, nil
}

func (f *fakeEventRepo) GetByID(id primitive.ObjectID) (*models.Event, error) {
	return &models.Event{ID: id}, nil
}

func (f *fakeEventRepo) Create(e *models.Event) error {
	f.created = e
	return nil
}

func (f *fakeEventRepo) UpdateByID(id primitive.ObjectID, set bson.M) (*models.Event, error) {
	f.updatedSet = set
	return &models.Event{ID: id}, nil
}

func (f *fakeEventRepo) Delete(id primitive.ObjectID) error { return nil }

func (f *fakeEventRepo) EnsureIndexes() error { return nil }

func TestEventList_PassesFlags(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := &DefaultEventService{Repo: repo}

	_, _, err := svc.List(EventListQuery{Upcoming: true, Featured: true, Category: "sports"})
	require.NoError(t, err)

	assert.True(t, repo.listCriteria.Upcoming)
	assert.True(t, repo.listCriteria.Featured)
	assert.Equal(t, "sports", repo.listCriteria.Category)
}

func TestEventCreate_Defaults(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := &DefaultEventService{Repo: repo}

	start := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	created, err := svc.Create(EventCreateInput{
		Title:     "Cultural Festival",
		StartDate: start,
		Location:  "City Center",
	})
	require.NoError(t, err)

	assert.True(t, created.IsActive)
	assert.False(t, created.IsFeatured)
	assert.Equal(t, models.EventCategoryOther, created.Category)
	assert.Equal(t, start, created.StartDate)
	assert.Nil(t, created.EndDate)
	assert.NotNil(t, created.Images)
}

func TestEventCreate_Featured(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := &DefaultEventService{Repo: repo}

	featured := true
	created, err := svc.Create(EventCreateInput{
		Title:      "Ramadan Nights",
		Category:   "religious",
		StartDate:  time.Now(),
		Location:   "Grand Mosque",
		IsFeatured: &featured,
	})
	require.NoError(t, err)

	assert.True(t, created.IsFeatured)
	assert.Equal(t, "religious", created.Category)
}

func TestEventUpdate_PartialSetDoc(t *testing.T) {
	repo := &fakeEventRepo{}
	svc := &DefaultEventService{Repo: repo}

	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	featured := true
	_, err := svc.Update(primitive.NewObjectID().Hex(), EventUpdateInput{
		StartDate:  &start,
		IsFeatured: &featured,
	})
	require.NoError(t, err)

	assert.Equal(t, start, repo.updatedSet["startDate"])
	assert.Equal(t, true, repo.updatedSet["isFeatured"])
	assert.Contains(t, repo.updatedSet, "updatedAt")
	assert.NotContains(t, repo.updatedSet, "title")
	assert.NotContains(t, repo.updatedSet, "location")
}
