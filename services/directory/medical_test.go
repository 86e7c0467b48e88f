package directory

import (
	"testing"

	medicalRepo "ainfakroun/database/repository/medical"
	"ainfakroun/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeMedicalRepo struct {
	listCriteria medicalRepo.ListCriteria
	created      *models.Medical
	updatedSet   bson.M
}

func (f *fakeMedicalRepo) List(c medicalRepo.ListCriteria) ([]models.Medical, int64, error) {
	f.listCriteria = c
	return nil, 0, nil
}

func (f *fakeMedicalRepo) GetByID(id primitive.ObjectID) (*models.Medical, error) {
	return &models.Medical{ID: id}, nil
}

func (f *fakeMedicalRepo) Create(m *models.Medical) error {
	f.created = m
	return nil
}

func (f *fakeMedicalRepo) UpdateByID(id primitive.ObjectID, set bson.M) (*models.Medical, error) {
	f.updatedSet = set
	return &models.Medical{ID: id}, nil
}

func (f *fakeMedicalRepo) Delete(id primitive.ObjectID) error { return nil }

func (f *fakeMedicalRepo) EnsureIndexes() error { return nil }

func TestMedicalCreate_Defaults(t *testing.T) {
	repo := &fakeMedicalRepo{}
	svc := &DefaultMedicalService{Repo: repo}

	created, err := svc.Create(MedicalCreateInput{Name: "Polyclinic Centre", Address: "Centre Ville"})
	require.NoError(t, err)

	assert.Equal(t, models.MedicalTypeClinic, created.Type)
	assert.False(t, created.IsEmergency24h)
	assert.True(t, created.IsActive)
	assert.NotNil(t, created.Phones)
}

func TestMedicalCreate_Emergency24h(t *testing.T) {
	repo := &fakeMedicalRepo{}
	svc := &DefaultMedicalService{Repo: repo}

	emergency := true
	created, err := svc.Create(MedicalCreateInput{
		Name:           "Hospital of Ain Fakroun",
		Type:           "hospital",
		Address:        "Route de Constantine",
		IsEmergency24h: &emergency,
	})
	require.NoError(t, err)

	assert.True(t, created.IsEmergency24h)
	assert.Equal(t, "hospital", created.Type)
}

func TestMedicalList_PassesEmergencyFlag(t *testing.T) {
	repo := &fakeMedicalRepo{}
	svc := &DefaultMedicalService{Repo: repo}

	_, _, err := svc.List(MedicalListQuery{Type: "pharmacy", Emergency: true})
	require.NoError(t, err)

	assert.Equal(t, "pharmacy", repo.listCriteria.Type)
	assert.True(t, repo.listCriteria.Emergency)
}
