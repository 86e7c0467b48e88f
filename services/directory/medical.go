package directory

import (
	"time"

	medicalRepo "ainfakroun/database/repository/medical"
	"ainfakroun/models"

	"go.mongodb.org/mongo-driver/bson"
)

// MedicalService exposes the medical directory operations.
type MedicalService interface {
	List(query MedicalListQuery) ([]models.Medical, Pagination, error)
	Get(id string) (*models.Medical, error)
	Create(input MedicalCreateInput) (*models.Medical, error)
	Update(id string, input MedicalUpdateInput) (*models.Medical, error)
	Delete(id string) error
}

// DefaultMedicalService is the production implementation.
type DefaultMedicalService struct {
	Repo medicalRepo.MedicalRepository
}

// MedicalListQuery mirrors the public list query parameters.
type MedicalListQuery struct {
	Search    string
	Type      string
	Emergency bool
	Page      int64
	Limit     int64
}

// MedicalCreateInput is the create payload. Type defaults to "clinic" as in
// the stored schema.
type MedicalCreateInput struct {
	Name           string   `json:"name" binding:"required"`
	NameAr         string   `json:"nameAr"`
	NameFr         string   `json:"nameFr"`
	Type           string   `json:"type" binding:"omitempty,oneof=hospital clinic pharmacy laboratory dentist specialist other"`
	Specialty      string   `json:"specialty"`
	SpecialtyAr    string   `json:"specialtyAr"`
	Description    string   `json:"description"`
	DescriptionAr  string   `json:"descriptionAr"`
	Address        string   `json:"address" binding:"required"`
	AddressAr      string   `json:"addressAr"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	Phones         []string `json:"phones"`
	EmergencyPhone string   `json:"emergencyPhone"`
	Email          string   `json:"email" binding:"omitempty,email"`
	Website        string   `json:"website"`
	Hours          string   `json:"hours"`
	IsEmergency24h *bool    `json:"isEmergency24h"`
	Doctors        []string `json:"doctors"`
	Images         []string `json:"images"`
	IsActive       *bool    `json:"isActive"`
}

// MedicalUpdateInput is the partial-update payload.
type MedicalUpdateInput struct {
	Name           *string   `json:"name"`
	NameAr         *string   `json:"nameAr"`
	NameFr         *string   `json:"nameFr"`
	Type           *string   `json:"type" binding:"omitempty,oneof=hospital clinic pharmacy laboratory dentist specialist other"`
	Specialty      *string   `json:"specialty"`
	SpecialtyAr    *string   `json:"specialtyAr"`
	Description    *string   `json:"description"`
	DescriptionAr  *string   `json:"descriptionAr"`
	Address        *string   `json:"address"`
	AddressAr      *string   `json:"addressAr"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	Phones         *[]string `json:"phones"`
	EmergencyPhone *string   `json:"emergencyPhone"`
	Email          *string   `json:"email" binding:"omitempty,email"`
	Website        *string   `json:"website"`
	Hours          *string   `json:"hours"`
	IsEmergency24h *bool     `json:"isEmergency24h"`
	Doctors        *[]string `json:"doctors"`
	Images         *[]string `json:"images"`
	IsActive       *bool     `json:"isActive"`
}

func (s *DefaultMedicalService) List(query MedicalListQuery) ([]models.Medical, Pagination, error) {
	page, limit := normalizePaging(query.Page, query.Limit)
	criteria := medicalRepo.ListCriteria{
		Search:    query.Search,
		Type:      query.Type,
		Emergency: query.Emergency,
		Page:      page,
		Limit:     limit,
	}
	facilities, total, err := s.Repo.List(criteria)
	if err != nil {
		return nil, Pagination{}, err
	}
	return facilities, paginate(page, limit, total), nil
}

func (s *DefaultMedicalService) Get(id string) (*models.Medical, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(oid)
}

func (s *DefaultMedicalService) Create(input MedicalCreateInput) (*models.Medical, error) {
	now := time.Now()
	facility := &models.Medical{
		Name:           input.Name,
		NameAr:         input.NameAr,
		NameFr:         input.NameFr,
		Type:           input.Type,
		Specialty:      input.Specialty,
		SpecialtyAr:    input.SpecialtyAr,
		Description:    input.Description,
		DescriptionAr:  input.DescriptionAr,
		Address:        input.Address,
		AddressAr:      input.AddressAr,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
		Phones:         input.Phones,
		EmergencyPhone: input.EmergencyPhone,
		Email:          input.Email,
		Website:        input.Website,
		Hours:          input.Hours,
		Doctors:        input.Doctors,
		Images:         input.Images,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if facility.Type == "" {
		facility.Type = models.MedicalTypeClinic
	}
	if input.IsEmergency24h != nil {
		facility.IsEmergency24h = *input.IsEmergency24h
	}
	if input.IsActive != nil {
		facility.IsActive = *input.IsActive
	}
	if facility.Phones == nil {
		facility.Phones = []string{}
	}
	if facility.Images == nil {
		facility.Images = []string{}
	}
	if err := s.Repo.Create(facility); err != nil {
		return nil, err
	}
	return facility, nil
}

func (s *DefaultMedicalService) Update(id string, input MedicalUpdateInput) (*models.Medical, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.UpdateByID(oid, input.setDoc(time.Now()))
}

func (s *DefaultMedicalService) Delete(id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(oid)
}

func (in MedicalUpdateInput) setDoc(now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if in.Name != nil {
		set["name"] = *in.Name
	}
	if in.NameAr != nil {
		set["nameAr"] = *in.NameAr
	}
	if in.NameFr != nil {
		set["nameFr"] = *in.NameFr
	}
	if in.Type != nil {
		set["type"] = *in.Type
	}
	if in.Specialty != nil {
		set["specialty"] = *in.Specialty
	}
	if in.SpecialtyAr != nil {
		set["specialtyAr"] = *in.SpecialtyAr
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.DescriptionAr != nil {
		set["descriptionAr"] = *in.DescriptionAr
	}
	if in.Address != nil {
		set["address"] = *in.Address
	}
	if in.AddressAr != nil {
		set["addressAr"] = *in.AddressAr
	}
	if in.Latitude != nil {
		set["latitude"] = *in.Latitude
	}
	if in.Longitude != nil {
		set["longitude"] = *in.Longitude
	}
	if in.Phones != nil {
		set["phones"] = *in.Phones
	}
	if in.EmergencyPhone != nil {
		set["emergencyPhone"] = *in.EmergencyPhone
	}
	if in.Email != nil {
		set["email"] = *in.Email
	}
	if in.Website != nil {
		set["website"] = *in.Website
	}
	if in.Hours != nil {
		set["hours"] = *in.Hours
	}
	if in.IsEmergency24h != nil {
		set["isEmergency24h"] = *in.IsEmergency24h
	}
	if in.Doctors != nil {
		set["doctors"] = *in.Doctors
	}
	if in.Images != nil {
		set["images"] = *in.Images
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}
	return set
}
