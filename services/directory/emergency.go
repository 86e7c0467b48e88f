package directory

import (
	"time"

	emergencyRepo "ainfakroun/database/repository/emergency"
	"ainfakroun/models"

	"go.mongodb.org/mongo-driver/bson"
)

// EmergencyService exposes the emergency contact operations.
type EmergencyService interface {
	List(query EmergencyListQuery) ([]models.EmergencyContact, Pagination, error)
	Get(id string) (*models.EmergencyContact, error)
	Create(input EmergencyCreateInput) (*models.EmergencyContact, error)
	Update(id string, input EmergencyUpdateInput) (*models.EmergencyContact, error)
	Delete(id string) error
}

// DefaultEmergencyService is the production implementation.
type DefaultEmergencyService struct {
	Repo emergencyRepo.EmergencyRepository
}

// EmergencyListQuery mirrors the public list query parameters.
type EmergencyListQuery struct {
	Type  string
	Page  int64
	Limit int64
}

// EmergencyCreateInput is the create payload. Priority defaults to 10;
// lower values appear first on the emergency page.
type EmergencyCreateInput struct {
	Name           string  `json:"name" binding:"required"`
	NameAr         string  `json:"nameAr"`
	NameFr         string  `json:"nameFr"`
	Type           string  `json:"type" binding:"omitempty,oneof=police fire ambulance hospital municipality utility other"`
	Phone          string  `json:"phone" binding:"required"`
	AlternatePhone string  `json:"alternatePhone"`
	Address        string  `json:"address"`
	AddressAr      string  `json:"addressAr"`
	Description    string  `json:"description"`
	DescriptionAr  string  `json:"descriptionAr"`
	IsAvailable24h *bool   `json:"isAvailable24h"`
	Priority       *int    `json:"priority" binding:"omitempty,min=0"`
	IsActive       *bool   `json:"isActive"`
}

// EmergencyUpdateInput is the partial-update payload.
type EmergencyUpdateInput struct {
	Name           *string `json:"name"`
	NameAr         *string `json:"nameAr"`
	NameFr         *string `json:"nameFr"`
	Type           *string `json:"type" binding:"omitempty,oneof=police fire ambulance hospital municipality utility other"`
	Phone          *string `json:"phone"`
	AlternatePhone *string `json:"alternatePhone"`
	Address        *string `json:"address"`
	AddressAr      *string `json:"addressAr"`
	Description    *string `json:"description"`
	DescriptionAr  *string `json:"descriptionAr"`
	IsAvailable24h *bool   `json:"isAvailable24h"`
	Priority       *int    `json:"priority" binding:"omitempty,min=0"`
	IsActive       *bool   `json:"isActive"`
}

func (s *DefaultEmergencyService) List(query EmergencyListQuery) ([]models.EmergencyContact, Pagination, error) {
	page, limit := normalizePaging(query.Page, query.Limit)
	criteria := emergencyRepo.ListCriteria{
		Type:  query.Type,
		Page:  page,
		Limit: limit,
	}
	contacts, total, err := s.Repo.List(criteria)
	if err != nil {
		return nil, Pagination{}, err
	}
	return contacts, paginate(page, limit, total), nil
}

func (s *DefaultEmergencyService) Get(id string) (*models.EmergencyContact, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(oid)
}

func (s *DefaultEmergencyService) Create(input EmergencyCreateInput) (*models.EmergencyContact, error) {
	now := time.Now()
	contact := &models.EmergencyContact{
		Name:           input.Name,
		NameAr:         input.NameAr,
		NameFr:         input.NameFr,
		Type:           input.Type,
		Phone:          input.Phone,
		AlternatePhone: input.AlternatePhone,
		Address:        input.Address,
		AddressAr:      input.AddressAr,
		Description:    input.Description,
		DescriptionAr:  input.DescriptionAr,
		Priority:       models.DefaultEmergencyPriority,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if contact.Type == "" {
		contact.Type = models.EmergencyTypeOther
	}
	if input.IsAvailable24h != nil {
		contact.IsAvailable24h = *input.IsAvailable24h
	}
	if input.Priority != nil {
		contact.Priority = *input.Priority
	}
	if input.IsActive != nil {
		contact.IsActive = *input.IsActive
	}
	if err := s.Repo.Create(contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *DefaultEmergencyService) Update(id string, input EmergencyUpdateInput) (*models.EmergencyContact, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.UpdateByID(oid, input.setDoc(time.Now()))
}

func (s *DefaultEmergencyService) Delete(id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(oid)
}

func (in EmergencyUpdateInput) setDoc(now time.Time) bson.M {
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
	if in.Phone != nil {
		set["phone"] = *in.Phone
	}
	if in.AlternatePhone != nil {
		set["alternatePhone"] = *in.AlternatePhone
	}
	if in.Address != nil {
		set["address"] = *in.Address
	}
	if in.AddressAr != nil {
		set["addressAr"] = *in.AddressAr
	}
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.DescriptionAr != nil {
		set["descriptionAr"] = *in.DescriptionAr
	}
	if in.IsAvailable24h != nil {
		set["isAvailable24h"] = *in.IsAvailable24h
	}
	if in.Priority != nil {
		set["priority"] = *in.Priority
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}
	return set
}
