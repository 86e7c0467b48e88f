package directory

import (
	"time"

	businessRepo "ainfakroun/database/repository/business"
	"ainfakroun/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BusinessService exposes the business directory operations.
type BusinessService interface {
	List(query BusinessListQuery) ([]models.Business, Pagination, error)
	Get(id string) (*models.Business, error)
	Create(input BusinessCreateInput) (*models.Business, error)
	Update(id string, input BusinessUpdateInput) (*models.Business, error)
	Delete(id string) error
}

// DefaultBusinessService is the production implementation.
type DefaultBusinessService struct {
	Repo businessRepo.BusinessRepository
}

// BusinessListQuery mirrors the public list query parameters.
type BusinessListQuery struct {
	Search   string
	Category string
	Page     int64
	Limit    int64
}

// BusinessCreateInput is the create payload. IsActive defaults to true when
// omitted; category defaults to "other" as in the stored schema.
type BusinessCreateInput struct {
	Name          string   `json:"name" binding:"required"`
	NameAr        string   `json:"nameAr"`
	NameFr        string   `json:"nameFr"`
	Description   string   `json:"description"`
	DescriptionAr string   `json:"descriptionAr"`
	DescriptionFr string   `json:"descriptionFr"`
	Category      string   `json:"category" binding:"omitempty,oneof=restaurant shop pharmacy bank hotel service other"`
	Address       string   `json:"address" binding:"required"`
	AddressAr     string   `json:"addressAr"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Phones        []string `json:"phones"`
	Email         string   `json:"email" binding:"omitempty,email"`
	Website       string   `json:"website"`
	Hours         string   `json:"hours"`
	Images        []string `json:"images"`
	IsActive      *bool    `json:"isActive"`
}

// BusinessUpdateInput is the partial-update payload; only non-nil fields are
// written.
type BusinessUpdateInput struct {
	Name          *string   `json:"name"`
	NameAr        *string   `json:"nameAr"`
	NameFr        *string   `json:"nameFr"`
	Description   *string   `json:"description"`
	DescriptionAr *string   `json:"descriptionAr"`
	DescriptionFr *string   `json:"descriptionFr"`
	Category      *string   `json:"category" binding:"omitempty,oneof=restaurant shop pharmacy bank hotel service other"`
	Address       *string   `json:"address"`
	AddressAr     *string   `json:"addressAr"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	Phones        *[]string `json:"phones"`
	Email         *string   `json:"email" binding:"omitempty,email"`
	Website       *string   `json:"website"`
	Hours         *string   `json:"hours"`
	Images        *[]string `json:"images"`
	IsActive      *bool     `json:"isActive"`
}

func (s *DefaultBusinessService) List(query BusinessListQuery) ([]models.Business, Pagination, error) {
	page, limit := normalizePaging(query.Page, query.Limit)
	criteria := businessRepo.ListCriteria{
		Search:   query.Search,
		Category: query.Category,
		Page:     page,
		Limit:    limit,
	}
	businesses, total, err := s.Repo.List(criteria)
	if err != nil {
		return nil, Pagination{}, err
	}
	return businesses, paginate(page, limit, total), nil
}

func (s *DefaultBusinessService) Get(id string) (*models.Business, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(oid)
}

func (s *DefaultBusinessService) Create(input BusinessCreateInput) (*models.Business, error) {
	now := time.Now()
	business := &models.Business{
		Name:          input.Name,
		NameAr:        input.NameAr,
		NameFr:        input.NameFr,
		Description:   input.Description,
		DescriptionAr: input.DescriptionAr,
		DescriptionFr: input.DescriptionFr,
		Category:      input.Category,
		Address:       input.Address,
		AddressAr:     input.AddressAr,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		Phones:        input.Phones,
		Email:         input.Email,
		Website:       input.Website,
		Hours:         input.Hours,
		Images:        input.Images,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if business.Category == "" {
		business.Category = models.BusinessCategoryOther
	}
	if input.IsActive != nil {
		business.IsActive = *input.IsActive
	}
	if business.Phones == nil {
		business.Phones = []string{}
	}
	if business.Images == nil {
		business.Images = []string{}
	}
	if err := s.Repo.Create(business); err != nil {
		return nil, err
	}
	return business, nil
}

func (s *DefaultBusinessService) Update(id string, input BusinessUpdateInput) (*models.Business, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.UpdateByID(oid, input.setDoc(time.Now()))
}

func (s *DefaultBusinessService) Delete(id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(oid)
}

// setDoc builds the $set document from the supplied fields only. updatedAt
// is always refreshed.
func (in BusinessUpdateInput) setDoc(now time.Time) bson.M {
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
	if in.Description != nil {
		set["description"] = *in.Description
	}
	if in.DescriptionAr != nil {
		set["descriptionAr"] = *in.DescriptionAr
	}
	if in.DescriptionFr != nil {
		set["descriptionFr"] = *in.DescriptionFr
	}
	if in.Category != nil {
		set["category"] = *in.Category
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
	if in.Email != nil {
		set["email"] = *in.Email
	}
	if in.Website != nil {
		set["website"] = *in.Website
	}
	if in.Hours != nil {
		set["hours"] = *in.Hours
	}
	if in.Images != nil {
		set["images"] = *in.Images
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}
	return set
}
