package directory

import (
	"time"

	mosqueRepo "ainfakroun/database/repository/mosque"
	"ainfakroun/models"

	"go.mongodb.org/mongo-driver/bson"
)

// MosqueService exposes the mosque directory operations.
type MosqueService interface {
	List(query MosqueListQuery) ([]models.Mosque, Pagination, error)
	Get(id string) (*models.Mosque, error)
	Create(input MosqueCreateInput) (*models.Mosque, error)
	Update(id string, input MosqueUpdateInput) (*models.Mosque, error)
	Delete(id string) error
}

// DefaultMosqueService is the production implementation.
type DefaultMosqueService struct {
	Repo mosqueRepo.MosqueRepository
}

// MosqueListQuery mirrors the public list query parameters.
type MosqueListQuery struct {
	Search string
	Page   int64
	Limit  int64
}

// PrayerTimesInput validates each supplied slot as an "HH:MM" time of day.
type PrayerTimesInput struct {
	Fajr    string `json:"fajr" binding:"omitempty,datetime=15:04"`
	Dhuhr   string `json:"dhuhr" binding:"omitempty,datetime=15:04"`
	Asr     string `json:"asr" binding:"omitempty,datetime=15:04"`
	Maghrib string `json:"maghrib" binding:"omitempty,datetime=15:04"`
	Isha    string `json:"isha" binding:"omitempty,datetime=15:04"`
	Jumua   string `json:"jumua" binding:"omitempty,datetime=15:04"`
}

func (in *PrayerTimesInput) toModel() *models.PrayerTimes {
	if in == nil {
		return nil
	}
	return &models.PrayerTimes{
		Fajr:    in.Fajr,
		Dhuhr:   in.Dhuhr,
		Asr:     in.Asr,
		Maghrib: in.Maghrib,
		Isha:    in.Isha,
		Jumua:   in.Jumua,
	}
}

// MosqueCreateInput is the create payload.
type MosqueCreateInput struct {
	Name          string            `json:"name" binding:"required"`
	NameAr        string            `json:"nameAr"`
	NameFr        string            `json:"nameFr"`
	Description   string            `json:"description"`
	DescriptionAr string            `json:"descriptionAr"`
	Address       string            `json:"address" binding:"required"`
	AddressAr     string            `json:"addressAr"`
	Latitude      *float64          `json:"latitude"`
	Longitude     *float64          `json:"longitude"`
	Imam          string            `json:"imam"`
	Phone         string            `json:"phone"`
	PrayerTimes   *PrayerTimesInput `json:"prayerTimes"`
	Facilities    []string          `json:"facilities"`
	Images        []string          `json:"images"`
	IsActive      *bool             `json:"isActive"`
}

// MosqueUpdateInput is the partial-update payload. PrayerTimes is replaced
// wholesale when supplied; individual slots are not merged.
type MosqueUpdateInput struct {
	Name          *string           `json:"name"`
	NameAr        *string           `json:"nameAr"`
	NameFr        *string           `json:"nameFr"`
	Description   *string           `json:"description"`
	DescriptionAr *string           `json:"descriptionAr"`
	Address       *string           `json:"address"`
	AddressAr     *string           `json:"addressAr"`
	Latitude      *float64          `json:"latitude"`
	Longitude     *float64          `json:"longitude"`
	Imam          *string           `json:"imam"`
	Phone         *string           `json:"phone"`
	PrayerTimes   *PrayerTimesInput `json:"prayerTimes"`
	Facilities    *[]string         `json:"facilities"`
	Images        *[]string         `json:"images"`
	IsActive      *bool             `json:"isActive"`
}

func (s *DefaultMosqueService) List(query MosqueListQuery) ([]models.Mosque, Pagination, error) {
	page, limit := normalizePaging(query.Page, query.Limit)
	criteria := mosqueRepo.ListCriteria{
		Search: query.Search,
		Page:   page,
		Limit:  limit,
	}
	mosques, total, err := s.Repo.List(criteria)
	if err != nil {
		return nil, Pagination{}, err
	}
	return mosques, paginate(page, limit, total), nil
}

func (s *DefaultMosqueService) Get(id string) (*models.Mosque, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(oid)
}

func (s *DefaultMosqueService) Create(input MosqueCreateInput) (*models.Mosque, error) {
	now := time.Now()
	mosque := &models.Mosque{
		Name:          input.Name,
		NameAr:        input.NameAr,
		NameFr:        input.NameFr,
		Description:   input.Description,
		DescriptionAr: input.DescriptionAr,
		Address:       input.Address,
		AddressAr:     input.AddressAr,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		Imam:          input.Imam,
		Phone:         input.Phone,
		PrayerTimes:   input.PrayerTimes.toModel(),
		Facilities:    input.Facilities,
		Images:        input.Images,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if input.IsActive != nil {
		mosque.IsActive = *input.IsActive
	}
	if mosque.Facilities == nil {
		mosque.Facilities = []string{}
	}
	if mosque.Images == nil {
		mosque.Images = []string{}
	}
	if err := s.Repo.Create(mosque); err != nil {
		return nil, err
	}
	return mosque, nil
}

func (s *DefaultMosqueService) Update(id string, input MosqueUpdateInput) (*models.Mosque, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.UpdateByID(oid, input.setDoc(time.Now()))
}

func (s *DefaultMosqueService) Delete(id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(oid)
}

func (in MosqueUpdateInput) setDoc(now time.Time) bson.M {
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
	if in.Imam != nil {
		set["imam"] = *in.Imam
	}
	if in.Phone != nil {
		set["phone"] = *in.Phone
	}
	if in.PrayerTimes != nil {
		set["prayerTimes"] = in.PrayerTimes.toModel()
	}
	if in.Facilities != nil {
		set["facilities"] = *in.Facilities
	}
	if in.Images != nil {
		set["images"] = *in.Images
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}
	return set
}
