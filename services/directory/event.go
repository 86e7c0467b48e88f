package directory

import (
	"time"

	eventRepo "ainfakroun/database/repository/event"
	"ainfakroun/models"

	"go.mongodb.org/mongo-driver/bson"
)

// EventService exposes the event calendar operations.
type EventService interface {
	List(query EventListQuery) ([]models.Event, Pagination, error)
	Get(id string) (*models.Event, error)
	Create(input EventCreateInput) (*models.Event, error)
	Update(id string, input EventUpdateInput) (*models.Event, error)
	Delete(id string) error
}

// DefaultEventService is the production implementation.
type DefaultEventService struct {
	Repo eventRepo.EventRepository
}

// EventListQuery mirrors the public list query parameters.
type EventListQuery struct {
	Search   string
	Category string
	Upcoming bool
	Featured bool
	Page     int64
	Limit    int64
}

// EventCreateInput is the create payload.
type EventCreateInput struct {
	Title         string     `json:"title" binding:"required"`
	TitleAr       string     `json:"titleAr"`
	TitleFr       string     `json:"titleFr"`
	Description   string     `json:"description"`
	DescriptionAr string     `json:"descriptionAr"`
	DescriptionFr string     `json:"descriptionFr"`
	Category      string     `json:"category" binding:"omitempty,oneof=sports cultural religious educational community other"`
	StartDate     time.Time  `json:"startDate" binding:"required"`
	EndDate       *time.Time `json:"endDate"`
	Location      string     `json:"location" binding:"required"`
	LocationAr    string     `json:"locationAr"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	Organizer     string     `json:"organizer"`
	ContactPhone  string     `json:"contactPhone"`
	ContactEmail  string     `json:"contactEmail" binding:"omitempty,email"`
	Images        []string   `json:"images"`
	IsActive      *bool      `json:"isActive"`
	IsFeatured    *bool      `json:"isFeatured"`
}

// EventUpdateInput is the partial-update payload.
type EventUpdateInput struct {
	Title         *string    `json:"title"`
	TitleAr       *string    `json:"titleAr"`
	TitleFr       *string    `json:"titleFr"`
	Description   *string    `json:"description"`
	DescriptionAr *string    `json:"descriptionAr"`
	DescriptionFr *string    `json:"descriptionFr"`
	Category      *string    `json:"category" binding:"omitempty,oneof=sports cultural religious educational community other"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	Location      *string    `json:"location"`
	LocationAr    *string    `json:"locationAr"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	Organizer     *string    `json:"organizer"`
	ContactPhone  *string    `json:"contactPhone"`
	ContactEmail  *string    `json:"contactEmail" binding:"omitempty,email"`
	Images        *[]string  `json:"images"`
	IsActive      *bool      `json:"isActive"`
	IsFeatured    *bool      `json:"isFeatured"`
}

func (s *DefaultEventService) List(query EventListQuery) ([]models.Event, Pagination, error) {
	page, limit := normalizePaging(query.Page, query.Limit)
	criteria := eventRepo.ListCriteria{
		Search:   query.Search,
		Category: query.Category,
		Upcoming: query.Upcoming,
		Featured: query.Featured,
		Page:     page,
		Limit:    limit,
	}
	events, total, err := s.Repo.List(criteria)
	if err != nil {
		return nil, Pagination{}, err
	}
	return events, paginate(page, limit, total), nil
}

func (s *DefaultEventService) Get(id string) (*models.Event, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByID(oid)
}

func (s *DefaultEventService) Create(input EventCreateInput) (*models.Event, error) {
	now := time.Now()
	event := &models.Event{
		Title:         input.Title,
		TitleAr:       input.TitleAr,
		TitleFr:       input.TitleFr,
		Description:   input.Description,
		DescriptionAr: input.DescriptionAr,
		DescriptionFr: input.DescriptionFr,
		Category:      input.Category,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
		Location:      input.Location,
		LocationAr:    input.LocationAr,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		Organizer:     input.Organizer,
		ContactPhone:  input.ContactPhone,
		ContactEmail:  input.ContactEmail,
		Images:        input.Images,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if event.Category == "" {
		event.Category = models.EventCategoryOther
	}
	if input.IsActive != nil {
		event.IsActive = *input.IsActive
	}
	if input.IsFeatured != nil {
		event.IsFeatured = *input.IsFeatured
	}
	if event.Images == nil {
		event.Images = []string{}
	}
	if err := s.Repo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *DefaultEventService) Update(id string, input EventUpdateInput) (*models.Event, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.Repo.UpdateByID(oid, input.setDoc(time.Now()))
}

func (s *DefaultEventService) Delete(id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	return s.Repo.Delete(oid)
}

func (in EventUpdateInput) setDoc(now time.Time) bson.M {
	set := bson.M{"updatedAt": now}
	if in.Title != nil {
		set["title"] = *in.Title
	}
	if in.TitleAr != nil {
		set["titleAr"] = *in.TitleAr
	}
	if in.TitleFr != nil {
		set["titleFr"] = *in.TitleFr
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
	if in.StartDate != nil {
		set["startDate"] = *in.StartDate
	}
	if in.EndDate != nil {
		set["endDate"] = *in.EndDate
	}
	if in.Location != nil {
		set["location"] = *in.Location
	}
	if in.LocationAr != nil {
		set["locationAr"] = *in.LocationAr
	}
	if in.Latitude != nil {
		set["latitude"] = *in.Latitude
	}
	if in.Longitude != nil {
		set["longitude"] = *in.Longitude
	}
	if in.Organizer != nil {
		set["organizer"] = *in.Organizer
	}
	if in.ContactPhone != nil {
		set["contactPhone"] = *in.ContactPhone
	}
	if in.ContactEmail != nil {
		set["contactEmail"] = *in.ContactEmail
	}
	if in.Images != nil {
		set["images"] = *in.Images
	}
	if in.IsActive != nil {
		set["isActive"] = *in.IsActive
	}
	if in.IsFeatured != nil {
		set["isFeatured"] = *in.IsFeatured
	}
	return set
}
