// Command seed wipes the portal collections and loads a starter dataset for
// Ain Fakroun, plus an initial admin account.
//
// Run with: go run ./cmd/seed
package main

import (
	"context"
	"os"
	"time"

	"ainfakroun/config"
	"ainfakroun/database"
	businessRepo "ainfakroun/database/repository/business"
	emergencyRepo "ainfakroun/database/repository/emergency"
	eventRepo "ainfakroun/database/repository/event"
	medicalRepo "ainfakroun/database/repository/medical"
	mosqueRepo "ainfakroun/database/repository/mosque"
	userRepoPkg "ainfakroun/database/repository/user"
	"ainfakroun/models"
	"ainfakroun/services/auth"
	"ainfakroun/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func f(v float64) *float64 { return &v }

func t(v string) time.Time {
	parsed, err := time.Parse("2006-01-02T15:04:05", v)
	if err != nil {
		panic(err)
	}
	return parsed
}

func tp(v string) *time.Time {
	parsed := t(v)
	return &parsed
}

func businesses() []models.Business {
	return []models.Business{
		{
			Name:        "Supermarket El Baraka",
			NameAr:      "سوبر ماركت البركة",
			Description: "Large supermarket with groceries, household items, and fresh produce",
			Category:    models.BusinessCategoryShop,
			Address:     "Centre Ville, Ain Fakroun",
			AddressAr:   "وسط المدينة، عين فكرون",
			Latitude:    f(35.967),
			Longitude:   f(6.867),
			Phones:      []string{"+213 32 XX XX XX"},
			Hours:       "08:00 - 21:00",
		},
		{
			Name:        "Restaurant El Waha",
			NameAr:      "مطعم الواحة",
			Description: "Traditional Algerian cuisine and grilled specialties",
			Category:    models.BusinessCategoryRestaurant,
			Address:     "Rue Principale, Ain Fakroun",
			AddressAr:   "الشارع الرئيسي، عين فكرون",
			Latitude:    f(35.9665),
			Longitude:   f(6.866),
			Phones:      []string{"+213 32 XX XX XX"},
			Hours:       "11:00 - 23:00",
		},
		{
			Name:        "Pharmacy El Amel",
			NameAr:      "صيدلية الأمل",
			Description: "Full-service pharmacy with prescription and over-the-counter medications",
			Category:    models.BusinessCategoryPharmacy,
			Address:     "Avenue de la République, Ain Fakroun",
			AddressAr:   "شارع الجمهورية، عين فكرون",
			Latitude:    f(35.9675),
			Longitude:   f(6.868),
			Phones:      []string{"+213 32 XX XX XX"},
			Hours:       "08:00 - 20:00",
		},
		{
			Name:        "Café El Nour",
			NameAr:      "مقهى النور",
			Description: "Traditional coffee house with tea and light refreshments",
			Category:    models.BusinessCategoryRestaurant,
			Address:     "Place du Marché, Ain Fakroun",
			AddressAr:   "ساحة السوق، عين فكرون",
			Latitude:    f(35.9668),
			Longitude:   f(6.8665),
			Phones:      []string{"+213 32 XX XX XX"},
			Hours:       "06:00 - 22:00",
		},
		{
			Name:        "Banque Nationale d'Algérie",
			NameAr:      "البنك الوطني الجزائري",
			Description: "Banking services, ATM, and currency exchange",
			Category:    models.BusinessCategoryBank,
			Address:     "Centre Ville, Ain Fakroun",
			Latitude:    f(35.9672),
			Longitude:   f(6.8675),
			Phones:      []string{"+213 32 XX XX XX"},
			Hours:       "08:30 - 15:30 (Sun-Thu)",
		},
		{
			Name:        "Boutique Mode Elegance",
			NameAr:      "بوتيك موضة الأناقة",
			Description: "Men and women clothing store",
			Category:    models.BusinessCategoryShop,
			Address:     "Rue du Commerce, Ain Fakroun",
			Latitude:    f(35.966),
			Longitude:   f(6.8655),
			Phones:      []string{"+213 32 XX XX XX"},
			Hours:       "09:00 - 19:00",
		},
	}
}

func events() []models.Event {
	return []models.Event{
		{
			Title:       "Annual Cultural Festival",
			TitleAr:     "المهرجان الثقافي السنوي",
			Description: "Celebration of local culture with music, poetry, and traditional crafts",
			Category:    models.EventCategoryCultural,
			StartDate:   t("2026-03-15T10:00:00"),
			EndDate:     tp("2026-03-17T22:00:00"),
			Location:    "City Center, Ain Fakroun",
			LocationAr:  "وسط المدينة، عين فكرون",
			Latitude:    f(35.9667),
			Longitude:   f(6.8667),
			Organizer:   "Municipality of Ain Fakroun",
			IsFeatured:  true,
		},
		{
			Title:       "Youth Football Tournament",
			TitleAr:     "دوري كرة القدم للشباب",
			Description: "Inter-neighborhood football competition for youth ages 15-20",
			Category:    models.EventCategorySports,
			StartDate:   t("2026-02-01T14:00:00"),
			EndDate:     tp("2026-02-01T18:00:00"),
			Location:    "Municipal Stadium, Ain Fakroun",
			Latitude:    f(35.97),
			Longitude:   f(6.865),
			Organizer:   "Sports Association",
		},
		{
			Title:       "Ramadan Nights",
			TitleAr:     "ليالي رمضان",
			Description: "Evening gatherings during Ramadan with religious talks and community iftar",
			Category:    models.EventCategoryReligious,
			StartDate:   t("2026-03-01T19:00:00"),
			Location:    "Grand Mosque, Ain Fakroun",
			Latitude:    f(35.9667),
			Longitude:   f(6.8667),
			Organizer:   "Grand Mosque Committee",
			IsFeatured:  true,
		},
		{
			Title:       "Local Market Day",
			TitleAr:     "يوم السوق الأسبوعي",
			Description: "Weekly market featuring local produce, crafts, and goods",
			Category:    models.EventCategoryCommunity,
			StartDate:   t("2026-01-05T07:00:00"),
			EndDate:     tp("2026-01-05T14:00:00"),
			Location:    "Market Square, Ain Fakroun",
			Latitude:    f(35.966),
			Longitude:   f(6.866),
			Organizer:   "Merchants Association",
		},
	}
}

func mosques() []models.Mosque {
	return []models.Mosque{
		{
			Name:        "Grand Mosque of Ain Fakroun",
			NameAr:      "المسجد الكبير عين فكرون",
			Description: "Main mosque of the city, hosts Friday prayers and religious events",
			Address:     "Centre Ville, Ain Fakroun",
			AddressAr:   "وسط المدينة، عين فكرون",
			Latitude:    f(35.9667),
			Longitude:   f(6.8667),
			PrayerTimes: &models.PrayerTimes{
				Fajr: "05:30", Dhuhr: "12:45", Asr: "15:30",
				Maghrib: "18:15", Isha: "19:45", Jumua: "12:30",
			},
			Facilities: []string{"Ablution area", "Women section", "Parking"},
		},
		{
			Name:        "Mosque El Taqwa",
			NameAr:      "مسجد التقوى",
			Description: "Neighborhood mosque serving the eastern district",
			Address:     "Quartier Est, Ain Fakroun",
			AddressAr:   "الحي الشرقي، عين فكرون",
			Latitude:    f(35.968),
			Longitude:   f(6.87),
			PrayerTimes: &models.PrayerTimes{
				Fajr: "05:30", Dhuhr: "12:45", Asr: "15:30",
				Maghrib: "18:15", Isha: "19:45",
			},
			Facilities: []string{"Ablution area"},
		},
		{
			Name:        "Mosque El Rahma",
			NameAr:      "مسجد الرحمة",
			Description: "Mosque with Quran school for children",
			Address:     "Quartier Ouest, Ain Fakroun",
			AddressAr:   "الحي الغربي، عين فكرون",
			Latitude:    f(35.9655),
			Longitude:   f(6.864),
			PrayerTimes: &models.PrayerTimes{
				Fajr: "05:30", Dhuhr: "12:45", Asr: "15:30",
				Maghrib: "18:15", Isha: "19:45",
			},
			Facilities: []string{"Ablution area", "Quran school", "Library"},
		},
	}
}

func medicalFacilities() []models.Medical {
	return []models.Medical{
		{
			Name:           "Hospital of Ain Fakroun",
			NameAr:         "مستشفى عين فكرون",
			Type:           models.MedicalTypeHospital,
			Description:    "Public hospital with emergency services",
			Address:        "Route de Constantine, Ain Fakroun",
			AddressAr:      "طريق قسنطينة، عين فكرون",
			Latitude:       f(35.969),
			Longitude:      f(6.872),
			Phones:         []string{"+213 32 XX XX XX"},
			EmergencyPhone: "+213 32 XX XX XX",
			Hours:          "24/7",
			IsEmergency24h: true,
		},
		{
			Name:        "Polyclinic Centre",
			NameAr:      "العيادة المتعددة الخدمات",
			Type:        models.MedicalTypeClinic,
			Description: "General medicine and specialist consultations",
			Address:     "Centre Ville, Ain Fakroun",
			Latitude:    f(35.9665),
			Longitude:   f(6.866),
			Phones:      []string{"+213 32 XX XX XX"},
			Hours:       "08:00 - 16:00",
		},
		{
			Name:           "Pharmacy de Garde El Chifa",
			NameAr:         "صيدلية الشفاء",
			Type:           models.MedicalTypePharmacy,
			Description:    "Night pharmacy for emergency medications",
			Address:        "Avenue Principale, Ain Fakroun",
			Latitude:       f(35.967),
			Longitude:      f(6.8665),
			Phones:         []string{"+213 32 XX XX XX"},
			Hours:          "20:00 - 08:00",
			IsEmergency24h: true,
		},
		{
			Name:      "Dr. Ahmed Dental Clinic",
			NameAr:    "عيادة الدكتور أحمد لطب الأسنان",
			Type:      models.MedicalTypeDentist,
			Specialty: "General Dentistry",
			Address:   "Rue de la Santé, Ain Fakroun",
			Latitude:  f(35.9662),
			Longitude: f(6.8658),
			Phones:    []string{"+213 32 XX XX XX"},
			Hours:     "09:00 - 17:00",
		},
		{
			Name:        "Laboratory El Hayat",
			NameAr:      "مختبر الحياة للتحاليل",
			Type:        models.MedicalTypeLaboratory,
			Description: "Medical analysis and blood tests",
			Address:     "Centre Ville, Ain Fakroun",
			Latitude:    f(35.9668),
			Longitude:   f(6.867),
			Phones:      []string{"+213 32 XX XX XX"},
			Hours:       "07:00 - 15:00",
		},
	}
}

func emergencyContacts() []models.EmergencyContact {
	return []models.EmergencyContact{
		{
			Name:           "Police Station Ain Fakroun",
			NameAr:         "مركز الشرطة عين فكرون",
			Type:           models.EmergencyTypePolice,
			Phone:          "+213 32 XX XX XX",
			AlternatePhone: "17",
			Address:        "Centre Ville, Ain Fakroun",
			IsAvailable24h: true,
			Priority:       1,
		},
		{
			Name:           "Civil Protection (Fire/Rescue)",
			NameAr:         "الحماية المدنية",
			Type:           models.EmergencyTypeFire,
			Phone:          "+213 32 XX XX XX",
			AlternatePhone: "14",
			Address:        "Route Nationale, Ain Fakroun",
			IsAvailable24h: true,
			Priority:       2,
		},
		{
			Name:           "Hospital Emergency",
			NameAr:         "طوارئ المستشفى",
			Type:           models.EmergencyTypeHospital,
			Phone:          "+213 32 XX XX XX",
			Address:        "Hospital of Ain Fakroun",
			IsAvailable24h: true,
			Priority:       3,
		},
		{
			Name:     "Municipality (APC)",
			NameAr:   "البلدية",
			Type:     models.EmergencyTypeMunicipality,
			Phone:    "+213 32 XX XX XX",
			Address:  "Mairie, Centre Ville",
			Priority: 5,
		},
		{
			Name:           "Sonelgaz (Electricity)",
			NameAr:         "سونلغاز",
			Type:           models.EmergencyTypeUtility,
			Phone:          "+213 32 XX XX XX",
			Description:    "Report power outages and electrical emergencies",
			IsAvailable24h: true,
			Priority:       6,
		},
		{
			Name:        "Algérie Télécom",
			NameAr:      "اتصالات الجزائر",
			Type:        models.EmergencyTypeUtility,
			Phone:       "100",
			Description: "Phone and internet service issues",
			Priority:    7,
		},
	}
}

func main() {
	config.LoadConfig()
	logger := utils.GetLogger().Sugar()

	database.InitDB()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	logger.Info("seed: clearing existing data...")
	for _, name := range []string{"businesses", "events", "mosques", "medicals", "emergencycontacts"} {
		if _, err := database.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			logger.Fatalf("seed: failed to clear %s: %v", name, err)
		}
	}

	busRepo := businessRepo.NewMongoBusinessRepo()
	evtRepo := eventRepo.NewMongoEventRepo()
	mosRepo := mosqueRepo.NewMongoMosqueRepo()
	medRepo := medicalRepo.NewMongoMedicalRepo()
	emgRepo := emergencyRepo.NewMongoEmergencyRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	for _, r := range []interface{ EnsureIndexes() error }{busRepo, evtRepo, mosRepo, medRepo, emgRepo, userRepo} {
		if err := r.EnsureIndexes(); err != nil {
			logger.Fatalf("seed: failed to ensure indexes: %v", err)
		}
	}

	now := time.Now()

	seedBusinesses := businesses()
	seedEvents := events()
	seedMosques := mosques()
	seedMedical := medicalFacilities()
	seedEmergency := emergencyContacts()

	for i := range seedBusinesses {
		b := seedBusinesses[i]
		b.IsActive = true
		b.CreatedAt, b.UpdatedAt = now, now
		if b.Images == nil {
			b.Images = []string{}
		}
		if err := busRepo.Create(&b); err != nil {
			logger.Fatalf("seed: failed to insert business %q: %v", b.Name, err)
		}
	}
	for i := range seedEvents {
		e := seedEvents[i]
		e.IsActive = true
		e.CreatedAt, e.UpdatedAt = now, now
		if e.Images == nil {
			e.Images = []string{}
		}
		if err := evtRepo.Create(&e); err != nil {
			logger.Fatalf("seed: failed to insert event %q: %v", e.Title, err)
		}
	}
	for i := range seedMosques {
		m := seedMosques[i]
		m.IsActive = true
		m.CreatedAt, m.UpdatedAt = now, now
		if m.Images == nil {
			m.Images = []string{}
		}
		if err := mosRepo.Create(&m); err != nil {
			logger.Fatalf("seed: failed to insert mosque %q: %v", m.Name, err)
		}
	}
	for i := range seedMedical {
		m := seedMedical[i]
		m.IsActive = true
		m.CreatedAt, m.UpdatedAt = now, now
		if m.Images == nil {
			m.Images = []string{}
		}
		if err := medRepo.Create(&m); err != nil {
			logger.Fatalf("seed: failed to insert medical facility %q: %v", m.Name, err)
		}
	}
	for i := range seedEmergency {
		e := seedEmergency[i]
		e.IsActive = true
		e.CreatedAt, e.UpdatedAt = now, now
		if err := emgRepo.Create(&e); err != nil {
			logger.Fatalf("seed: failed to insert emergency contact %q: %v", e.Name, err)
		}
	}

	seedAdmin(userRepo, logger)

	logger.Info("seed: done")
	logger.Infof("seed: %d businesses", len(seedBusinesses))
	logger.Infof("seed: %d events", len(seedEvents))
	logger.Infof("seed: %d mosques", len(seedMosques))
	logger.Infof("seed: %d medical facilities", len(seedMedical))
	logger.Infof("seed: %d emergency contacts", len(seedEmergency))
}

// seedAdmin creates the initial admin account unless one already exists.
// Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD.
func seedAdmin(repo userRepoPkg.UserRepository, logger *zap.SugaredLogger) {
	email := auth.NormalizeEmail(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logger.Info("seed: ADMIN_EMAIL / ADMIN_PASSWORD not set, skipping admin account")
		return
	}

	if existing, err := repo.GetByEmail(email); err == nil && existing != nil {
		logger.Infof("seed: admin account %s already exists", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Fatalf("seed: failed to hash admin password: %v", err)
	}

	now := time.Now()
	admin := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         models.RoleAdmin,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repo.Create(admin); err != nil {
		logger.Fatalf("seed: failed to create admin account: %v", err)
	}
	logger.Infof("seed: created admin account %s", email)
}
