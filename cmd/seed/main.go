package main

import (
	"context"
	"log"
	"os"
	"time"

	"flyease/internal/database"
	"flyease/internal/domain"
	"flyease/internal/repository"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "flyease.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM reviews")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM travel_packages")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	users := repository.NewUserRepository(db)
	ctx := context.Background()

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Email:          "admin@flyease.local",
		PasswordHash:   string(adminHash),
		PasswordFormat: domain.PasswordBcrypt,
		Name:           "Admin",
		Role:           domain.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		log.Fatal("seed admin:", err)
	}
	log.Println("Admin created: admin@flyease.local / admin123")

	staffHash, _ := bcrypt.GenerateFromPassword([]byte("staff123"), bcrypt.DefaultCost)
	staff := &domain.User{
		Email:          "staff@flyease.local",
		PasswordHash:   string(staffHash),
		PasswordFormat: domain.PasswordBcrypt,
		Name:           "Front Desk",
		Role:           domain.RoleStaff,
	}
	if err := users.Create(ctx, staff); err != nil {
		log.Fatal("seed staff:", err)
	}

	customerHash, _ := bcrypt.GenerateFromPassword([]byte("customer123"), bcrypt.DefaultCost)
	customer := &domain.User{
		Email:          "ada@example.com",
		PasswordHash:   string(customerHash),
		PasswordFormat: domain.PasswordBcrypt,
		Name:           "Ada Traveler",
		Phone:          "+351 912 345 678",
		Role:           domain.RoleCustomer,
	}
	if err := users.Create(ctx, customer); err != nil {
		log.Fatal("seed customer:", err)
	}

	// A pre-migration account: plain password, no format column. Lets local
	// testing exercise the legacy verification path.
	legacy := &domain.User{
		Email:          "legacy@example.com",
		PasswordHash:   "legacy-password",
		PasswordFormat: domain.PasswordPlainLegacy,
		Name:           "Legacy Customer",
		Role:           domain.RoleCustomer,
	}
	if err := users.Create(ctx, legacy); err != nil {
		log.Fatal("seed legacy customer:", err)
	}

	// ================== PACKAGES ==================
	log.Println("Creating travel packages...")

	packages := repository.NewPackageRepository(db)
	now := time.Now()

	demo := []domain.TravelPackage{
		{
			Name:           "Lisbon Getaway",
			Destination:    "Lisbon, Portugal",
			Description:    "Five days of tiles, trams and pastel de nata.",
			UnitPrice:      decimal.RequireFromString("499.00"),
			AvailableSlots: 20,
			StartDate:      now.AddDate(0, 2, 0),
			EndDate:        now.AddDate(0, 2, 5),
		},
		{
			Name:           "Kyoto in Autumn",
			Destination:    "Kyoto, Japan",
			Description:    "Temples and maple leaves at their peak.",
			UnitPrice:      decimal.RequireFromString("1299.00"),
			AvailableSlots: 12,
			StartDate:      now.AddDate(0, 3, 0),
			EndDate:        now.AddDate(0, 3, 9),
		},
		{
			Name:           "Patagonia Trek",
			Destination:    "Torres del Paine, Chile",
			Description:    "Guided W-circuit with refugio stays.",
			UnitPrice:      decimal.RequireFromString("1899.50"),
			AvailableSlots: 8,
			StartDate:      now.AddDate(0, 4, 0),
			EndDate:        now.AddDate(0, 4, 8),
		},
		{
			Name:           "Weekend in Rome",
			Destination:    "Rome, Italy",
			Description:    "A short city break, flights not included.",
			UnitPrice:      decimal.RequireFromString("249.90"),
			AvailableSlots: 30,
			StartDate:      now.AddDate(0, 1, 0),
			EndDate:        now.AddDate(0, 1, 3),
		},
	}

	for i := range demo {
		if err := packages.Create(ctx, &demo[i]); err != nil {
			log.Fatal("seed package:", err)
		}
		log.Printf("Package created: %s (%s)", demo[i].Name, demo[i].UnitPrice.StringFixed(2))
	}

	log.Println("Seed complete.")
}
