package main

import (
	"context"
	"log"
	"time"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration:", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM ratings")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	hotels := repository.NewHotelRepository(db)
	rooms := repository.NewRoomRepository(db)
	bookings := repository.NewBookingRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	admin := seedUser(ctx, users, "admin", "admin@hotelbooking.local", "admin123", true)
	log.Println("Admin created: admin / admin123")

	owner := seedUser(ctx, users, "hotelier", "hotelier@hotelbooking.local", "owner123", false)
	client := seedUser(ctx, users, "guest", "guest@hotelbooking.local", "guest123", false)

	// ================== HOTELS ==================
	log.Println("Creating hotels...")

	hotelOne := &domain.Hotel{
		Name:        "hotel one",
		City:        "almaty",
		Address:     "12 Abay Avenue",
		Email:       "one@hotelbooking.local",
		PhoneNumber: "+7 727 111 2233",
		Description: "City-center hotel near the park",
		Available:   true,
		OwnerID:     owner.ID,
	}
	mustCreate(hotels.Create(ctx, hotelOne), "hotel one")

	hotelTwo := &domain.Hotel{
		Name:        "hotel two",
		City:        "astana",
		Address:     "3 Mangilik El",
		Email:       "two@hotelbooking.local",
		PhoneNumber: "+7 717 444 5566",
		Description: "Business hotel by the river",
		Available:   true,
		OwnerID:     owner.ID,
	}
	mustCreate(hotels.Create(ctx, hotelTwo), "hotel two")

	// ================== ROOMS ==================
	log.Println("Creating room tiers...")

	tiers := []domain.Room{
		{HotelID: hotelOne.ID, GuestsCount: 1, RoomsAmount: 5, Active: true},
		{HotelID: hotelOne.ID, GuestsCount: 2, RoomsAmount: 10, Active: true},
		{HotelID: hotelOne.ID, GuestsCount: 3, RoomsAmount: 5, Active: true},
		{HotelID: hotelOne.ID, GuestsCount: 4, RoomsAmount: 5, Active: false},
		{HotelID: hotelTwo.ID, GuestsCount: 2, RoomsAmount: 8, Active: true},
		{HotelID: hotelTwo.ID, GuestsCount: 4, RoomsAmount: 4, Active: true},
	}
	var doubleRoom domain.Room
	for i := range tiers {
		mustCreate(rooms.Create(ctx, &tiers[i]), "room tier")
		if tiers[i].HotelID == hotelOne.ID && tiers[i].GuestsCount == 2 {
			doubleRoom = tiers[i]
		}
	}

	// ================== BOOKINGS ==================
	log.Println("Creating demo bookings...")

	checkin := midnight(time.Now().AddDate(0, 0, 7))
	demo := []domain.Booking{
		{
			HotelID:        hotelOne.ID,
			RoomID:         doubleRoom.ID,
			ClientID:       client.ID,
			LastModifierID: client.ID,
			Checkin:        checkin,
			Checkout:       checkin.AddDate(0, 0, 4),
			RoomsAmount:    2,
			GuestsCount:    2,
			Status:         domain.BookingDraft,
			AdditionalInfo: "late arrival",
		},
		{
			HotelID:        hotelOne.ID,
			RoomID:         doubleRoom.ID,
			ClientID:       client.ID,
			LastModifierID: admin.ID,
			Checkin:        checkin.AddDate(0, 0, 10),
			Checkout:       checkin.AddDate(0, 0, 13),
			RoomsAmount:    1,
			GuestsCount:    2,
			Status:         domain.BookingConfirmed,
		},
	}
	for i := range demo {
		adm, err := bookings.CreateAdmitted(ctx, &demo[i])
		if err != nil {
			log.Fatal("demo booking failed:", err)
		}
		if !adm.Admitted {
			log.Fatal("demo booking rejected: no capacity")
		}
	}

	log.Println("Seed complete.")
}

func seedUser(ctx context.Context, users *repository.UserRepository, username, email, password string, isAdmin bool) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt failed:", err)
	}
	u := &domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsActive:     true,
		IsAdmin:      isAdmin,
	}
	mustCreate(users.Create(ctx, u), username)
	return u
}

func mustCreate(err error, what string) {
	if err != nil {
		log.Fatalf("seeding %s failed: %v", what, err)
	}
}

func midnight(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
