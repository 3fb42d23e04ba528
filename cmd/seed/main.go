package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"scraply/internal/database"
	"scraply/internal/domain"
	"scraply/internal/repository"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "scraply.db"
	}

	db, err := database.Connect(dsn, zerolog.New(os.Stderr).With().Timestamp().Logger())
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("Migration failed:", err)
	}

	// Cleanup old data (children before parents)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM blog_comments")
	db.Exec("DELETE FROM blog_posts")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM pledges")
	db.Exec("DELETE FROM popups")
	db.Exec("DELETE FROM facilities")
	db.Exec("DELETE FROM users")

	userRepo := repository.NewUserRepository(db)
	facilityRepo := repository.NewFacilityRepository(db)
	blogRepo := repository.NewBlogRepository(db)
	popupRepo := repository.NewPopupRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	pledgeRepo := repository.NewPledgeRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := &domain.User{
		Username:     "admin",
		FullName:     "Scraply Admin",
		Email:        "admin@scraply.io",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatal("Admin create failed:", err)
	}
	log.Println("Admin created: admin@scraply.io / admin123")

	users := make([]*domain.User, 0, 3)
	names := []string{"Aarav Sharma", "Priya Patel", "Rohan Mehta"}
	for i, name := range names {
		hash, _ := bcrypt.GenerateFromPassword([]byte("user123"), bcrypt.DefaultCost)
		u := &domain.User{
			Username:     fmt.Sprintf("user%d", i+1),
			FullName:     name,
			Email:        fmt.Sprintf("user%d@example.com", i+1),
			PhoneNumber:  fmt.Sprintf("+91 98765 432%02d", i+10),
			PasswordHash: string(hash),
			Role:         domain.RoleUser,
		}
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatal("User create failed:", err)
		}
		users = append(users, u)
	}

	// ================== FACILITIES ==================
	log.Println("Creating facilities...")
	facilities := []*domain.Facility{
		{Name: "GreenCycle Hub", Capacity: "500 kg/day", Lon: 72.8777, Lat: 19.0760, Contact: "+91 22 4000 1001", Time: "09:00-18:00", Verified: true},
		{Name: "EcoDrop Center", Capacity: "250 kg/day", Lon: 77.1025, Lat: 28.7041, Contact: "+91 11 4000 1002", Time: "10:00-19:00", Verified: true},
		{Name: "ReTech Point", Capacity: "100 kg/day", Lon: 77.5946, Lat: 12.9716, Contact: "+91 80 4000 1003", Time: "09:00-17:00", Verified: false},
	}
	for _, f := range facilities {
		if err := facilityRepo.Create(ctx, f); err != nil {
			log.Fatal("Facility create failed:", err)
		}
	}

	// ================== BLOG ==================
	log.Println("Creating blog posts...")
	posts := []*domain.BlogPost{
		{
			Title:    "Why Your Old Phone Matters",
			Content:  "Every discarded phone contains recoverable gold, copper and rare earths. Here is what happens when you recycle it properly.",
			Author:   "Scraply Team",
			Featured: true,
		},
		{
			Title:   "E-Waste 101: What Counts",
			Content: "Laptops, chargers, batteries, cables. A quick guide to what belongs in the e-waste bin and what does not.",
			Author:  "Scraply Team",
		},
	}
	for _, p := range posts {
		if err := blogRepo.Create(ctx, p); err != nil {
			log.Fatal("Blog create failed:", err)
		}
	}
	_ = blogRepo.AddComment(ctx, &domain.BlogComment{
		PostID:   posts[0].ID,
		Username: users[0].Username,
		Text:     "Recycled my old phone last week, the pickup was painless.",
	})

	// ================== POPUPS ==================
	log.Println("Creating popups...")
	popups := []*domain.Popup{
		{
			Title:       "Recycle More, Waste Less",
			Content:     "Schedule a free e-waste pickup today.",
			IsActive:    true,
			Frequency:   24,
			Priority:    5,
			TargetPages: []string{"all"},
		},
		{
			Title:         "New Facility Near You",
			Content:       "GreenCycle Hub is now accepting drop-offs.",
			DetailContent: "GreenCycle Hub handles up to 500 kg of electronics per day and issues recycling receipts on the spot.",
			IsActive:      true,
			Frequency:     48,
			Priority:      8,
			TargetPages:   []string{"home"},
		},
	}
	for _, p := range popups {
		if err := popupRepo.Create(ctx, p); err != nil {
			log.Fatal("Popup create failed:", err)
		}
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")
	pickup := time.Now().AddDate(0, 0, 3).Truncate(24 * time.Hour)
	bookings := []*domain.Booking{
		{
			UserID:           users[0].ID,
			UserEmail:        users[0].Email,
			RecycleItem:      "Laptop",
			RecycleItemPrice: 3500,
			Facility:         "GreenCycle Hub",
			PickupDate:       pickup,
			PickupTime:       "10:00",
			FullName:         users[0].FullName,
			Address:          "14 Hill Road, Bandra West",
			Phone:            users[0].PhoneNumber,
			Status:           domain.BookingPending,
		},
		{
			UserID:           users[1].ID,
			UserEmail:        users[1].Email,
			RecycleItem:      "Smartphone",
			RecycleItemPrice: 1200,
			Facility:         "EcoDrop Center",
			PickupDate:       pickup.AddDate(0, 0, 2),
			PickupTime:       "14:00",
			FullName:         users[1].FullName,
			Address:          "22 MG Road, Connaught Place",
			Phone:            users[1].PhoneNumber,
			Status:           domain.BookingPending,
		},
	}
	for _, b := range bookings {
		if err := bookingRepo.Create(ctx, b); err != nil {
			log.Fatal("Booking create failed:", err)
		}
	}
	// Move the first booking one step so the dashboard shows a mix
	if err := bookingRepo.UpdateStatus(ctx, bookings[0].ID, domain.BookingInProgress, admin.Email, time.Now()); err != nil {
		log.Fatal("Booking status update failed:", err)
	}

	// ================== PLEDGES ==================
	log.Println("Creating pledges...")
	if err := pledgeRepo.Create(ctx, &domain.Pledge{
		UserID:            users[0].ID,
		Name:              users[0].FullName,
		ItemCount:         5,
		CertificateNumber: "seed-0001",
	}); err != nil {
		log.Fatal("Pledge create failed:", err)
	}

	log.Println("Seed completed!")
	log.Println("Admin: admin@scraply.io / admin123")
	log.Println("Users: user1@example.com ... user3@example.com / user123")
}
