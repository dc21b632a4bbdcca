package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gymoffice/internal/app"
	"gymoffice/internal/config"
	"gymoffice/internal/database"
	"gymoffice/internal/domain/account"
	"gymoffice/internal/domain/client"
	"gymoffice/internal/domain/employee"
	"gymoffice/internal/domain/equipment"
	"gymoffice/internal/domain/gym"
	"gymoffice/internal/domain/rate"
	"gymoffice/internal/domain/subscription"
	"gymoffice/internal/domain/visit"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := app.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Wipe in FK-safe order before reseeding.
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM visits")
	db.Exec("DELETE FROM subscriptions")
	db.Exec("DELETE FROM equipment")
	db.Exec("DELETE FROM employees")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM rates")
	db.Exec("DELETE FROM gyms")
	db.Exec("DELETE FROM accounts")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := account.Account{
		Email:        "admin@gymoffice.local",
		PasswordHash: string(adminHash),
		Role:         account.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("seed admin failed:", err)
	}

	gyms := []gym.Gym{
		{Name: "Downtown", Address: "1 Main St", Phone: "+1-202-555-0101", OpenTime: "07:00", CloseTime: "23:00"},
		{Name: "Riverside", Address: "42 River Rd", Phone: "+1-202-555-0102", OpenTime: "08:00", CloseTime: "22:00"},
	}
	for i := range gyms {
		if err := db.Create(&gyms[i]).Error; err != nil {
			log.Fatal("seed gyms failed:", err)
		}
	}

	rates := []rate.Rate{
		{Name: "Monthly", Price: 49.90, PricePeriod: "month", DurationDays: 30, Description: "Standard monthly plan"},
		{Name: "Annual", Price: 449.00, PricePeriod: "year", DurationDays: 365, Description: "12 months, two free"},
	}
	for i := range rates {
		if err := db.Create(&rates[i]).Error; err != nil {
			log.Fatal("seed rates failed:", err)
		}
	}

	birth := time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC)
	clients := []client.Client{
		{FirstName: "Anna", LastName: "Petrova", Phone: "+1-202-555-0110", Email: "anna@example.com", DateOfBirth: &birth, RegistrationDate: time.Now()},
		{FirstName: "Boris", LastName: "Ivanov", Phone: "+1-202-555-0111", Email: "boris@example.com", RegistrationDate: time.Now()},
	}
	for i := range clients {
		if err := db.Create(&clients[i]).Error; err != nil {
			log.Fatal("seed clients failed:", err)
		}
	}

	trainer := employee.Employee{
		FirstName: "Carla",
		LastName:  "Diaz",
		Phone:     "+1-202-555-0120",
		Email:     "carla@gymoffice.local",
		GymID:     &gyms[0].ID,
		HireDate:  time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Post:      "Trainer",
		Salary:    52000,
	}
	if err := db.Create(&trainer).Error; err != nil {
		log.Fatal("seed employees failed:", err)
	}

	buy := time.Date(2023, 9, 1, 0, 0, 0, 0, time.UTC)
	treadmill := equipment.Equipment{
		Name:    "Treadmill X200",
		BuyDate: &buy,
		Status:  equipment.StatusActive,
		GymID:   gyms[0].ID,
	}
	if err := db.Create(&treadmill).Error; err != nil {
		log.Fatal("seed equipment failed:", err)
	}

	sub := subscription.Subscription{
		ClientID:  clients[0].ID,
		RateID:    rates[0].ID,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 1, 0),
		Status:    subscription.StatusActive,
	}
	if err := db.Create(&sub).Error; err != nil {
		log.Fatal("seed subscriptions failed:", err)
	}

	checkout := time.Now().Add(-1 * time.Hour)
	visits := []visit.Visit{
		{ClientID: clients[0].ID, GymID: gyms[0].ID, CheckInTime: time.Now().Add(-3 * time.Hour), CheckOutTime: &checkout},
		{ClientID: clients[1].ID, GymID: gyms[1].ID, CheckInTime: time.Now().Add(-30 * time.Minute)},
	}
	for i := range visits {
		if err := db.Create(&visits[i]).Error; err != nil {
			log.Fatal("seed visits failed:", err)
		}
	}

	log.Println("Seed complete.")
}
