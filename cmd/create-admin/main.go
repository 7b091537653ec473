// Provision an admin account for the dashboard.
// cmd/create-admin/main.go
package main

import (
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"

	"grievance-api/config"
	"grievance-api/models"
	"grievance-api/utils"
)

func main() {
	name := flag.String("name", "", "admin display name")
	email := flag.String("email", "", "admin email (login)")
	password := flag.String("password", "", "initial password")
	flag.Parse()

	if *name == "" || *email == "" || *password == "" {
		log.Fatal("Usage: create-admin -name NAME -email EMAIL -password PASSWORD")
	}
	if !utils.ValidateEmail(*email) {
		log.Fatalf("Invalid email: %s", *email)
	}
	if ok, reason := utils.ValidatePassword(*password); !ok {
		log.Fatalf("Weak password: %s", reason)
	}

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	hashed, err := utils.HashPassword(*password)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	now := time.Now()
	user := models.User{
		Name:     *name,
		Email:    *email,
		Password: hashed,
		CreateAt: &now,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Printf("Admin user %s (%s) created with id %d\n", user.Name, user.Email, user.UserID)
}
