package main

import (
	"flag"
	"lms/config"
	"lms/database"
	"lms/models"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// Bootstraps the first admin account. Admin creation over the API needs an
// existing admin session, so a fresh deployment runs this once.
func main() {
	name := flag.String("name", "Administrator", "admin display name")
	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password (required)")
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("Usage: seedAdmin -email admin@example.com -password <password> [-name <name>]")
	}
	if len(*password) < 8 {
		log.Fatal("Password must be at least 8 characters long")
	}

	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	var existing models.User
	if err := db.Where("email = ?", *email).First(&existing).Error; err == nil {
		if existing.Role == models.RoleAdmin {
			log.Printf("Admin %s already exists, nothing to do", *email)
			return
		}
		existing.Role = models.RoleAdmin
		if err := db.Save(&existing).Error; err != nil {
			log.Fatalf("Failed to promote user %s: %v", *email, err)
		}
		log.Printf("Promoted existing user %s to admin", *email)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Name:     *name,
		Email:    *email,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin %s created with id %d", admin.Email, admin.ID)
}
