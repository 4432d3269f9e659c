// Provisioning script to create a portal login with hashed password
// cmd/seed-user/main.go
package main

import (
	"flag"
	"internal-portal-api/config"
	"internal-portal-api/models"
	"internal-portal-api/utils"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func main() {
	username := flag.String("username", "", "login username")
	displayName := flag.String("display-name", "", "display name stamped on writes")
	email := flag.String("email", "", "email address")
	password := flag.String("password", "", "initial password")
	roles := flag.String("roles", "Staff", "comma-separated role names")
	flag.Parse()

	if *username == "" || *email == "" || *password == "" {
		log.Fatal("username, email and password are required")
	}
	if !utils.ValidateEmail(*email) {
		log.Fatalf("Invalid email address: %s", *email)
	}
	if ok, msg := utils.ValidatePassword(*password); !ok {
		log.Fatal(msg)
	}
	if *displayName == "" {
		*displayName = *username
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
		Username:    *username,
		DisplayName: *displayName,
		Email:       *email,
		Password:    hashed,
		CreateAt:    &now,
	}

	for _, name := range strings.Split(*roles, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		var role models.Role
		if err := config.DB.Where("role_name = ?", name).First(&role).Error; err != nil {
			role = models.Role{RoleName: name, CreateAt: &now}
			if err := config.DB.Create(&role).Error; err != nil {
				log.Fatalf("Failed to create role %s: %v", name, err)
			}
			log.Printf("Created role %s\n", name)
		}
		user.Roles = append(user.Roles, role)
	}

	if err := config.DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to create user:", err)
	}

	log.Printf("Created user %s with roles: %s\n", user.Username, *roles)
}
