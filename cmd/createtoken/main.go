package main

import (
	"flag"
	"fmt"

	"linkstash/core"
	"linkstash/models"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

// Provisions a user (if needed) and prints a fresh access token for them. The
// token goes into the X-User-Token header.
func main() {
	email := flag.String("email", "", "user email (required)")
	fullName := flag.String("name", "", "user full name (used when creating the user)")
	flag.Parse()

	if *email == "" {
		flag.Usage()
		panic("email is required")
	}

	godotenv.Load()

	db, err := core.InitDB()
	if err != nil {
		panic(err)
	}

	err = db.AutoMigrate(&models.User{}, &models.AccessToken{})
	if err != nil {
		panic(err)
	}

	user, err := models.GetUserByEmail(db, *email)
	if err != nil {
		panic(err)
	}

	if user == nil {
		user, err = models.CreateUser(db, *email, *fullName)
		if err != nil {
			panic(err)
		}
		fmt.Printf("created user %v (%v)\n", user.ID, *email)
	}

	accessToken, err := models.CreateAccessToken(db, user.ID, uuid.NewString())
	if err != nil {
		panic(err)
	}

	fmt.Printf("token: %v\n", accessToken.Token)
}
