// Command create-user bootstraps an account directly in the database, typically
// the first admin before anyone can log in.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/config"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/db"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/logging"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/migrations"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/models"
	"github.com/appdotbuilder/panti-asuhan-manajemen-sub000/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	username := flag.String("username", "", "login name")
	email := flag.String("email", "", "email address")
	password := flag.String("password", "", "initial password (min 6 characters)")
	fullName := flag.String("full-name", "", "display name")
	role := flag.String("role", string(models.RoleAdmin), "admin, pengurus or donatur")
	flag.Parse()

	if strings.TrimSpace(*username) == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "usage: create-user -username <name> -email <email> -password <password> [-full-name <name>] [-role admin]")
		os.Exit(2)
	}
	if *fullName == "" {
		*fullName = *username
	}

	log := logging.New(logging.Config{Level: logging.ParseLevel(cfg.LogLevel), Component: logging.ComponentStorage})
	database, err := db.Open(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		log.Error("db open failed", logging.FieldError, err.Error())
		os.Exit(1)
	}
	defer database.Close()
	if err := migrations.Apply(database, cfg.DBDriver); err != nil {
		log.Error("migrations failed", logging.FieldError, err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Only hashing is needed here, so the token settings stay empty.
	user, err := services.CreateUser(ctx, database, services.TokenService{}, models.CreateUserInput{
		Username: *username,
		Email:    *email,
		Password: *password,
		FullName: *fullName,
		Role:     models.Role(*role),
	})
	var cerr *services.ConstraintError
	switch {
	case errors.As(err, &cerr):
		fmt.Printf("user %s already exists\n", *username)
		return
	case err != nil:
		log.Error("create user failed", logging.FieldError, err.Error())
		os.Exit(1)
	}
	fmt.Printf("created %s user %s id=%s\n", user.Role, user.Username, user.ID)
}
