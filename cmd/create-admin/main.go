package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"climate-registry/internal/model"
	"climate-registry/internal/pkg/config"
	"climate-registry/internal/pkg/crypto"
	"climate-registry/internal/pkg/database"
	"climate-registry/internal/repository"
	pkgErrors "climate-registry/pkg/responses"
)

var (
	configFile = flag.String("config", "configs/config.yaml", "config file path")
	username   = flag.String("username", "admin", "administrator username")
	password   = flag.String("password", "", "administrator password (required)")
	email      = flag.String("email", "", "administrator email")
)

func main() {
	flag.Parse()

	if *password == "" {
		fmt.Println("usage: create-admin -username=admin -password=secret [-email=admin@example.com]")
		os.Exit(1)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Printf("load config failed: %v\n", err)
		os.Exit(1)
	}

	db, err := database.Open(&cfg.Database)
	if err != nil {
		fmt.Printf("open database failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = database.Close(db)
	}()

	if err := database.Migrate(db); err != nil {
		fmt.Printf("migrate database failed: %v\n", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)

	if _, err := userRepo.FindByUsername(*username); err == nil {
		fmt.Printf("user %q already exists\n", *username)
		os.Exit(1)
	} else if !errors.Is(err, pkgErrors.ErrUserNotFound) {
		fmt.Printf("lookup user failed: %v\n", err)
		os.Exit(1)
	}

	hash, err := crypto.HashPassword(*password)
	if err != nil {
		fmt.Printf("hash password failed: %v\n", err)
		os.Exit(1)
	}

	user := &model.User{
		Username: *username,
		Password: hash,
		IsAdmin:  true,
	}
	if *email != "" {
		user.Email = email
	}

	if err := userRepo.Create(user); err != nil {
		fmt.Printf("create user failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("administrator %q created (id=%d)\n", user.Username, user.ID)
}
