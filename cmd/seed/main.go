package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"resepku/internal/config"
	"resepku/internal/db"
	"resepku/internal/model"
	"resepku/internal/repository"
	"resepku/internal/service"
	"resepku/internal/storage"
)

type seedUser struct {
	Username string
	Email    string
	Password string
	Recipes  []model.Recipe
}

var seedUsers = []seedUser{
	{
		Username: "sari",
		Email:    "sari@example.com",
		Password: "rahasia123",
		Recipes: []model.Recipe{
			{
				Title:       "Nasi Goreng Kampung",
				Servings:    "2",
				CookTime:    "20 minutes",
				Ingredients: model.StringList{"rice", "egg", "shallot", "chili", "sweet soy sauce"},
				Steps:       model.StringList{"Heat oil", "Fry shallot and chili", "Add rice and egg", "Season and serve"},
			},
			{
				Title:       "Soto Ayam",
				Servings:    "4",
				CookTime:    "45 minutes",
				Ingredients: model.StringList{"chicken", "turmeric", "lemongrass", "glass noodles"},
				Steps:       model.StringList{"Boil chicken with spices", "Shred chicken", "Assemble bowls"},
			},
		},
	},
	{
		Username: "budi",
		Email:    "budi@example.com",
		Password: "rahasia123",
		Recipes: []model.Recipe{
			{
				Title:       "Tempe Orek",
				Servings:    "3",
				CookTime:    "15 minutes",
				Ingredients: model.StringList{"tempeh", "garlic", "sweet soy sauce"},
				Steps:       model.StringList{"Fry tempeh", "Toss with sauce"},
			},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Recipe{},
		&model.SharedRecipe{},
		&model.Favorite{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	uploadPrefix := storage.NewLocalStore(cfg.UploadDir).Prefix()
	userRepo := repository.NewUserRepository(gormDB)
	recipeRepo := repository.NewRecipeRepository(gormDB, uploadPrefix)
	shareRepo := repository.NewShareRepository(gormDB, uploadPrefix)
	handleGen := service.NewHandleGenerator(userRepo)
	ctx := context.Background()

	created, skipped := 0, 0
	for _, su := range seedUsers {
		// Idempotent on email: existing users are left untouched.
		if _, err := userRepo.FindByEmail(ctx, su.Email); err == nil {
			log.Printf("user %s already exists, skipping", su.Email)
			skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("check user %s: %v", su.Email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		handle, err := handleGen.Generate(ctx)
		if err != nil {
			log.Fatalf("generate handle: %v", err)
		}

		user := &model.User{
			Username:     su.Username,
			Email:        su.Email,
			PasswordHash: string(hash),
			Handle:       handle,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("create user %s: %v", su.Email, err)
		}
		created++

		for i := range su.Recipes {
			recipe := su.Recipes[i]
			recipe.UserID = user.ID
			if err := recipeRepo.Create(ctx, &recipe); err != nil {
				log.Fatalf("create recipe %q: %v", recipe.Title, err)
			}
			// Publish every seeded recipe so the public feed has content.
			share := &model.SharedRecipe{UserID: user.ID, RecipeID: recipe.ID}
			if err := shareRepo.Create(ctx, share); err != nil {
				log.Fatalf("share recipe %q: %v", recipe.Title, err)
			}
		}
	}

	log.Printf("Seed completed: %d users created, %d skipped", created, skipped)
}
