package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "resepku/internal/errors"
	"resepku/internal/model"
	"resepku/internal/repository"
)

const (
	feedCacheKey = "feed:published"
	feedCacheTTL = time.Minute
)

// Detail sources selectable on the recipe-detail endpoint.
const (
	SourceOwn       = "own"
	SourceFavorite  = "favorite"
	SourcePublished = "published"
)

// RecipeInput carries the writable recipe fields.
type RecipeInput struct {
	Title       string
	Servings    string
	CookTime    string
	Ingredients model.StringList
	Steps       model.StringList
	ImagePath   string
}

// RecipeService exposes recipe, publication, and favorite operations.
type RecipeService interface {
	AddRecipe(ctx context.Context, userID uint, in RecipeInput) (*model.Recipe, error)
	EditRecipe(ctx context.Context, userID, recipeID uint, in RecipeInput) error
	DeleteRecipe(ctx context.Context, userID, recipeID uint) error
	OwnRecipes(ctx context.Context, userID uint) ([]model.RecipeSummary, error)

	Share(ctx context.Context, userID, recipeID uint) error
	Unshare(ctx context.Context, userID, shareID uint) error
	PublishedRecipes(ctx context.Context, userID uint) ([]model.SharedSummary, error)

	Favorite(ctx context.Context, userID, shareID uint) error
	Unfavorite(ctx context.Context, userID, shareID uint) error
	IsFavorited(ctx context.Context, userID, shareID uint) (bool, error)
	FavoriteRecipes(ctx context.Context, userID uint) ([]model.SharedSummary, error)
	AllFavorites(ctx context.Context) ([]model.FavoriteRow, error)

	Detail(ctx context.Context, userID uint, source string, id uint) (*model.RecipeDetail, error)
	Search(ctx context.Context, keyword string) ([]model.PublishedRecipe, error)
}

type recipeService struct {
	recipes   repository.RecipeRepository
	shares    repository.ShareRepository
	favorites repository.FavoriteRepository
	cache     Cache
}

// NewRecipeService creates a new recipe service.
func NewRecipeService(
	recipes repository.RecipeRepository,
	shares repository.ShareRepository,
	favorites repository.FavoriteRepository,
	cache Cache,
) RecipeService {
	return &recipeService{
		recipes:   recipes,
		shares:    shares,
		favorites: favorites,
		cache:     cache,
	}
}

func (s *recipeService) AddRecipe(ctx context.Context, userID uint, in RecipeInput) (*model.Recipe, error) {
	recipe := &model.Recipe{
		UserID:      userID,
		Title:       in.Title,
		Servings:    in.Servings,
		CookTime:    in.CookTime,
		Ingredients: in.Ingredients,
		Steps:       in.Steps,
		ImagePath:   in.ImagePath,
	}
	if err := s.recipes.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return recipe, nil
}

func (s *recipeService) EditRecipe(ctx context.Context, userID, recipeID uint, in RecipeInput) error {
	fields := map[string]interface{}{
		"title":       in.Title,
		"servings":    in.Servings,
		"cook_time":   in.CookTime,
		"ingredients": in.Ingredients,
		"steps":       in.Steps,
		"image_path":  in.ImagePath,
	}
	rows, err := s.recipes.UpdateOwned(ctx, recipeID, userID, fields)
	if err != nil {
		return fmt.Errorf("update recipe: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrRecipeNotFound
	}
	_ = s.cache.Delete(ctx, feedCacheKey)
	return nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, userID, recipeID uint) error {
	rows, err := s.recipes.DeleteOwned(ctx, recipeID, userID)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrRecipeNotFound
	}
	_ = s.cache.Delete(ctx, feedCacheKey)
	return nil
}

func (s *recipeService) OwnRecipes(ctx context.Context, userID uint) ([]model.RecipeSummary, error) {
	return s.recipes.ListByOwner(ctx, userID)
}

// Share publishes one of the user's own recipes. The ownership lookup keeps
// a user from publishing someone else's work under their own name.
func (s *recipeService) Share(ctx context.Context, userID, recipeID uint) error {
	if _, err := s.recipes.FindOwnDetail(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRecipeNotFound
		}
		return fmt.Errorf("check recipe ownership: %w", err)
	}

	share := &model.SharedRecipe{UserID: userID, RecipeID: recipeID}
	if err := s.shares.Create(ctx, share); err != nil {
		if repository.IsDuplicateEntry(err) {
			return apperrors.ErrAlreadyShared
		}
		return fmt.Errorf("share recipe: %w", err)
	}
	_ = s.cache.Delete(ctx, feedCacheKey)
	return nil
}

func (s *recipeService) Unshare(ctx context.Context, userID, shareID uint) error {
	rows, err := s.shares.DeleteOwned(ctx, shareID, userID)
	if err != nil {
		return fmt.Errorf("unshare recipe: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrShareNotFound
	}
	_ = s.cache.Delete(ctx, feedCacheKey)
	return nil
}

func (s *recipeService) PublishedRecipes(ctx context.Context, userID uint) ([]model.SharedSummary, error) {
	return s.shares.ListByOwner(ctx, userID)
}

func (s *recipeService) Favorite(ctx context.Context, userID, shareID uint) error {
	exists, err := s.shares.Exists(ctx, shareID)
	if err != nil {
		return fmt.Errorf("check shared recipe: %w", err)
	}
	if !exists {
		return apperrors.ErrShareNotFound
	}

	fav := &model.Favorite{UserID: userID, SharedRecipeID: shareID}
	if err := s.favorites.Create(ctx, fav); err != nil {
		if repository.IsDuplicateEntry(err) {
			return apperrors.ErrAlreadyFavorited
		}
		return fmt.Errorf("favorite recipe: %w", err)
	}
	return nil
}

func (s *recipeService) Unfavorite(ctx context.Context, userID, shareID uint) error {
	rows, err := s.favorites.Delete(ctx, shareID, userID)
	if err != nil {
		return fmt.Errorf("unfavorite recipe: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrFavoriteNotFound
	}
	return nil
}

func (s *recipeService) IsFavorited(ctx context.Context, userID, shareID uint) (bool, error) {
	return s.favorites.Exists(ctx, shareID, userID)
}

func (s *recipeService) FavoriteRecipes(ctx context.Context, userID uint) ([]model.SharedSummary, error) {
	return s.favorites.ListByUser(ctx, userID)
}

func (s *recipeService) AllFavorites(ctx context.Context) ([]model.FavoriteRow, error) {
	rows, err := s.favorites.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	if len(rows) == 0 {
		return nil, apperrors.ErrNoFavorites
	}
	return rows, nil
}

// Detail dispatches on the source discriminator. For "own" the id is the
// recipe id; for "favorite" and "published" it is the publication id.
func (s *recipeService) Detail(ctx context.Context, userID uint, source string, id uint) (*model.RecipeDetail, error) {
	var (
		detail *model.RecipeDetail
		err    error
	)
	switch source {
	case SourceOwn:
		detail, err = s.recipes.FindOwnDetail(ctx, userID, id)
	case SourceFavorite:
		detail, err = s.favorites.FindFavoriteDetail(ctx, userID, id)
	case SourcePublished:
		detail, err = s.shares.FindPublishedDetail(ctx, userID, id)
	default:
		return nil, apperrors.ErrInvalidSource
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("load recipe detail: %w", err)
	}
	return detail, nil
}

// Search serves the public feed. Only the unfiltered listing is cached;
// keyword queries go straight to the store.
func (s *recipeService) Search(ctx context.Context, keyword string) ([]model.PublishedRecipe, error) {
	if keyword == "" {
		if data, _ := s.cache.Get(ctx, feedCacheKey); data != nil {
			var cached []model.PublishedRecipe
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	rows, err := s.shares.Search(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search recipes: %w", err)
	}

	if keyword == "" {
		if payload, err := json.Marshal(rows); err == nil {
			_ = s.cache.Set(ctx, feedCacheKey, payload, feedCacheTTL)
		}
	}
	return rows, nil
}
