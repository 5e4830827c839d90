package repository

import (
	"context"

	"gorm.io/gorm"

	"resepku/internal/model"
)

// FavoriteRepository defines persistence for favorites.
type FavoriteRepository interface {
	Create(ctx context.Context, fav *model.Favorite) error
	Delete(ctx context.Context, sharedRecipeID, userID uint) (int64, error)
	Exists(ctx context.Context, sharedRecipeID, userID uint) (bool, error)
	ListByUser(ctx context.Context, userID uint) ([]model.SharedSummary, error)
	FindFavoriteDetail(ctx context.Context, userID, shareID uint) (*model.RecipeDetail, error)
	ListAll(ctx context.Context) ([]model.FavoriteRow, error)
}

type favoriteRepository struct {
	db           *gorm.DB
	uploadPrefix string
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db *gorm.DB, uploadPrefix string) FavoriteRepository {
	return &favoriteRepository{db: db, uploadPrefix: uploadPrefix}
}

func (r *favoriteRepository) Create(ctx context.Context, fav *model.Favorite) error {
	return r.db.WithContext(ctx).Create(fav).Error
}

func (r *favoriteRepository) Delete(ctx context.Context, sharedRecipeID, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("shared_recipe_id = ? AND user_id = ?", sharedRecipeID, userID).
		Delete(&model.Favorite{})
	return res.RowsAffected, res.Error
}

func (r *favoriteRepository) Exists(ctx context.Context, sharedRecipeID, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Favorite{}).
		Where("shared_recipe_id = ? AND user_id = ?", sharedRecipeID, userID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID uint) ([]model.SharedSummary, error) {
	var rows []model.SharedSummary
	if err := r.db.WithContext(ctx).Table("favorites AS f").
		Select("s.id, r.title, r.image_path").
		Joins("JOIN shared_recipes AS s ON f.shared_recipe_id = s.id").
		Joins("JOIN recipes AS r ON s.recipe_id = r.id").
		Where("f.user_id = ?", userID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].ImagePath = stripImagePrefix(rows[i].ImagePath, r.uploadPrefix)
	}
	return rows, nil
}

func (r *favoriteRepository) FindFavoriteDetail(ctx context.Context, userID, shareID uint) (*model.RecipeDetail, error) {
	var detail model.RecipeDetail
	res := r.db.WithContext(ctx).Table("favorites AS f").
		Select("s.id, r.title, r.servings, r.cook_time, r.ingredients, r.steps, r.image_path").
		Joins("JOIN shared_recipes AS s ON f.shared_recipe_id = s.id").
		Joins("JOIN recipes AS r ON s.recipe_id = r.id").
		Where("f.user_id = ? AND s.id = ?", userID, shareID).
		Limit(1).
		Scan(&detail)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	detail.ImagePath = stripImagePrefix(detail.ImagePath, r.uploadPrefix)
	return &detail, nil
}

func (r *favoriteRepository) ListAll(ctx context.Context) ([]model.FavoriteRow, error) {
	var rows []model.FavoriteRow
	if err := r.db.WithContext(ctx).Table("favorites AS f").
		Select("f.id, f.user_id, r.title, r.servings, r.cook_time, r.ingredients, r.steps, f.created_at, r.image_path").
		Joins("JOIN shared_recipes AS s ON f.shared_recipe_id = s.id").
		Joins("JOIN recipes AS r ON s.recipe_id = r.id").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
