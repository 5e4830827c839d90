package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"resepku/internal/model"
)

// RecipeRepository defines persistence for owned recipes. Mutations are
// ownership-scoped: they filter on both recipe id and user id and report
// affected rows, so a zero count means "not found or not yours".
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) error
	ListByOwner(ctx context.Context, userID uint) ([]model.RecipeSummary, error)
	FindOwnDetail(ctx context.Context, userID, recipeID uint) (*model.RecipeDetail, error)
	UpdateOwned(ctx context.Context, recipeID, userID uint, fields map[string]interface{}) (int64, error)
	DeleteOwned(ctx context.Context, recipeID, userID uint) (int64, error)
}

type recipeRepository struct {
	db           *gorm.DB
	uploadPrefix string
}

// NewRecipeRepository creates a new recipe repository. uploadPrefix is the
// stored-path prefix to strip from image paths, storage.LocalStore.Prefix.
func NewRecipeRepository(db *gorm.DB, uploadPrefix string) RecipeRepository {
	return &recipeRepository{db: db, uploadPrefix: uploadPrefix}
}

func (r *recipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) ListByOwner(ctx context.Context, userID uint) ([]model.RecipeSummary, error) {
	var rows []model.RecipeSummary
	if err := r.db.WithContext(ctx).Model(&model.Recipe{}).
		Select("id, title, servings, cook_time, image_path").
		Where("user_id = ?", userID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].ImagePath = stripImagePrefix(rows[i].ImagePath, r.uploadPrefix)
	}
	return rows, nil
}

func (r *recipeRepository) FindOwnDetail(ctx context.Context, userID, recipeID uint) (*model.RecipeDetail, error) {
	var detail model.RecipeDetail
	res := r.db.WithContext(ctx).Model(&model.Recipe{}).
		Select("id, title, servings, cook_time, ingredients, steps, image_path").
		Where("user_id = ? AND id = ?", userID, recipeID).
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

func (r *recipeRepository) UpdateOwned(ctx context.Context, recipeID, userID uint, fields map[string]interface{}) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Recipe{}).
		Where("id = ? AND user_id = ?", recipeID, userID).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// DeleteOwned removes a recipe together with its publications and their
// favorites in one transaction, so the public listing never serves rows
// joined against a deleted recipe.
func (r *recipeRepository) DeleteOwned(ctx context.Context, recipeID, userID uint) (int64, error) {
	var affected int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", recipeID, userID).Delete(&model.Recipe{})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}

		var shareIDs []uint
		if err := tx.Model(&model.SharedRecipe{}).
			Where("recipe_id = ?", recipeID).
			Pluck("id", &shareIDs).Error; err != nil {
			return err
		}
		if len(shareIDs) == 0 {
			return nil
		}
		if err := tx.Where("shared_recipe_id IN ?", shareIDs).Delete(&model.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Where("recipe_id = ?", recipeID).Delete(&model.SharedRecipe{}).Error
	})
	return affected, err
}

// stripImagePrefix converts a stored image path into one relative to the
// static uploads mount. The prefix comes from the configured upload root,
// never a literal.
func stripImagePrefix(path, prefix string) string {
	return strings.TrimPrefix(path, prefix)
}
