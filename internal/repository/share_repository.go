package repository

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"resepku/internal/model"
)

// ShareRepository defines persistence for recipe publications.
type ShareRepository interface {
	Create(ctx context.Context, share *model.SharedRecipe) error
	Exists(ctx context.Context, shareID uint) (bool, error)
	DeleteOwned(ctx context.Context, shareID, userID uint) (int64, error)
	// ListByOwner lists publications of recipes owned by the user.
	ListByOwner(ctx context.Context, userID uint) ([]model.SharedSummary, error)
	FindPublishedDetail(ctx context.Context, ownerID, shareID uint) (*model.RecipeDetail, error)
	Search(ctx context.Context, keyword string) ([]model.PublishedRecipe, error)
}

type shareRepository struct {
	db           *gorm.DB
	uploadPrefix string
}

// NewShareRepository creates a new share repository.
func NewShareRepository(db *gorm.DB, uploadPrefix string) ShareRepository {
	return &shareRepository{db: db, uploadPrefix: uploadPrefix}
}

func (r *shareRepository) Create(ctx context.Context, share *model.SharedRecipe) error {
	return r.db.WithContext(ctx).Create(share).Error
}

func (r *shareRepository) Exists(ctx context.Context, shareID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.SharedRecipe{}).
		Where("id = ?", shareID).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *shareRepository) DeleteOwned(ctx context.Context, shareID, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", shareID, userID).
		Delete(&model.SharedRecipe{})
	return res.RowsAffected, res.Error
}

func (r *shareRepository) ListByOwner(ctx context.Context, userID uint) ([]model.SharedSummary, error) {
	var rows []model.SharedSummary
	if err := r.db.WithContext(ctx).Table("shared_recipes AS s").
		Select("s.id, r.title, r.image_path").
		Joins("JOIN recipes AS r ON s.recipe_id = r.id").
		Where("r.user_id = ?", userID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].ImagePath = stripImagePrefix(rows[i].ImagePath, r.uploadPrefix)
	}
	return rows, nil
}

func (r *shareRepository) FindPublishedDetail(ctx context.Context, ownerID, shareID uint) (*model.RecipeDetail, error) {
	var detail model.RecipeDetail
	res := r.db.WithContext(ctx).Table("shared_recipes AS s").
		Select("s.id, r.title, r.servings, r.cook_time, r.ingredients, r.steps, r.image_path").
		Joins("JOIN recipes AS r ON s.recipe_id = r.id").
		Where("r.user_id = ? AND s.id = ?", ownerID, shareID).
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

// Search lists the public feed. A keyword matches when the title contains it
// case-insensitively or the ingredient list contains it as an exact element;
// an empty keyword matches everything. This is the SQL form of
// model.PublishedRecipe.MatchesKeyword.
func (r *shareRepository) Search(ctx context.Context, keyword string) ([]model.PublishedRecipe, error) {
	q := r.db.WithContext(ctx).Table("shared_recipes AS s").
		Select("s.id, r.title, r.servings, r.cook_time, r.image_path, r.user_id, r.ingredients, r.steps, u.username").
		Joins("JOIN recipes AS r ON s.recipe_id = r.id").
		Joins("JOIN users AS u ON r.user_id = u.id")
	if keyword != "" {
		q = q.Where("LOWER(r.title) LIKE ? OR JSON_CONTAINS(r.ingredients, JSON_QUOTE(?))",
			"%"+strings.ToLower(keyword)+"%", keyword)
	}

	var rows []model.PublishedRecipe
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].ImagePath = stripImagePrefix(rows[i].ImagePath, r.uploadPrefix)
	}
	return rows, nil
}
