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

const profileCacheTTL = 5 * time.Minute

// ProfileUpdate carries the mutable profile fields. A nil field means
// "leave unchanged"; there is no way to blank a field through this API.
type ProfileUpdate struct {
	Username *string
	Email    *string
	Handle   *string
}

// UserService exposes profile operations.
type UserService interface {
	GetProfile(ctx context.Context, id uint) (*model.User, error)
	UpdateProfile(ctx context.Context, id uint, upd ProfileUpdate) (*model.User, error)
	SetProfilePicture(ctx context.Context, id uint, path string) error
}

type userService struct {
	users repository.UserRepository
	cache Cache
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(users repository.UserRepository, cache Cache) UserService {
	return &userService{users: users, cache: cache}
}

func (s *userService) cacheKey(id uint) string {
	return fmt.Sprintf("profile:%d", id)
}

func (s *userService) GetProfile(ctx context.Context, id uint) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, profileCacheTTL)
	}
	return user, nil
}

// UpdateProfile writes only the fields present in the request.
func (s *userService) UpdateProfile(ctx context.Context, id uint, upd ProfileUpdate) (*model.User, error) {
	fields := map[string]interface{}{}
	if upd.Username != nil {
		fields["username"] = *upd.Username
	}
	if upd.Email != nil {
		fields["email"] = *upd.Email
	}
	if upd.Handle != nil {
		fields["id_cookpad"] = *upd.Handle
	}

	if len(fields) > 0 {
		if _, err := s.users.UpdateFields(ctx, id, fields); err != nil {
			switch {
			case repository.IsDuplicateEntryOn(err, model.UserHandleIndex):
				return nil, apperrors.ErrHandleTaken
			case repository.IsDuplicateEntryOn(err, model.UserEmailIndex):
				return nil, apperrors.ErrEmailTaken
			}
			return nil, fmt.Errorf("update profile: %w", err)
		}
		_ = s.cache.Delete(ctx, s.cacheKey(id))
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("reload user: %w", err)
	}
	return user, nil
}

func (s *userService) SetProfilePicture(ctx context.Context, id uint, path string) error {
	rows, err := s.users.UpdateFields(ctx, id, map[string]interface{}{"profile_picture": path})
	if err != nil {
		return fmt.Errorf("save profile picture: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrUserNotFound
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
