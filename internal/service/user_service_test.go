package service

import (
	"context"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "resepku/internal/errors"
	"resepku/internal/model"
)

func strPtr(s string) *string { return &s }

func TestUserService_UpdateProfile_PartialFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	// Only the provided field may be written; absent fields stay untouched.
	mockRepo.On("UpdateFields", mock.Anything, uint(1), map[string]interface{}{
		"username": "newname",
	}).Return(int64(1), nil)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{
		ID:       1,
		Username: "newname",
		Email:    "a@x.com",
		Handle:   "@cook123456",
	}, nil)

	svc := NewUserService(mockRepo, newMemCache())
	user, err := svc.UpdateProfile(context.Background(), 1, ProfileUpdate{Username: strPtr("newname")})

	assert.NoError(t, err)
	assert.Equal(t, "newname", user.Username)
	assert.Equal(t, "a@x.com", user.Email)
	mockRepo.AssertExpectations(t)
}

func TestUserService_UpdateProfile_NoFields(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.User{ID: 1, Username: "sari"}, nil)

	svc := NewUserService(mockRepo, newMemCache())
	user, err := svc.UpdateProfile(context.Background(), 1, ProfileUpdate{})

	assert.NoError(t, err)
	assert.Equal(t, "sari", user.Username)
	// UpdateFields must not have been called at all.
	mockRepo.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_UpdateProfile_HandleConflict(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("UpdateFields", mock.Anything, uint(1), mock.Anything).
		Return(int64(0), &mysql.MySQLError{
			Number:  1062,
			Message: "Duplicate entry '@cook111111' for key 'users.uq_users_handle'",
		})

	svc := NewUserService(mockRepo, newMemCache())
	_, err := svc.UpdateProfile(context.Background(), 1, ProfileUpdate{Handle: strPtr("@cook111111")})

	assert.ErrorIs(t, err, apperrors.ErrHandleTaken)
}

func TestUserService_UpdateProfile_EmailConflict(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("UpdateFields", mock.Anything, uint(1), mock.Anything).
		Return(int64(0), &mysql.MySQLError{
			Number:  1062,
			Message: "Duplicate entry 'b@x.com' for key 'users.uq_users_email'",
		})

	svc := NewUserService(mockRepo, newMemCache())
	_, err := svc.UpdateProfile(context.Background(), 1, ProfileUpdate{Email: strPtr("b@x.com")})

	assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewUserService(mockRepo, newMemCache())
	_, err := svc.GetProfile(context.Background(), 404)

	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestUserService_SetProfilePicture(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockRepo.On("UpdateFields", mock.Anything, uint(1), map[string]interface{}{
		"profile_picture": "uploads/123-me.jpg",
	}).Return(int64(1), nil)

	svc := NewUserService(mockRepo, newMemCache())
	err := svc.SetProfilePicture(context.Background(), 1, "uploads/123-me.jpg")

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}
