package service

import (
	"context" // Request-scoped cancellation
	"errors"  // Error matching
	"time"    // Token and cache lifetimes

	"wallet_ledger/internal/apperr"     // Error taxonomy
	"wallet_ledger/internal/domain"     // Domain models
	"wallet_ledger/internal/repository" // Persistence
	"wallet_ledger/internal/utils"      // JWT and cache helpers

	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"golang.org/x/crypto/bcrypt"   // Password hashing
)

const (
	msgUserNotFound       = "User not found"
	msgEmailExists        = "Email already exists"
	msgInvalidCredentials = "Invalid credentials"

	userCacheTTL = 60 * time.Second // Lifetime of the cached user list
	usersListKey = "users:all"
)

// UserStore is the persistence the user service needs
type UserStore interface {
	Create(ctx context.Context, user *domain.User) error
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

// CreateUserInput is a validated signup request
type CreateUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// UpdateUserInput is a partial update; nil fields are left unchanged
type UpdateUserInput struct {
	Email     *string
	Password  *string
	FirstName *string
	LastName  *string
}

// AuthResult is returned by a successful login
type AuthResult struct {
	User        domain.UserProfile `json:"user"`
	AccessToken string             `json:"access_token"`
}

// UserService manages users and issues tokens
type UserService struct {
	store      UserStore
	rdb        *redis.Client // Optional cache for the user list
	jwtSecret  string
	jwtTTL     time.Duration
	bcryptCost int
}

func NewUserService(store UserStore, rdb *redis.Client, jwtSecret string, jwtTTL time.Duration, bcryptCost int) *UserService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &UserService{store: store, rdb: rdb, jwtSecret: jwtSecret, jwtTTL: jwtTTL, bcryptCost: bcryptCost}
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*domain.UserProfile, error) {
	const op = "users.Create"
	if err := s.ensureEmailFree(ctx, op, in.Email); err != nil {
		return nil, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost) // Hash the password
	if err != nil {
		return nil, apperr.NewInternal(op, err)
	}
	user := &domain.User{
		Email:     in.Email,
		Password:  string(hash),
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := s.store.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.NewConflict(op, msgEmailExists) // Lost a race with a concurrent signup
		}
		logrus.WithFields(logrus.Fields{"email": in.Email, "error": err.Error()}).Error("Failed to create user")
		return nil, apperr.NewInternal(op, err)
	}
	logrus.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("User created")
	s.invalidate(ctx) // The cached list no longer has this user
	profile := user.Profile()
	return &profile, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.UserProfile, error) {
	var cached []domain.UserProfile
	if found, err := utils.GetCache(ctx, s.rdb, usersListKey, &cached); err == nil && found {
		return cached, nil
	}
	users, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, apperr.NewInternal("users.List", err)
	}
	profiles := make([]domain.UserProfile, len(users))
	for i := range users {
		profiles[i] = users[i].Profile()
	}
	_ = utils.SetCache(ctx, s.rdb, usersListKey, profiles, userCacheTTL) // Best effort
	return profiles, nil
}

// Get always reads the store. It backs cross-service user validation and is never cached.
func (s *UserService) Get(ctx context.Context, id string) (*domain.UserProfile, error) {
	user, err := s.find(ctx, "users.Get", id)
	if err != nil {
		return nil, err
	}
	profile := user.Profile()
	return &profile, nil
}

func (s *UserService) Update(ctx context.Context, id string, in UpdateUserInput) (*domain.UserProfile, error) {
	const op = "users.Update"
	user, err := s.find(ctx, op, id)
	if err != nil {
		return nil, err
	}
	// Uniqueness is only re-checked when the email actually changes
	if in.Email != nil && *in.Email != user.Email {
		if err := s.ensureEmailFree(ctx, op, *in.Email); err != nil {
			return nil, err
		}
		user.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), s.bcryptCost)
		if err != nil {
			return nil, apperr.NewInternal(op, err)
		}
		user.Password = string(hash)
	}
	if in.FirstName != nil {
		user.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		user.LastName = *in.LastName
	}
	if err := s.store.Update(ctx, user); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return nil, apperr.NewNotFound(op, msgUserNotFound)
		case errors.Is(err, repository.ErrDuplicate):
			return nil, apperr.NewConflict(op, msgEmailExists)
		}
		logrus.WithFields(logrus.Fields{"user_id": id, "error": err.Error()}).Error("Failed to update user")
		return nil, apperr.NewInternal(op, err)
	}
	logrus.WithField("user_id", id).Info("User updated")
	s.invalidate(ctx)
	profile := user.Profile()
	return &profile, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	const op = "users.Delete"
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NewNotFound(op, msgUserNotFound)
		}
		logrus.WithFields(logrus.Fields{"user_id": id, "error": err.Error()}).Error("Failed to delete user")
		return apperr.NewInternal(op, err)
	}
	logrus.WithField("user_id", id).Info("User deleted")
	s.invalidate(ctx)
	return nil
}

// Login exchanges an email and password for a signed token
func (s *UserService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	const op = "users.Login"
	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NewUnauthorized(op, msgInvalidCredentials, nil)
		}
		return nil, apperr.NewInternal(op, err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.NewUnauthorized(op, msgInvalidCredentials, nil) // Same message as an unknown email
	}
	token, err := utils.GenerateJWT(user.ID, user.Email, s.jwtSecret, s.jwtTTL) // Generate JWT token
	if err != nil {
		return nil, apperr.NewInternal(op, err)
	}
	logrus.WithField("user_id", user.ID).Info("User logged in")
	return &AuthResult{User: user.Profile(), AccessToken: token}, nil
}

func (s *UserService) find(ctx context.Context, op, id string) (*domain.User, error) {
	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.NewNotFound(op, msgUserNotFound)
		}
		return nil, apperr.NewInternal(op, err)
	}
	return user, nil
}

func (s *UserService) ensureEmailFree(ctx context.Context, op, email string) error {
	_, err := s.store.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return apperr.NewConflict(op, msgEmailExists)
	case errors.Is(err, repository.ErrNotFound):
		return nil
	default:
		return apperr.NewInternal(op, err)
	}
}

// invalidate drops the cached user list after a write
func (s *UserService) invalidate(ctx context.Context) {
	if err := utils.DeleteCache(ctx, s.rdb, usersListKey); err != nil {
		logrus.WithError(err).Warn("Failed to invalidate user cache")
	}
}
