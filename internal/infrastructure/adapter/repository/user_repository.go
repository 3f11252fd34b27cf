package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
	errs "github.com/powerstack-ng/powerstack-api/internal/domain/error"
	coreport "github.com/powerstack-ng/powerstack-api/internal/domain/port/core"
	"github.com/powerstack-ng/powerstack-api/internal/domain/port/persistence"
	"github.com/powerstack-ng/powerstack-api/internal/infrastructure/adapter/model"
)

// UserRepository implements UserRepository using GORM. Balance updates
// go through a guarded UPDATE on the current balance value, so two
// concurrent writers can never both apply; the loser sees zero rows
// affected and reports a conflict.
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) persistence.UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func userToModel(u *entity.User) model.User {
	meters := u.Meters
	if meters == nil {
		meters = []entity.Meter{}
	}
	return model.User{
		UserID:            u.UserID,
		Email:             u.Email,
		PhoneNumber:       u.PhoneNumber,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		UserType:          string(u.UserType),
		IsActive:          u.IsActive,
		WalletBalanceKobo: u.WalletBalanceKobo(),
		Meters:            meters,
		LastLogin:         u.LastLogin,
		CreatedAt:         u.CreatedAt,
		UpdatedAt:         u.UpdatedAt,
	}
}

func userToEntity(m *model.User) *entity.User {
	u := &entity.User{
		UserID:      m.UserID,
		Email:       m.Email,
		PhoneNumber: m.PhoneNumber,
		FirstName:   m.FirstName,
		LastName:    m.LastName,
		UserType:    entity.UserType(m.UserType),
		IsActive:    m.IsActive,
		Meters:      m.Meters,
		LastLogin:   m.LastLogin,
		CreatedAt:   m.CreatedAt,
	}
	if u.Meters == nil {
		u.Meters = []entity.Meter{}
	}
	u.SetWalletBalance(m.WalletBalanceKobo, m.UpdatedAt)
	return u
}

// GetByID retrieves a user by primary key.
func (r *UserRepository) GetByID(ctx context.Context, userID string) (*entity.User, error) {
	var m model.User
	result := r.db.WithContext(ctx).First(&m, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.storeError("getting user", userID, result.Error)
	}
	return userToEntity(&m), nil
}

// GetByEmail retrieves a user by the email business key.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.User
	result := r.db.WithContext(ctx).First(&m, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrUserNotFound
		}
		return nil, r.storeError("getting user by email", email, result.Error)
	}
	return userToEntity(&m), nil
}

// Create inserts a new user record.
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	m := userToModel(user)
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			// Concurrent first-login race; the record exists, which is
			// what the caller wanted.
			return nil
		}
		return r.storeError("creating user", user.UserID, result.Error)
	}

	r.logger.Info("User created successfully", map[string]any{
		"user_id":   user.UserID,
		"email":     user.Email,
		"user_type": string(user.UserType),
	})
	return nil
}

// CompareAndSetBalance writes the new balance only if the stored
// balance still equals the expected value.
func (r *UserRepository) CompareAndSetBalance(ctx context.Context, userID string, expectedKobo, newBalanceKobo int64) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ? AND wallet_balance_kobo = ?", userID, expectedKobo).
		Updates(map[string]interface{}{
			"wallet_balance_kobo": newBalanceKobo,
			"updated_at":          r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.storeError("updating balance", userID, result.Error)
	}
	if result.RowsAffected == 0 {
		// Either the balance moved or the user vanished.
		if _, err := r.GetByID(ctx, userID); err != nil {
			return err
		}
		return errs.ErrBalanceConflict
	}
	return nil
}

// TouchLastLogin updates the last-login timestamp.
func (r *UserRepository) TouchLastLogin(ctx context.Context, userID string, at time.Time) error {
	return r.updateColumns(ctx, userID, "touching last login", map[string]interface{}{
		"last_login": at,
	})
}

// SetActive activates or deactivates an account.
func (r *UserRepository) SetActive(ctx context.Context, userID string, active bool) error {
	return r.updateColumns(ctx, userID, "setting active flag", map[string]interface{}{
		"is_active":  active,
		"updated_at": r.timeProvider.Now(),
	})
}

// AddMeter appends a meter descriptor to the user's meter list.
func (r *UserRepository) AddMeter(ctx context.Context, userID string, meter entity.Meter) error {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	meters := append(user.Meters, meter)
	return r.writeMeters(ctx, userID, "adding meter", meters)
}

// RemoveMeter removes the meter with the given number from the list.
func (r *UserRepository) RemoveMeter(ctx context.Context, userID string, meterNumber string) error {
	user, err := r.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	kept := make([]entity.Meter, 0, len(user.Meters))
	for _, m := range user.Meters {
		if m.MeterNumber != meterNumber {
			kept = append(kept, m)
		}
	}
	return r.writeMeters(ctx, userID, "removing meter", kept)
}

// ListByType returns all users of the given type.
func (r *UserRepository) ListByType(ctx context.Context, userType entity.UserType) ([]*entity.User, error) {
	var models []model.User
	result := r.db.WithContext(ctx).
		Where("user_type = ?", string(userType)).
		Find(&models)
	if result.Error != nil {
		return nil, r.storeError("listing users", string(userType), result.Error)
	}
	return usersToEntities(models), nil
}

// ListByTypeAndLastLogin returns users of one type whose last login
// falls inside the window.
func (r *UserRepository) ListByTypeAndLastLogin(ctx context.Context, userType entity.UserType, from, to time.Time) ([]*entity.User, error) {
	var models []model.User
	result := r.db.WithContext(ctx).
		Where("user_type = ? AND last_login BETWEEN ? AND ?", string(userType), from, to).
		Find(&models)
	if result.Error != nil {
		return nil, r.storeError("listing users by login", string(userType), result.Error)
	}
	return usersToEntities(models), nil
}

func usersToEntities(models []model.User) []*entity.User {
	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, userToEntity(&models[i]))
	}
	return users
}

// writeMeters rewrites the serialized meter list. Struct-based update
// so the JSON serializer on the meters column applies.
func (r *UserRepository) writeMeters(ctx context.Context, userID, operation string, meters []entity.Meter) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		Select("meters", "updated_at").
		Updates(model.User{Meters: meters, UpdatedAt: r.timeProvider.Now()})
	if result.Error != nil {
		return r.storeError(operation, userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) updateColumns(ctx context.Context, userID, operation string, columns map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("user_id = ?", userID).
		Updates(columns)
	if result.Error != nil {
		return r.storeError(operation, userID, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) storeError(operation, key string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"key":   key,
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
}
