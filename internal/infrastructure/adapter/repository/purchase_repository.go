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

// PurchaseRepository implements PurchaseRepository using GORM. Writes
// stay single-row; the settlement condition is expressed as a guarded
// UPDATE checked through RowsAffected.
type PurchaseRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPurchaseRepository creates a new PurchaseRepository instance
func NewPurchaseRepository(db *gorm.DB, logger coreport.Logger) persistence.PurchaseRepository {
	return &PurchaseRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func purchaseToModel(p *entity.Purchase) model.Purchase {
	m := model.Purchase{
		Reference:       p.PurchaseID,
		Status:          string(p.Status),
		TxnType:         string(p.TxnType),
		Email:           p.Email,
		PhoneNumber:     p.PhoneNumber,
		AmountKobo:      p.AmountKobo,
		Units:           p.Units,
		ServiceFee:      p.ServiceFee,
		PlatformFees:    p.PlatformFees,
		Commission:      p.Commission,
		Token:           p.Token,
		MeterNumber:     p.MeterNumber,
		MeterType:       p.MeterType,
		Location:        p.Location,
		CustomerName:    p.CustomerName,
		CustomerContact: p.CustomerContact,
		PaymentMethod:   p.PaymentMethod,
		WalletBalance:   p.WalletBalance,
		CreatedAt:       p.CreatedAt,
	}
	if !p.PurchaseDate.IsZero() {
		d := p.PurchaseDate
		m.PurchaseDate = &d
	}
	return m
}

func purchaseToEntity(m *model.Purchase) *entity.Purchase {
	p := &entity.Purchase{
		PurchaseID:      m.Reference,
		Status:          entity.PurchaseStatus(m.Status),
		TxnType:         entity.TxnType(m.TxnType),
		Email:           m.Email,
		PhoneNumber:     m.PhoneNumber,
		AmountKobo:      m.AmountKobo,
		Units:           m.Units,
		ServiceFee:      m.ServiceFee,
		PlatformFees:    m.PlatformFees,
		Commission:      m.Commission,
		Token:           m.Token,
		MeterNumber:     m.MeterNumber,
		MeterType:       m.MeterType,
		Location:        m.Location,
		CustomerName:    m.CustomerName,
		CustomerContact: m.CustomerContact,
		PaymentMethod:   m.PaymentMethod,
		WalletBalance:   m.WalletBalance,
		CreatedAt:       m.CreatedAt,
	}
	if m.PurchaseDate != nil {
		p.PurchaseDate = *m.PurchaseDate
	}
	return p
}

// Create inserts a new purchase record. The primary key on the
// reference makes the insert conditional on it not existing.
func (r *PurchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	m := purchaseToModel(purchase)
	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			return errs.ErrDuplicatePurchase
		}
		return r.storeError("creating purchase", purchase.PurchaseID, result.Error)
	}
	return nil
}

// GetByReference retrieves a purchase by its transaction reference.
func (r *PurchaseRepository) GetByReference(ctx context.Context, reference string) (*entity.Purchase, error) {
	var m model.Purchase
	result := r.db.WithContext(ctx).First(&m, "reference = ?", reference)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errs.ErrInvalidReference
		}
		return nil, r.storeError("getting purchase", reference, result.Error)
	}
	return purchaseToEntity(&m), nil
}

// Confirm writes the finalized purchase, guarded on the stored status
// still being Initialized. RowsAffected tells us whether this call won
// the settlement race.
func (r *PurchaseRepository) Confirm(ctx context.Context, purchase *entity.Purchase) error {
	m := purchaseToModel(purchase)
	result := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("reference = ? AND status = ?", purchase.PurchaseID, string(entity.StatusInitialized)).
		Updates(map[string]interface{}{
			"status":           m.Status,
			"txn_type":         m.TxnType,
			"email":            m.Email,
			"phone_number":     m.PhoneNumber,
			"amount_kobo":      m.AmountKobo,
			"units":            m.Units,
			"service_fee":      m.ServiceFee,
			"platform_fees":    m.PlatformFees,
			"commission":       m.Commission,
			"token":            m.Token,
			"meter_number":     m.MeterNumber,
			"meter_type":       m.MeterType,
			"location":         m.Location,
			"customer_name":    m.CustomerName,
			"customer_contact": m.CustomerContact,
			"payment_method":   m.PaymentMethod,
			"purchase_date":    m.PurchaseDate,
		})
	if result.Error != nil {
		return r.storeError("confirming purchase", purchase.PurchaseID, result.Error)
	}
	if result.RowsAffected == 0 {
		// Either a concurrent confirmation won or the reference was
		// never initialized. Distinguish by reading.
		if _, err := r.GetByReference(ctx, purchase.PurchaseID); err != nil {
			return err
		}
		return errs.ErrAlreadyConfirmed
	}
	return nil
}

// SetWalletBalance records the post-credit balance on the purchase.
func (r *PurchaseRepository) SetWalletBalance(ctx context.Context, reference, balance string) error {
	result := r.db.WithContext(ctx).Model(&model.Purchase{}).
		Where("reference = ?", reference).
		Update("wallet_balance", balance)
	if result.Error != nil {
		return r.storeError("setting wallet balance", reference, result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrInvalidReference
	}
	return nil
}

// ListByEmail returns all purchases made by the given email, newest first.
func (r *PurchaseRepository) ListByEmail(ctx context.Context, email string) ([]*entity.Purchase, error) {
	var models []model.Purchase
	result := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, r.storeError("listing purchases", email, result.Error)
	}
	return toEntities(models), nil
}

// ListByTypeAndDateRange returns purchases of one transaction type
// whose purchase date falls inside the window.
func (r *PurchaseRepository) ListByTypeAndDateRange(ctx context.Context, txnType entity.TxnType, from, to time.Time) ([]*entity.Purchase, error) {
	var models []model.Purchase
	result := r.db.WithContext(ctx).
		Where("txn_type = ? AND purchase_date BETWEEN ? AND ?", string(txnType), from, to).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, r.storeError("listing purchases by type", string(txnType), result.Error)
	}
	return toEntities(models), nil
}

func toEntities(models []model.Purchase) []*entity.Purchase {
	purchases := make([]*entity.Purchase, 0, len(models))
	for i := range models {
		purchases = append(purchases, purchaseToEntity(&models[i]))
	}
	return purchases
}

func (r *PurchaseRepository) storeError(operation, key string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"key":   key,
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrStoreUnavailable, err.Error())
}
