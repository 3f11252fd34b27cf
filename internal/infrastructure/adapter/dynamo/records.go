package dynamo

import (
	"time"

	"github.com/powerstack-ng/powerstack-api/internal/domain/entity"
)

// Storage timestamp layouts. Both sort lexicographically, so range
// filters work on the string representation.
const (
	purchaseDateLayout = entity.PurchaseDateFormat
	timestampLayout    = time.RFC3339
)

// purchaseRecord is the stored shape of a purchase item.
type purchaseRecord struct {
	PurchaseID      string `dynamodbav:"purchaseID"`
	Status          string `dynamodbav:"status"`
	TxnType         string `dynamodbav:"txnType"`
	Email           string `dynamodbav:"email"`
	PhoneNumber     string `dynamodbav:"phoneNumber,omitempty"`
	AmountKobo      int64  `dynamodbav:"amountKobo"`
	Units           string `dynamodbav:"units,omitempty"`
	ServiceFee      string `dynamodbav:"serviceFee,omitempty"`
	PlatformFees    string `dynamodbav:"platformFees,omitempty"`
	Commission      string `dynamodbav:"commission,omitempty"`
	Token           string `dynamodbav:"token,omitempty"`
	MeterNumber     string `dynamodbav:"meterNumber,omitempty"`
	MeterType       string `dynamodbav:"meterType,omitempty"`
	Location        string `dynamodbav:"location,omitempty"`
	CustomerName    string `dynamodbav:"customerName,omitempty"`
	CustomerContact string `dynamodbav:"customerContact,omitempty"`
	PaymentMethod   string `dynamodbav:"paymentMethod,omitempty"`
	WalletBalance   string `dynamodbav:"walletBalance,omitempty"`
	PurchaseDate    string `dynamodbav:"purchaseDate,omitempty"`
	CreatedAt       string `dynamodbav:"createdAt"`
}

func toPurchaseRecord(p *entity.Purchase) purchaseRecord {
	rec := purchaseRecord{
		PurchaseID:      p.PurchaseID,
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
		CreatedAt:       p.CreatedAt.UTC().Format(timestampLayout),
	}
	if !p.PurchaseDate.IsZero() {
		rec.PurchaseDate = p.PurchaseDate.Format(purchaseDateLayout)
	}
	return rec
}

func (r purchaseRecord) toEntity() *entity.Purchase {
	p := &entity.Purchase{
		PurchaseID:      r.PurchaseID,
		Status:          entity.PurchaseStatus(r.Status),
		TxnType:         entity.TxnType(r.TxnType),
		Email:           r.Email,
		PhoneNumber:     r.PhoneNumber,
		AmountKobo:      r.AmountKobo,
		Units:           r.Units,
		ServiceFee:      r.ServiceFee,
		PlatformFees:    r.PlatformFees,
		Commission:      r.Commission,
		Token:           r.Token,
		MeterNumber:     r.MeterNumber,
		MeterType:       r.MeterType,
		Location:        r.Location,
		CustomerName:    r.CustomerName,
		CustomerContact: r.CustomerContact,
		PaymentMethod:   r.PaymentMethod,
		WalletBalance:   r.WalletBalance,
	}
	if r.PurchaseDate != "" {
		if t, err := time.Parse(purchaseDateLayout, r.PurchaseDate); err == nil {
			p.PurchaseDate = t
		}
	}
	if t, err := time.Parse(timestampLayout, r.CreatedAt); err == nil {
		p.CreatedAt = t
	}
	return p
}

// userRecord is the stored shape of a user item. The wallet balance is
// kept in kobo so the compare-and-set condition is an exact integer
// match.
type userRecord struct {
	UserID            string         `dynamodbav:"userID"`
	Email             string         `dynamodbav:"email"`
	PhoneNumber       string         `dynamodbav:"phoneNumber,omitempty"`
	FirstName         string         `dynamodbav:"firstName,omitempty"`
	LastName          string         `dynamodbav:"lastName,omitempty"`
	UserType          string         `dynamodbav:"userType"`
	IsActive          bool           `dynamodbav:"isActive"`
	WalletBalanceKobo int64          `dynamodbav:"walletBalanceKobo"`
	Meters            []entity.Meter `dynamodbav:"meters"`
	LastLogin         string         `dynamodbav:"lastLogin,omitempty"`
	CreatedAt         string         `dynamodbav:"createdAt"`
	UpdatedAt         string         `dynamodbav:"updatedAt"`
}

func toUserRecord(u *entity.User) userRecord {
	rec := userRecord{
		UserID:            u.UserID,
		Email:             u.Email,
		PhoneNumber:       u.PhoneNumber,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		UserType:          string(u.UserType),
		IsActive:          u.IsActive,
		WalletBalanceKobo: u.WalletBalanceKobo(),
		Meters:            u.Meters,
		CreatedAt:         u.CreatedAt.UTC().Format(timestampLayout),
		UpdatedAt:         u.UpdatedAt.UTC().Format(timestampLayout),
	}
	if rec.Meters == nil {
		rec.Meters = []entity.Meter{}
	}
	if !u.LastLogin.IsZero() {
		rec.LastLogin = u.LastLogin.UTC().Format(timestampLayout)
	}
	return rec
}

func (r userRecord) toEntity() *entity.User {
	u := &entity.User{
		UserID:      r.UserID,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		UserType:    entity.UserType(r.UserType),
		IsActive:    r.IsActive,
		Meters:      r.Meters,
	}
	if u.Meters == nil {
		u.Meters = []entity.Meter{}
	}
	if t, err := time.Parse(timestampLayout, r.LastLogin); err == nil {
		u.LastLogin = t
	}
	if t, err := time.Parse(timestampLayout, r.CreatedAt); err == nil {
		u.CreatedAt = t
	}
	var updatedAt time.Time
	if t, err := time.Parse(timestampLayout, r.UpdatedAt); err == nil {
		updatedAt = t
	}
	u.SetWalletBalance(r.WalletBalanceKobo, updatedAt)
	return u
}

// ticketRecord is the stored shape of a support ticket item.
type ticketRecord struct {
	TicketID  string          `dynamodbav:"ticketID"`
	Email     string          `dynamodbav:"email"`
	UserType  string          `dynamodbav:"userType,omitempty"`
	Details   string          `dynamodbav:"details"`
	Status    string          `dynamodbav:"status"`
	Comments  []commentRecord `dynamodbav:"comments"`
	CreatedAt string          `dynamodbav:"createdAt"`
}

type commentRecord struct {
	Author  string `dynamodbav:"author"`
	Comment string `dynamodbav:"comment"`
	At      string `dynamodbav:"at"`
}

func toTicketRecord(t *entity.Ticket) ticketRecord {
	rec := ticketRecord{
		TicketID:  t.TicketID,
		Email:     t.Email,
		UserType:  string(t.UserType),
		Details:   t.Details,
		Status:    string(t.Status),
		Comments:  make([]commentRecord, 0, len(t.Comments)),
		CreatedAt: t.CreatedAt.UTC().Format(timestampLayout),
	}
	for _, c := range t.Comments {
		rec.Comments = append(rec.Comments, toCommentRecord(c))
	}
	return rec
}

func toCommentRecord(c entity.TicketComment) commentRecord {
	return commentRecord{
		Author:  c.Author,
		Comment: c.Comment,
		At:      c.At.UTC().Format(timestampLayout),
	}
}

func (r ticketRecord) toEntity() *entity.Ticket {
	t := &entity.Ticket{
		TicketID: r.TicketID,
		Email:    r.Email,
		UserType: entity.UserType(r.UserType),
		Details:  r.Details,
		Status:   entity.TicketStatus(r.Status),
		Comments: make([]entity.TicketComment, 0, len(r.Comments)),
	}
	for _, c := range r.Comments {
		comment := entity.TicketComment{Author: c.Author, Comment: c.Comment}
		if at, err := time.Parse(timestampLayout, c.At); err == nil {
			comment.At = at
		}
		t.Comments = append(t.Comments, comment)
	}
	if at, err := time.Parse(timestampLayout, r.CreatedAt); err == nil {
		t.CreatedAt = at
	}
	return t
}
