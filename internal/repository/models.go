package repository

import (
	"time"

	"github.com/infinifab/infinifab/internal/domain"
)

// UserModel is the persistence model for the users table.
type UserModel struct {
	ID            string `gorm:"type:uuid;primaryKey"`
	Phone         string `gorm:"type:varchar(32);not null"`
	Timezone      string `gorm:"type:varchar(64);not null;default:'UTC'"`
	PreferredTime string `gorm:"type:varchar(5);not null;default:'09:00'"`
	IsActive      bool   `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (UserModel) TableName() string {
	return "users"
}

// QuoteModel is the persistence model for the quotes table.
type QuoteModel struct {
	ID       string `gorm:"type:uuid;primaryKey"`
	Text     string `gorm:"type:text;not null"`
	Author   string `gorm:"type:varchar(255);not null"`
	Category string `gorm:"type:varchar(64);not null;default:'general'"`
}

func (QuoteModel) TableName() string {
	return "quotes"
}

// MessageModel is the persistence model for the messages delivery ledger.
type MessageModel struct {
	ID            string                `gorm:"type:uuid;primaryKey"`
	UserID        string                `gorm:"type:uuid;not null"`
	QuoteID       string                `gorm:"type:uuid;not null"`
	DeliveryDay   string                `gorm:"type:varchar(10);not null"`
	Status        domain.DeliveryStatus `gorm:"type:varchar(10);not null"`
	ProviderSID   *string               `gorm:"type:varchar(64)"`
	FailureReason *string               `gorm:"type:text"`
	SentAt        time.Time             `gorm:"type:timestamptz;not null"`
}

func (MessageModel) TableName() string {
	return "messages"
}

func userModelFromDomain(u *domain.User) *UserModel {
	if u == nil {
		return nil
	}

	return &UserModel{
		ID:            u.ID,
		Phone:         u.Phone,
		Timezone:      u.Timezone,
		PreferredTime: u.PreferredTime,
		IsActive:      u.IsActive,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func userModelToDomain(m *UserModel) *domain.User {
	if m == nil {
		return nil
	}

	return &domain.User{
		ID:            m.ID,
		Phone:         m.Phone,
		Timezone:      m.Timezone,
		PreferredTime: m.PreferredTime,
		IsActive:      m.IsActive,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func quoteModelFromDomain(q *domain.Quote) *QuoteModel {
	if q == nil {
		return nil
	}

	return &QuoteModel{
		ID:       q.ID,
		Text:     q.Text,
		Author:   q.Author,
		Category: q.Category,
	}
}

func quoteModelToDomain(m *QuoteModel) *domain.Quote {
	if m == nil {
		return nil
	}

	return &domain.Quote{
		ID:       m.ID,
		Text:     m.Text,
		Author:   m.Author,
		Category: m.Category,
	}
}

func messageModelFromDomain(msg *domain.Message) *MessageModel {
	if msg == nil {
		return nil
	}

	return &MessageModel{
		ID:            msg.ID,
		UserID:        msg.UserID,
		QuoteID:       msg.QuoteID,
		DeliveryDay:   msg.DeliveryDay,
		Status:        msg.Status,
		ProviderSID:   msg.ProviderSID,
		FailureReason: msg.FailureReason,
		SentAt:        msg.SentAt,
	}
}

func messageModelToDomain(m *MessageModel) *domain.Message {
	if m == nil {
		return nil
	}

	return &domain.Message{
		ID:            m.ID,
		UserID:        m.UserID,
		QuoteID:       m.QuoteID,
		DeliveryDay:   m.DeliveryDay,
		Status:        m.Status,
		ProviderSID:   m.ProviderSID,
		FailureReason: m.FailureReason,
		SentAt:        m.SentAt,
	}
}
