package models

import (
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/gorm"
)

// CreditCard holds the due day of a credit card. The due day anchors
// the billing periods of the card's statements.
type CreditCard struct {
	DefaultModel
	Name   string `json:"nome_cartao" gorm:"column:nome_cartao;not null"`
	DueDay int    `json:"dia_vencimento" gorm:"column:dia_vencimento;not null;check:dia_vencimento_range,dia_vencimento >= 1 AND dia_vencimento <= 31"`
}

func (CreditCard) TableName() string {
	return "cartao_fatura"
}

func (c *CreditCard) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)

	if c.Name == "" {
		return ErrCardNameEmpty
	}

	if c.DueDay < 1 || c.DueDay > 31 {
		return ErrDueDayInvalid
	}

	return nil
}

// FirstCreditCard returns the credit card that was created first.
//
// ok is false if there is no credit card.
func FirstCreditCard(db *gorm.DB) (card CreditCard, ok bool, err error) {
	err = db.Order("created_at, id").First(&card).Error
	if errors.Is(err, ErrResourceNotFound) {
		return CreditCard{}, false, nil
	}

	if err != nil {
		return CreditCard{}, false, err
	}

	return card, true, nil
}

// Returns all credit cards on this instance for export
func (CreditCard) Export() (json.RawMessage, error) {
	var cards []CreditCard
	err := DB.Find(&cards).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&cards)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
