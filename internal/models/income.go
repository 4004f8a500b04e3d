package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/controle-financeiro/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Income is an income row.
type Income struct {
	DefaultModel
	Category    string          `json:"categoria" gorm:"column:categoria"`
	CategoryID  *uuid.UUID      `json:"categoria_id" gorm:"column:categoria_id"`
	Description string          `json:"descricao" gorm:"column:descricao"`
	Value       decimal.Decimal `json:"valor" gorm:"column:valor;type:DECIMAL(20,8)"`
	Date        types.Date      `json:"data" gorm:"column:data;index"`
	InputDate   time.Time       `json:"data_input" gorm:"column:data_input"`
}

func (Income) TableName() string {
	return "entradas"
}

func (i *Income) BeforeCreate(tx *gorm.DB) error {
	_ = i.DefaultModel.BeforeCreate(tx)

	if i.InputDate.IsZero() {
		i.InputDate = time.Now().UTC()
	}

	return nil
}

func (i *Income) BeforeSave(_ *gorm.DB) error {
	i.Category = strings.TrimSpace(i.Category)
	i.Description = strings.TrimSpace(i.Description)

	return nil
}

// Returns all incomes on this instance for export
func (Income) Export() (json.RawMessage, error) {
	var incomes []Income
	err := DB.Order("data").Find(&incomes).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&incomes)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
