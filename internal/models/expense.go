package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/controle-financeiro/backend/internal/types"
	"github.com/controle-financeiro/backend/internal/uuid"
	google_uuid "github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// MaxInstallments is the largest installment count accepted, 35 years of
// monthly payments.
const MaxInstallments = 420

// CategoryReimbursement is the expense category netted against
// credit card statements instead of being added to them.
const CategoryReimbursement = "Reembolso"

// Expense is a single expense row. For installment purchases, every
// installment is its own Expense and all of them share the GroupID.
type Expense struct {
	DefaultModel
	Store         string              `json:"loja" gorm:"column:loja"`
	StoreID       *google_uuid.UUID   `json:"loja_id" gorm:"column:loja_id"`
	Category      string              `json:"categoria" gorm:"column:categoria"`
	CategoryID    *google_uuid.UUID   `json:"categoria_id" gorm:"column:categoria_id"`
	Description   string              `json:"descricao" gorm:"column:descricao"`
	PaymentType   string              `json:"tipo_pagamento" gorm:"column:tipo_pagamento"`
	PaymentTypeID *google_uuid.UUID   `json:"tipo_pagamento_id" gorm:"column:tipo_pagamento_id"`
	PaymentMethod types.PaymentMethod `json:"metodo_pagamento" gorm:"column:metodo_pagamento;index"`
	Value         decimal.Decimal     `json:"valor" gorm:"column:valor;type:DECIMAL(20,8)"`
	Date          types.Date          `json:"data" gorm:"column:data;index"`
	InputDate     time.Time           `json:"data_input" gorm:"column:data_input"`
	Installments  int                 `json:"parcelas" gorm:"column:parcelas;default:1"`
	Installment   int                 `json:"parcela_atual" gorm:"column:parcela_atual;default:1"`
	GroupID       string              `json:"parcela_id" gorm:"column:parcela_id;index"`
}

func (Expense) TableName() string {
	return "saidas"
}

func (e *Expense) BeforeCreate(tx *gorm.DB) error {
	_ = e.DefaultModel.BeforeCreate(tx)

	if e.InputDate.IsZero() {
		e.InputDate = time.Now().UTC()
	}

	return nil
}

// BeforeSave normalizes the expense and derives the payment method
// from the payment type label.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.Store = strings.TrimSpace(e.Store)
	e.Category = strings.TrimSpace(e.Category)
	e.Description = strings.TrimSpace(e.Description)
	e.PaymentType = strings.TrimSpace(e.PaymentType)
	e.PaymentMethod = types.ClassifyPayment(e.PaymentType)

	if e.Installments == 0 {
		e.Installments = 1
	}

	if e.Installment == 0 {
		e.Installment = 1
	}

	if e.GroupID == "" {
		e.GroupID = uuid.NewString()
	}

	return e.validate()
}

func (e Expense) validate() error {
	if e.Installments < 1 {
		return ErrInstallmentsInvalid
	}

	if e.Installments > MaxInstallments {
		return ErrInstallmentsTooLarge
	}

	if e.Installment < 1 || e.Installment > e.Installments {
		return ErrInstallmentPosition
	}

	return nil
}

// IsReimbursement reports if the expense is a reimbursement.
func (e Expense) IsReimbursement() bool {
	return e.Category == CategoryReimbursement
}

// Split expands the expense into count installments. The Value of e is the
// total of the purchase.
//
// Installment i is dated i calendar months after e.Date using the
// normalization of time.AddDate, so 2024-01-31 is followed by 2024-03-02
// and 2024-03-31. Values are split in cents, the remaining cents are added
// one each to the first installments so that the values add up to the total.
// Installments can therefore differ by a cent from a plain total/count split.
func (e Expense) Split(count int) []Expense {
	if count < 1 {
		count = 1
	}

	groupID := e.GroupID
	if groupID == "" {
		groupID = uuid.NewString()
	}

	values := splitValue(e.Value, count)
	rows := make([]Expense, 0, count)

	for i := 0; i < count; i++ {
		row := e
		row.DefaultModel = DefaultModel{}
		row.Value = values[i]
		row.Installments = count
		row.Installment = i + 1
		row.GroupID = groupID

		if !e.Date.IsZero() {
			row.Date = e.Date.AddDate(0, i, 0)
		}

		rows = append(rows, row)
	}

	return rows
}

// splitValue splits total into count parts at cent precision.
func splitValue(total decimal.Decimal, count int) []decimal.Decimal {
	cent := decimal.New(1, -2)
	n := decimal.NewFromInt(int64(count))

	base := total.Div(n).RoundFloor(2)
	remainder := total.Sub(base.Mul(n))
	extraCents := remainder.Div(cent).Floor()

	values := make([]decimal.Decimal, count)
	for i := range values {
		values[i] = base
		if decimal.NewFromInt(int64(i)).LessThan(extraCents) {
			values[i] = values[i].Add(cent)
		}
	}

	// Sub-cent digits of the total stay with the first installment
	values[0] = values[0].Add(remainder.Sub(extraCents.Mul(cent)))

	return values
}

// CreateExpense persists the expense. With count > 1, the expense is split
// into installments and all of them are created in one transaction, either
// all installments exist afterwards or none.
func CreateExpense(db *gorm.DB, e Expense, count int) ([]Expense, error) {
	if count < 1 {
		count = 1
	}

	if count > MaxInstallments {
		return nil, ErrInstallmentsTooLarge
	}

	// Split also stores single rows as installment 1 of 1
	rows := e.Split(count)

	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range rows {
			if err := tx.Create(&rows[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if count > 1 {
			return nil, fmt.Errorf("%w: %w", ErrInstallmentsCreate, err)
		}
		return nil, err
	}

	return rows, nil
}

// DeleteExpense deletes the expense with the given ID. If group is true, all
// installments sharing the expense's group ID are deleted.
//
// It returns the number of deleted rows.
func DeleteExpense(db *gorm.DB, id google_uuid.UUID, group bool) (int64, error) {
	var expense Expense
	err := db.First(&expense, id).Error
	if err != nil {
		return 0, err
	}

	q := db.Where("id = ?", expense.ID)
	if group && expense.GroupID != "" {
		q = db.Where("parcela_id = ?", expense.GroupID)
	}

	result := q.Delete(&Expense{})
	return result.RowsAffected, result.Error
}

// Returns all expenses on this instance for export
func (Expense) Export() (json.RawMessage, error) {
	var expenses []Expense
	err := DB.Order("data, parcela_id, parcela_atual").Find(&expenses).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&expenses)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
