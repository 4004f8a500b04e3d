package models

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Lookup is a row of one of the reference tables. Expenses and incomes
// store the name of the referenced row and, optionally, its ID.
type Lookup struct {
	DefaultModel
	Name   string `json:"nome" gorm:"column:nome;uniqueIndex;not null" example:"Alimentação"`
	Order  int    `json:"ordem" gorm:"column:ordem" example:"3"`
	Active bool   `json:"ativa" gorm:"column:ativa;default:true" example:"true"`
}

func (l *Lookup) BeforeSave(_ *gorm.DB) error {
	l.Name = strings.TrimSpace(l.Name)
	if l.Name == "" {
		return ErrLookupNameEmpty
	}

	return nil
}

type ExpenseCategory struct {
	Lookup
}

func (ExpenseCategory) TableName() string {
	return string(TableExpenseCategories)
}

func (ExpenseCategory) Export() (json.RawMessage, error) {
	return TableExpenseCategories.export()
}

type IncomeCategory struct {
	Lookup
}

func (IncomeCategory) TableName() string {
	return string(TableIncomeCategories)
}

func (IncomeCategory) Export() (json.RawMessage, error) {
	return TableIncomeCategories.export()
}

type PaymentType struct {
	Lookup
}

func (PaymentType) TableName() string {
	return string(TablePaymentTypes)
}

func (PaymentType) Export() (json.RawMessage, error) {
	return TablePaymentTypes.export()
}

type Store struct {
	Lookup
}

func (Store) TableName() string {
	return string(TableStores)
}

func (Store) Export() (json.RawMessage, error) {
	return TableStores.export()
}

// LookupTable is the name of a reference table.
type LookupTable string

const (
	TableExpenseCategories LookupTable = "categorias_saidas"
	TableIncomeCategories  LookupTable = "categorias_entradas"
	TablePaymentTypes      LookupTable = "tipos_pagamento"
	TableStores            LookupTable = "lojas"
)

// LookupTables lists all reference tables.
var LookupTables = []LookupTable{TableExpenseCategories, TableIncomeCategories, TablePaymentTypes, TableStores}

func (t LookupTable) order() string {
	if t == TableStores {
		return "nome"
	}
	return "ordem, nome"
}

// List returns the rows of the table. Inactive rows are only
// included if all is true.
func (t LookupTable) List(db *gorm.DB, all bool) ([]Lookup, error) {
	q := db.Table(string(t)).Order(t.order())
	if !all {
		q = q.Where("ativa = ?", true)
	}

	var rows []Lookup
	err := q.Find(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// Get returns the row with the given ID.
func (t LookupTable) Get(db *gorm.DB, id uuid.UUID) (Lookup, error) {
	var row Lookup
	err := db.Table(string(t)).Where("id = ?", id).First(&row).Error
	return row, err
}

// Create creates a row with the name at the end of the sort order.
//
// If an inactive row with the name exists, that row is activated again.
func (t LookupTable) Create(db *gorm.DB, name string) (Lookup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Lookup{}, ErrLookupNameEmpty
	}

	existing, ok, err := t.find(db, name)
	if err != nil {
		return Lookup{}, err
	}

	if ok {
		if existing.Active {
			return Lookup{}, ErrNameNotUnique
		}

		existing.Active = true
		err = db.Table(string(t)).Where("id = ?", existing.ID).Update("ativa", true).Error
		return existing, err
	}

	var maxOrder int
	err = db.Table(string(t)).Select("COALESCE(MAX(ordem), 0)").Row().Scan(&maxOrder)
	if err != nil {
		return Lookup{}, err
	}

	row := Lookup{Name: name, Order: maxOrder + 1, Active: true}
	err = db.Table(string(t)).Create(&row).Error
	if err != nil {
		return Lookup{}, err
	}

	return row, nil
}

// Save updates all fields of an existing row.
func (t LookupTable) Save(db *gorm.DB, row *Lookup) error {
	return db.Table(string(t)).Save(row).Error
}

// Deactivate marks the row as inactive. Inactive rows keep resolving
// names for existing expenses and incomes but are not listed anymore.
func (t LookupTable) Deactivate(db *gorm.DB, id uuid.UUID) error {
	row, err := t.Get(db, id)
	if err != nil {
		return err
	}

	return db.Table(string(t)).Where("id = ?", row.ID).Update("ativa", false).Error
}

// ResolveID returns the ID of the row with the given name or nil if
// there is none.
func (t LookupTable) ResolveID(db *gorm.DB, name string) (*uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	row, ok, err := t.find(db, name)
	if err != nil || !ok {
		return nil, err
	}

	return &row.ID, nil
}

// FirstOrCreate returns the ID of the row with the given name, creating
// the row if it does not exist.
func (t LookupTable) FirstOrCreate(db *gorm.DB, name string) (*uuid.UUID, error) {
	id, err := t.ResolveID(db, name)
	if err != nil || id != nil || strings.TrimSpace(name) == "" {
		return id, err
	}

	row, err := t.Create(db, name)
	if err != nil {
		return nil, err
	}

	return &row.ID, nil
}

func (t LookupTable) find(db *gorm.DB, name string) (Lookup, bool, error) {
	var rows []Lookup
	err := db.Table(string(t)).Where("nome = ?", name).Limit(1).Find(&rows).Error
	if err != nil {
		return Lookup{}, false, err
	}

	if len(rows) == 0 {
		return Lookup{}, false, nil
	}

	return rows[0], true, nil
}

func (t LookupTable) export() (json.RawMessage, error) {
	rows, err := t.List(DB, true)
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&rows)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
