package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var DB *gorm.DB

type FinanceContext string

const (
	DBContextURL FinanceContext = "finance-backend-url"
)

// resourceNames are the human readable names of the resources stored
// in each table.
var resourceNames = map[string]string{
	"saidas":                       "expense",
	"entradas":                     "income",
	"cartao_fatura":                "credit card",
	string(TableExpenseCategories): "expense category",
	string(TableIncomeCategories):  "income category",
	string(TablePaymentTypes):      "payment type",
	string(TableStores):            "store",
}

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &logger{
			Logger:        log.Logger,
			SlowThreshold: 200 * time.Millisecond,
		},
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	// Close the connection
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Now, reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection serializes all access and prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "finance:after_query", queryCallback},
		{db.Callback().Query().After("*"), "finance:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "finance:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "finance:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "finance:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "finance:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "finance:after_delete_general", generalCallback},
		{db.Callback().Row().After("*"), "finance:after_row_general", generalCallback},
		{db.Callback().Raw().After("*"), "finance:after_raw_general", generalCallback},
	}

	for _, c := range callbacks {
		err = c.processor.Register(c.name, c.fn)
		if err != nil {
			return err
		}
	}

	// Set the exported variable
	DB = db

	return nil
}

// resourceName returns the human readable name of the resource in a table.
func resourceName(table string) string {
	if name, ok := resourceNames[table]; ok {
		return name
	}

	// Use the table name as information about the type of resource
	// and replace "_" with "[space]"
	name := strings.ReplaceAll(table, "_", " ")

	// Replace pluralized "ies" with "y"
	name = regexp.MustCompile("ies$").ReplaceAllString(name, "y")

	// Remove plural "s"
	return strings.TrimRight(name, "s")
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resourceName(db.Statement.Table))
	}
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()

	// Names of reference table rows are unique
	for _, table := range LookupTables {
		if strings.Contains(msg, fmt.Sprintf("UNIQUE constraint failed: %s.nome", table)) {
			db.Error = fmt.Errorf("%w: %s", ErrNameNotUnique, resourceName(string(table)))
			return
		}
	}

	if strings.Contains(msg, "CHECK constraint failed: dia_vencimento_range") {
		db.Error = ErrDueDayInvalid
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module, see
	// https://cs.opensource.google/go/go/+/master:src/database/sql/sql.go;l=1298;drc=0d018b49e33b1383dc0ae5cc968e800dffeeaf7d
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		// We log the error and provide a general error message so that server admins can debug
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) (err error) {
	err = db.AutoMigrate(Expense{}, Income{}, CreditCard{}, ExpenseCategory{}, IncomeCategory{}, PaymentType{}, Store{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	// Expenses written before the payment method column existed
	// are classified from their payment type label
	var legacy []Expense
	err = db.Where("metodo_pagamento IS NULL OR metodo_pagamento = ''").Find(&legacy).Error
	if err != nil {
		return fmt.Errorf("error when reading expenses without payment method: %w", err)
	}

	for i := range legacy {
		err = db.Save(&legacy[i]).Error
		if err != nil {
			return fmt.Errorf("error when classifying payment method for expense %s: %w", legacy[i].ID, err)
		}
	}

	if len(legacy) > 0 {
		log.Info().Int("count", len(legacy)).Msg("classified payment methods of existing expenses")
	}

	return nil
}
