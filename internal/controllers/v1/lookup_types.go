package v1

import (
	"github.com/controle-financeiro/backend/internal/models"
	"golang.org/x/exp/slices"
)

type LookupEditable struct {
	Name   string `json:"nome" example:"Alimentação"` // Name, unique in the table
	Order  int    `json:"ordem" example:"3"`          // Position in lists
	Active bool   `json:"ativa" example:"true"`       // Inactive rows are not listed
}

func (editable LookupEditable) apply(row *models.Lookup, fields []string) {
	if slices.Contains(fields, "Name") {
		row.Name = editable.Name
	}

	if slices.Contains(fields, "Order") {
		row.Order = editable.Order
	}

	if slices.Contains(fields, "Active") {
		row.Active = editable.Active
	}
}

type LookupLinks struct {
	Self string `json:"self" example:"https://example.com/api/lojas/d430d7c3-d14c-4712-9336-ee56965a6673"` // The row itself
}

// Lookup is the API representation of a row of a reference table.
type Lookup struct {
	models.Lookup
	Links LookupLinks `json:"links"`
}

type LookupResponse struct {
	Error *string `json:"error" example:"the name must be unique, there already is a resource with this name: store"` // The error, if any occurred
	Data  *Lookup `json:"data"`                                                                                       // Data for the row
}

type LookupListResponse struct {
	Error *string  `json:"error" example:"an error occurred on the server during your request"` // The error, if any occurred
	Data  []Lookup `json:"data"`                                                                // List of rows
}

type LookupQueryFilter struct {
	All bool `form:"all"` // Include inactive rows
}
