package v1

import (
	"github.com/controle-financeiro/backend/internal/types"
	"github.com/controle-financeiro/backend/internal/uuid"
)

// defaultLimit is the number of resources returned by list endpoints
// when no limit is set
const defaultLimit = 50

type URIID struct {
	ID uuid.UUID `uri:"id" binding:"required"` // The ID of the resource
}

type URIMonth struct {
	Month types.Month `uri:"month" example:"2024-03"` // Year and month in YYYY-MM format
}

type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}
