package api

import (
	"github.com/shopspring/decimal"

	"github.com/pankajredekar/productapi/internal/product"
)

// Error codes returned to clients. Driver messages never leave the server.
const (
	CodeInvalidRequest      = "invalid_request"
	CodeNotFound            = "not_found"
	CodeMethodNotAllowed    = "method_not_allowed"
	CodeDatabaseUnavailable = "database_unavailable"
	CodeDatabaseError       = "database_error"
)

type productResp struct {
	ID    int64     `json:"id"`
	Name  string    `json:"name"`
	Price jsonPrice `json:"price"`
}

// jsonPrice encodes a decimal as a bare JSON number without going through
// float64.
type jsonPrice decimal.Decimal

func (p jsonPrice) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(p).String()), nil
}

type errorResp struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type messageResp struct {
	Message string `json:"message"`
}

func toResp(p product.Product) productResp {
	return productResp{ID: p.ID, Name: p.Name, Price: jsonPrice(p.Price)}
}

func toRespList(products []product.Product) []productResp {
	res := make([]productResp, 0, len(products))
	for _, p := range products {
		res = append(res, toResp(p))
	}
	return res
}
