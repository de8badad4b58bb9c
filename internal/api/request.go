package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/pankajredekar/productapi/internal/product"
)

// productReq only checks that both keys are present; values are not
// otherwise constrained.
type productReq struct {
	Name  *string          `json:"name" binding:"required"`
	Price *decimal.Decimal `json:"price" binding:"required"`
}

func (r productReq) params() product.Params {
	return product.Params{Name: *r.Name, Price: *r.Price}
}

// missingFields lists the request keys a binding error complains about.
func missingFields(err error) []string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return nil
	}
	var fields []string
	for _, fe := range errs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fields
}

var errTrailingData = errors.New("unexpected data after JSON body")

// strictJSON binds a body holding exactly one JSON value. gin's JSON binding
// stops after the first value and ignores whatever follows it.
type strictJSON struct{}

func (strictJSON) Name() string {
	return "json"
}

func (strictJSON) Bind(req *http.Request, obj any) error {
	if req == nil || req.Body == nil {
		return errors.New("invalid request")
	}
	dec := json.NewDecoder(req.Body)
	if err := dec.Decode(obj); err != nil {
		return err
	}
	switch _, err := dec.Token(); {
	case err == io.EOF:
	case err != nil:
		return fmt.Errorf("%w: %w", errTrailingData, err)
	default:
		return errTrailingData
	}
	if binding.Validator == nil {
		return nil
	}
	return binding.Validator.ValidateStruct(obj)
}
