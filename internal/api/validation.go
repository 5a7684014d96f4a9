package api

import (
	"errors"   // Error matching
	"net/http" // HTTP status codes
	"reflect"  // Struct tags
	"strings"  // Tag parsing

	"wallet_ledger/internal/domain" // Domain models

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/go-playground/validator/v10" // Struct validation
	"github.com/shopspring/decimal"          // Fixed-point amounts
)

var validate = newValidator() // Shared, safe for concurrent use

// newValidator reports fields by their json/form names
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			if name, _, _ := strings.Cut(f.Tag.Get(tag), ","); name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// ValidationError describes one rejected field
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// CreateUserRequest is the body of POST /users
type CreateUserRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// UpdateUserRequest is the body of PATCH /users/:id; absent fields stay unchanged
type UpdateUserRequest struct {
	Email     *string `json:"email" validate:"omitempty,email"`
	Password  *string `json:"password" validate:"omitempty,min=1"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
}

// UserCredentials is the nested part of a login body
type UserCredentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest is the body of POST /auth
type LoginRequest struct {
	User *UserCredentials `json:"user" validate:"required"`
}

// ErrAmountNotNumber rejects amounts sent as JSON strings
var ErrAmountNotNumber = errors.New("amount must be a JSON number")

// Amount is a decimal that only binds from a bare JSON number
type Amount decimal.Decimal

func (a *Amount) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return ErrAmountNotNumber
	}
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*a = Amount(d)
	return nil
}

// Decimal returns the bound value
func (a Amount) Decimal() decimal.Decimal { return decimal.Decimal(a) }

// CreateTransactionRequest is the body of POST /transactions
type CreateTransactionRequest struct {
	UserID string                 `json:"user_id" validate:"required,uuid"`
	Amount *Amount                `json:"amount" validate:"required"`
	Type   domain.TransactionType `json:"type" validate:"required,oneof=CREDIT DEBIT"`
}

// ListTransactionsQuery is the query string of GET /transactions
type ListTransactionsQuery struct {
	Type string `form:"type" validate:"omitempty,oneof=CREDIT DEBIT"`
}

// ValidateCreateUser checks a signup body
func ValidateCreateUser(req *CreateUserRequest) []ValidationError {
	return validateStruct(req)
}

// ValidateUpdateUser checks a partial update body
func ValidateUpdateUser(req *UpdateUserRequest) []ValidationError {
	return validateStruct(req)
}

// ValidateLogin checks a login body
func ValidateLogin(req *LoginRequest) []ValidationError {
	return validateStruct(req)
}

// ValidateCreateTransaction checks a ledger entry body; amounts must be non-negative
func ValidateCreateTransaction(req *CreateTransactionRequest) []ValidationError {
	errs := validateStruct(req)
	if req.Amount != nil && req.Amount.Decimal().IsNegative() {
		errs = append(errs, ValidationError{Field: "amount", Message: "Value must be greater than or equal to 0", Type: "gte"})
	}
	return errs
}

// ValidateListTransactions checks the optional type filter
func ValidateListTransactions(q *ListTransactionsQuery) []ValidationError {
	return validateStruct(q)
}

func validateStruct(obj any) []ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Field: "", Message: err.Error(), Type: "invalid"}}
	}
	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: errorMessage(fe),
			Type:    fe.Tag(),
		})
	}
	return out
}

func errorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "uuid":
		return "Must be a valid UUID"
	case "oneof":
		return "Must be one of: " + fe.Param()
	case "min":
		return "Value is too short"
	default:
		return "Invalid value"
	}
}

// respondValidation writes a 400 with the per-field details
func respondValidation(c *gin.Context, errs []ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data", "details": errs})
}
