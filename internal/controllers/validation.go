package controllers

import (
	"strconv"
	"strings"

	"tokoadmin/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Drafts are validated after trimming the text fields that must not be blank.
// Passwords are only required to be present.

type storeForm struct {
	Name string `validate:"required"`
}

type productForm struct {
	Name  string `validate:"required"`
	Price string `validate:"required,numeric"`
	Stock string `validate:"required,numeric"`
}

type employeeForm struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

func validStoreDraft(d StoreDraft) bool {
	return validate.Struct(storeForm{Name: strings.TrimSpace(d.Name)}) == nil
}

func validEmployeeDraft(d EmployeeDraft) bool {
	return validate.Struct(employeeForm{
		Username: strings.TrimSpace(d.Username),
		Password: d.Password,
	}) == nil
}

// productFromDraft validates d and converts it into the record sent to the
// server. No range check is applied to price or stock.
func productFromDraft(d ProductDraft, storeID models.ID) (models.Product, bool) {
	form := productForm{
		Name:  strings.TrimSpace(d.Name),
		Price: strings.TrimSpace(d.Price),
		Stock: strings.TrimSpace(d.Stock),
	}
	if err := validate.Struct(form); err != nil {
		return models.Product{}, false
	}
	price, err := decimal.NewFromString(form.Price)
	if err != nil {
		return models.Product{}, false
	}
	stock, err := strconv.Atoi(form.Stock)
	if err != nil {
		return models.Product{}, false
	}
	return models.Product{
		ID:      d.ID,
		Name:    d.Name,
		Price:   price,
		Stock:   stock,
		StoreID: storeID,
	}, true
}
