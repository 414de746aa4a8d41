package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Beer is the persisted record shape. ID and the two timestamps are
// assigned by the store and never taken from client input.
type Beer struct {
	ID               string          `json:"id"`
	BeerName         string          `json:"beerName"`
	BeerStyle        string          `json:"beerStyle"`
	UPC              string          `json:"upc"`
	QuantityOnHand   int             `json:"quantityOnHand"`
	Price            decimal.Decimal `json:"price"`
	CreatedDate      time.Time       `json:"createdDate"`
	LastModifiedDate time.Time       `json:"lastModifiedDate"`
}

// Customer is the persisted record shape for the customer aggregate.
type Customer struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customerName"`
	CreatedDate      time.Time `json:"createdDate"`
	LastModifiedDate time.Time `json:"lastModifiedDate"`
}

// BeerDTO is the wire shape. Mutable fields are pointers so a patch can
// tell an absent field from an explicit zero value.
type BeerDTO struct {
	ID               string           `json:"id,omitempty"`
	BeerName         *string          `json:"beerName" validate:"required,notblank,min=3,max=255"`
	BeerStyle        *string          `json:"beerStyle" validate:"omitnil,min=1,max=255"`
	UPC              *string          `json:"upc" validate:"omitnil,max=25"`
	QuantityOnHand   *int             `json:"quantityOnHand"`
	Price            *decimal.Decimal `json:"price"`
	CreatedDate      time.Time        `json:"createdDate,omitempty"`
	LastModifiedDate time.Time        `json:"lastModifiedDate,omitempty"`
}

type CustomerDTO struct {
	ID               string    `json:"id,omitempty"`
	CustomerName     *string   `json:"customerName" validate:"required,notblank"`
	CreatedDate      time.Time `json:"createdDate,omitempty"`
	LastModifiedDate time.Time `json:"lastModifiedDate,omitempty"`
}

// BeerToDTO converts a persisted record into its wire shape.
func BeerToDTO(b Beer) BeerDTO {
	name, style, upc := b.BeerName, b.BeerStyle, b.UPC
	qty, price := b.QuantityOnHand, b.Price
	return BeerDTO{
		ID:               b.ID,
		BeerName:         &name,
		BeerStyle:        &style,
		UPC:              &upc,
		QuantityOnHand:   &qty,
		Price:            &price,
		CreatedDate:      b.CreatedDate,
		LastModifiedDate: b.LastModifiedDate,
	}
}

// BeerFromDTO builds a new record from client input on create. Any
// client-supplied ID or timestamp is discarded; the store assigns them.
func BeerFromDTO(dto BeerDTO) Beer {
	var b Beer
	if dto.BeerName != nil {
		b.BeerName = *dto.BeerName
	}
	if dto.BeerStyle != nil {
		b.BeerStyle = *dto.BeerStyle
	}
	if dto.UPC != nil {
		b.UPC = *dto.UPC
	}
	if dto.QuantityOnHand != nil {
		b.QuantityOnHand = *dto.QuantityOnHand
	}
	if dto.Price != nil {
		b.Price = *dto.Price
	}
	return b
}

func CustomerToDTO(c Customer) CustomerDTO {
	name := c.CustomerName
	return CustomerDTO{
		ID:               c.ID,
		CustomerName:     &name,
		CreatedDate:      c.CreatedDate,
		LastModifiedDate: c.LastModifiedDate,
	}
}

func CustomerFromDTO(dto CustomerDTO) Customer {
	var c Customer
	if dto.CustomerName != nil {
		c.CustomerName = *dto.CustomerName
	}
	return c
}
