package models

import "time"

// MergeBeerUpdate applies full-replace semantics: every mutable field is
// taken from the DTO unconditionally, so an absent field clears the stored
// value. ID and CreatedDate are carried from the existing record;
// LastModifiedDate is refreshed to now.
func MergeBeerUpdate(existing Beer, dto BeerDTO, now time.Time) Beer {
	b := BeerFromDTO(dto)
	b.ID = existing.ID
	b.CreatedDate = existing.CreatedDate
	b.LastModifiedDate = now
	return b
}

// MergeBeerPatch applies per-field null-coalescing: a non-nil DTO field
// overwrites, a nil field keeps the existing value. Each field is decided
// independently.
func MergeBeerPatch(existing Beer, dto BeerDTO, now time.Time) Beer {
	b := existing
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
	b.LastModifiedDate = now
	return b
}

func MergeCustomerUpdate(existing Customer, dto CustomerDTO, now time.Time) Customer {
	c := CustomerFromDTO(dto)
	c.ID = existing.ID
	c.CreatedDate = existing.CreatedDate
	c.LastModifiedDate = now
	return c
}

func MergeCustomerPatch(existing Customer, dto CustomerDTO, now time.Time) Customer {
	c := existing
	if dto.CustomerName != nil {
		c.CustomerName = *dto.CustomerName
	}
	c.LastModifiedDate = now
	return c
}
