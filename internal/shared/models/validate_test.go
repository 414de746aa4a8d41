package models

import (
	"strings"
	"testing"
)

func TestValidateBeerDTO(t *testing.T) {
	cases := []struct {
		name      string
		dto       BeerDTO
		wantField string
	}{
		{"valid", BeerDTO{BeerName: strptr("Galaxy Cat")}, ""},
		{"missing name", BeerDTO{}, "beerName"},
		{"blank name", BeerDTO{BeerName: strptr("   ")}, "beerName"},
		{"name too short", BeerDTO{BeerName: strptr("ab")}, "beerName"},
		{"name too long", BeerDTO{BeerName: strptr(strings.Repeat("x", 256))}, "beerName"},
		{"nil style ok", BeerDTO{BeerName: strptr("Galaxy Cat")}, ""},
		{"empty style", BeerDTO{BeerName: strptr("Galaxy Cat"), BeerStyle: strptr("")}, "beerStyle"},
		{"style too long", BeerDTO{BeerName: strptr("Galaxy Cat"), BeerStyle: strptr(strings.Repeat("x", 256))}, "beerStyle"},
		{"upc too long", BeerDTO{BeerName: strptr("Galaxy Cat"), UPC: strptr(strings.Repeat("1", 26))}, "upc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fe := Validate(tc.dto)
			if tc.wantField == "" {
				if fe != nil {
					t.Fatalf("expected valid, got %v", fe)
				}
				return
			}
			if fe == nil {
				t.Fatalf("expected violation on %s", tc.wantField)
			}
			if _, ok := fe[tc.wantField]; !ok {
				t.Fatalf("expected %s in %v", tc.wantField, fe)
			}
		})
	}
}

func TestValidateCustomerDTO(t *testing.T) {
	if fe := Validate(CustomerDTO{CustomerName: strptr("John Doe")}); fe != nil {
		t.Fatalf("expected valid, got %v", fe)
	}
	if fe := Validate(CustomerDTO{}); fe == nil {
		t.Fatal("missing name must fail")
	}
	if fe := Validate(CustomerDTO{CustomerName: strptr("   ")}); fe == nil {
		t.Fatal("whitespace-only name must fail")
	}
	fe := Validate(CustomerDTO{CustomerName: strptr("")})
	if fe == nil {
		t.Fatal("empty name must fail")
	}
	if _, ok := fe["customerName"]; !ok {
		t.Fatalf("violation should use the json field name: %v", fe)
	}
	if fe.Error() == "" {
		t.Fatal("field errors must render a message")
	}
}
