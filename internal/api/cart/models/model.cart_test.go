package models

import "testing"

func TestRecalcTotals(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{Quantity: 2, PriceUSD: 10, PriceLRD: 1950},
			{Quantity: 3, PriceUSD: 5, PriceLRD: 975},
		},
	}
	cart.RecalcTotals()
	if cart.TotalUSD != 35 {
		t.Errorf("TotalUSD sai: got %v, want 35", cart.TotalUSD)
	}
	if cart.TotalLRD != 6825 {
		t.Errorf("TotalLRD sai: got %v, want 6825", cart.TotalLRD)
	}

	// Giỏ rỗng về 0
	cart.Items = nil
	cart.RecalcTotals()
	if cart.TotalUSD != 0 || cart.TotalLRD != 0 {
		t.Errorf("Giỏ rỗng phải có tổng 0: USD=%v LRD=%v", cart.TotalUSD, cart.TotalLRD)
	}
}

func TestCanTransition(t *testing.T) {
	allowed := [][2]string{
		{CartStatusPending, CartStatusPaid},
		{CartStatusPending, CartStatusCancelled},
		{CartStatusPaid, CartStatusProcessing},
		{CartStatusProcessing, CartStatusShipped},
		{CartStatusShipped, CartStatusDelivered},
	}
	for _, pair := range allowed {
		if !CanTransition(pair[0], pair[1]) {
			t.Errorf("Chuyển %s -> %s phải hợp lệ", pair[0], pair[1])
		}
	}

	denied := [][2]string{
		{CartStatusPending, CartStatusShipped},
		{CartStatusDelivered, CartStatusPending},
		{CartStatusCancelled, CartStatusPaid},
		{CartStatusShipped, CartStatusCancelled},
		{"unknown", CartStatusPaid},
	}
	for _, pair := range denied {
		if CanTransition(pair[0], pair[1]) {
			t.Errorf("Chuyển %s -> %s phải bị từ chối", pair[0], pair[1])
		}
	}
}
