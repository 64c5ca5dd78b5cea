package models

import "testing"

func TestRecalcTotals(t *testing.T) {
	p := Product{PriceUSD: 2.5, PriceLRD: 487.5, QuantityInStock: 4}
	p.RecalcTotals()
	if p.TotalValueUSD != 10 {
		t.Errorf("TotalValueUSD sai: got %v, want 10", p.TotalValueUSD)
	}
	if p.TotalValueLRD != 1950 {
		t.Errorf("TotalValueLRD sai: got %v, want 1950", p.TotalValueLRD)
	}

	p.QuantityInStock = 0
	p.RecalcTotals()
	if p.TotalValueUSD != 0 || p.TotalValueLRD != 0 {
		t.Errorf("Tồn kho 0 phải cho tổng giá trị 0: USD=%v LRD=%v", p.TotalValueUSD, p.TotalValueLRD)
	}
}
