package models

import "github.com/shopspring/decimal"

// RoundMoney rounds an amount to two decimal places
func RoundMoney(amount float64) float64 {
	return decimal.NewFromFloat(amount).Round(2).InexactFloat64()
}

// LineSubtotal returns price*quantity rounded to two decimal places
func LineSubtotal(price float64, quantity int) float64 {
	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2).
		InexactFloat64()
}

// SumMoney adds amounts exactly and rounds the result to two decimal places
func SumMoney(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	return total.Round(2).InexactFloat64()
}

// CartTotal sums the subtotals of the given lines
func CartTotal(lines []CartLine) float64 {
	amounts := make([]float64, len(lines))
	for i, line := range lines {
		amounts[i] = line.Subtotal
	}
	return SumMoney(amounts...)
}
