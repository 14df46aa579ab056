package entity

import (
	"math"

	"github.com/shopspring/decimal"
)

// MoneyDecimalPlaces is the precision of every monetary value in API responses
const MoneyDecimalPlaces = 2

// RoundMoney rounds a float amount to two decimal places, half away from zero.
// Going through decimal avoids float artifacts such as 149.97000000000003.
func RoundMoney(amount float64) float64 {
	return RoundTo(amount, MoneyDecimalPlaces)
}

// RoundTo rounds value to the given number of decimal places.
// NaN and infinities are returned unchanged.
func RoundTo(value float64, places int32) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}
