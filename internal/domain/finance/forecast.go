package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTotal is the summed amount of one forecast month
type MonthlyTotal struct {
	Month time.Month
	Total decimal.Decimal
}

// BuildMonthlyForecast sums amounts per forecast month. Months keep the
// order in which they are first seen in obligations; months without
// entries are absent.
func BuildMonthlyForecast(obligations []Obligation) []MonthlyTotal {
	totals := make([]MonthlyTotal, 0)
	index := make(map[time.Month]int)

	for _, o := range obligations {
		month := o.ForecastDate.Month()
		i, seen := index[month]
		if !seen {
			index[month] = len(totals)
			totals = append(totals, MonthlyTotal{Month: month, Total: o.Amount})
			continue
		}
		totals[i].Total = totals[i].Total.Add(o.Amount)
	}

	return totals
}
