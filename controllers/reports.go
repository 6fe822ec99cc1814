package controllers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"shoppos/store"
)

// ReportsController aggregates the receipt log. Read-only.
type ReportsController struct {
	receipts *store.ReceiptStore
}

func NewReportsController(receipts *store.ReceiptStore) *ReportsController {
	return &ReportsController{receipts: receipts}
}

type daySales struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
	Count int     `json:"count"`
}

type itemSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

func (r *ReportsController) SalesReport(c *gin.Context) {
	byDay := make(map[string]*daySales)
	byItem := make(map[string]*itemSales)

	for _, receipt := range r.receipts.List() {
		day, ok := byDay[receipt.Date]
		if !ok {
			day = &daySales{Date: receipt.Date}
			byDay[receipt.Date] = day
		}
		day.Total += receipt.Total
		day.Count++

		for _, line := range receipt.Items {
			item, ok := byItem[line.Name]
			if !ok {
				item = &itemSales{Name: line.Name}
				byItem[line.Name] = item
			}
			item.Quantity += line.Quantity
			item.Revenue += line.Price * float64(line.Quantity)
		}
	}

	days := make([]daySales, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date > days[j].Date })

	items := make([]itemSales, 0, len(byItem))
	for _, i := range byItem {
		items = append(items, *i)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Quantity > items[j].Quantity })
	if len(items) > 5 {
		items = items[:5]
	}

	c.JSON(http.StatusOK, gin.H{
		"salesByDay": days,
		"topSelling": items,
	})
}
