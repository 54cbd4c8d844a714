package repo

import "github.com/shopspring/decimal"

type BestSellingProduct struct {
	Title     string `json:"title"`
	UnitsSold int    `json:"units_sold"`
}

type Metrics struct {
	TotalOrders        int                `json:"total_orders"`
	ItemsSold          int                `json:"items_sold"`
	Revenue            decimal.Decimal    `json:"revenue"`
	BestSellingProduct BestSellingProduct `json:"best_selling_product"`
}
