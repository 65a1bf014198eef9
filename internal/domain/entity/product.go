package entity

import "math"

// Product is a catalog product as served by the online-shop API.
// Products are read-only on this side; the catalog owns them.
type Product struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Price           float64  `json:"price"`
	DiscountedPrice float64  `json:"discountedPrice"`
	Image           Image    `json:"image"`
	Rating          float64  `json:"rating"`
	Tags            []string `json:"tags"`
	Reviews         []Review `json:"reviews"`
}

type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

type Review struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Rating      int    `json:"rating"`
	Description string `json:"description"`
}

// EffectivePrice is the price a buyer actually pays: the discounted
// price when one is set, the base price otherwise.
func (p Product) EffectivePrice() float64 {
	if p.DiscountedPrice > 0 {
		return p.DiscountedPrice
	}
	return p.Price
}

// HasDiscount reports whether the product is currently discounted.
// Equal prices mean no discount.
func (p Product) HasDiscount() bool {
	return p.DiscountedPrice > 0 && p.DiscountedPrice < p.Price
}

// DiscountPercent returns the rounded discount percentage, 0 when the
// product is not discounted.
func (p Product) DiscountPercent() int {
	if !p.HasDiscount() {
		return 0
	}
	return int(math.Round((1 - p.DiscountedPrice/p.Price) * 100))
}
