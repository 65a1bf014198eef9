package entity

// CartItem is one line of the cart. UnitPrice is a snapshot taken when
// the product was first added; it is not re-fetched from the catalog.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Title     string  `json:"title"`
	UnitPrice float64 `json:"unit_price"`
	ImageURL  string  `json:"image_url"`
	Quantity  int     `json:"quantity"`
}

// LineTotal is the cost of this line at its snapshot price.
func (i CartItem) LineTotal() float64 {
	return float64(i.Quantity) * i.UnitPrice
}

// CartActionType enumerates the closed set of cart transitions.
type CartActionType int

const (
	CartActionAdd CartActionType = iota
	CartActionRemove
	CartActionSetQuantity
	CartActionClear
)

// CartAction is a single requested transition. Which fields are read
// depends on Type; construct actions through the helpers below.
type CartAction struct {
	Type      CartActionType
	Item      CartItem
	ProductID string
	Quantity  int
}

func AddAction(item CartItem) CartAction {
	return CartAction{Type: CartActionAdd, Item: item}
}

func RemoveAction(productID string) CartAction {
	return CartAction{Type: CartActionRemove, ProductID: productID}
}

func SetQuantityAction(productID string, quantity int) CartAction {
	return CartAction{Type: CartActionSetQuantity, ProductID: productID, Quantity: quantity}
}

func ClearAction() CartAction {
	return CartAction{Type: CartActionClear}
}

// Cart holds the session's line items in first-add order, keyed by
// product ID. Totals are always derived from Items, never stored.
type Cart struct {
	Items []CartItem `json:"items"`
}

func NewCart() *Cart {
	return &Cart{Items: make([]CartItem, 0)}
}

// GetItem returns the line for productID and its index, or (nil, -1).
func (c *Cart) GetItem(productID string) (*CartItem, int) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i], i
		}
	}
	return nil, -1
}

// Apply runs one transition against the cart. All transitions are
// total: unknown product IDs make Remove and SetQuantity no-ops.
//
// Add merges into an existing line by quantity and keeps the existing
// snapshot price and position; otherwise the item is appended. A line
// whose quantity would end up non-positive is dropped rather than
// stored, so Items never holds a quantity below 1.
func (c *Cart) Apply(action CartAction) {
	switch action.Type {
	case CartActionAdd:
		existing, idx := c.GetItem(action.Item.ProductID)
		if existing != nil {
			existing.Quantity += action.Item.Quantity
			if existing.Quantity <= 0 {
				c.removeAt(idx)
			}
			return
		}
		if action.Item.Quantity <= 0 {
			return
		}
		c.Items = append(c.Items, action.Item)

	case CartActionRemove:
		if _, idx := c.GetItem(action.ProductID); idx >= 0 {
			c.removeAt(idx)
		}

	case CartActionSetQuantity:
		item, idx := c.GetItem(action.ProductID)
		if item == nil {
			return
		}
		if action.Quantity <= 0 {
			c.removeAt(idx)
			return
		}
		item.Quantity = action.Quantity

	case CartActionClear:
		c.Items = make([]CartItem, 0)
	}
}

func (c *Cart) removeAt(idx int) {
	c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
}

// TotalQty is the sum of all line quantities.
func (c *Cart) TotalQty() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

// TotalCost is the sum of all line totals at snapshot prices.
func (c *Cart) TotalCost() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.LineTotal()
	}
	return total
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
