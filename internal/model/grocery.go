package model

// DateLayout is the wire format for calendar dates ("YYYY-MM-DD").
// Dates stay strings through the model so a document with a malformed
// date still loads; parsing happens where the value is consumed.
const DateLayout = "2006-01-02"

type GroceryItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Quantity  int    `json:"quantity"`
	AddedDate string `json:"added_date"`
	Purchased bool   `json:"purchased"`
}

// PurchaseRecord is an immutable snapshot of one checkout. The ID is a
// storage detail and stays out of the exported document.
type PurchaseRecord struct {
	ID    int64           `json:"-"`
	Date  string          `json:"date"`
	Items []PurchasedItem `json:"items"`
}

// PurchasedItem captures a grocery item as it was at purchase time.
// ExpiredDate is computed once when the purchase is committed and never
// recomputed; empty means no shelf-life entry matched.
type PurchasedItem struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Quantity    int    `json:"quantity"`
	AddedDate   string `json:"added_date"`
	ExpiredDate string `json:"expired_date"`
}

type Settings struct {
	AutoSuggest bool `json:"auto_suggest"`
}
