package store

import (
	"database/sql"
	"fmt"

	"github.com/tfields/pantrymate/internal/model"
)

type GroceryStore struct {
	db *sql.DB
}

func NewGroceryStore(db *sql.DB) *GroceryStore {
	return &GroceryStore{db: db}
}

func scanItem(scanner interface{ Scan(...any) error }) (*model.GroceryItem, error) {
	var item model.GroceryItem
	var purchased int

	err := scanner.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &item.AddedDate, &purchased)
	if err != nil {
		return nil, err
	}

	item.Purchased = purchased != 0
	return &item, nil
}

const itemCols = `id, name, category, quantity, added_date, purchased`

func (s *GroceryStore) GetItemByID(id int64) (*model.GroceryItem, error) {
	row := s.db.QueryRow(`SELECT `+itemCols+` FROM grocery_items WHERE id = ?`, id)
	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}
	return item, nil
}

func (s *GroceryStore) CreateItem(name, category string, quantity int, addedDate string) (*model.GroceryItem, error) {
	result, err := s.db.Exec(
		`INSERT INTO grocery_items (name, category, quantity, added_date) VALUES (?, ?, ?, ?)`,
		name, category, quantity, addedDate,
	)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.GetItemByID(id)
}

// ListItems returns the current grocery list, newest first.
func (s *GroceryStore) ListItems() ([]model.GroceryItem, error) {
	rows, err := s.db.Query(`SELECT ` + itemCols + ` FROM grocery_items ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []model.GroceryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *GroceryStore) UpdateItem(id int64, name, category string, quantity int) (*model.GroceryItem, error) {
	_, err := s.db.Exec(
		`UPDATE grocery_items SET name = ?, category = ?, quantity = ? WHERE id = ?`,
		name, category, quantity, id,
	)
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return s.GetItemByID(id)
}

// ReplaceName overwrites only the item's name, keeping category and
// quantity. Used when a substitution suggestion is applied.
func (s *GroceryStore) ReplaceName(id int64, name string) (*model.GroceryItem, error) {
	_, err := s.db.Exec(`UPDATE grocery_items SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return nil, fmt.Errorf("replace name: %w", err)
	}
	return s.GetItemByID(id)
}

func (s *GroceryStore) SetPurchased(id int64, purchased bool) (*model.GroceryItem, error) {
	item, err := s.GetItemByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, nil
	}

	flag := 0
	if purchased {
		flag = 1
	}
	if _, err := s.db.Exec(`UPDATE grocery_items SET purchased = ? WHERE id = ?`, flag, id); err != nil {
		return nil, fmt.Errorf("set purchased: %w", err)
	}
	return s.GetItemByID(id)
}

func (s *GroceryStore) DeleteItem(id int64) error {
	_, err := s.db.Exec(`DELETE FROM grocery_items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// ImportItem inserts an item preserving its id and purchased flag.
// Used by snapshot import; an id of zero lets SQLite assign one.
func (s *GroceryStore) ImportItem(item model.GroceryItem) error {
	var id any
	if item.ID != 0 {
		id = item.ID
	}
	flag := 0
	if item.Purchased {
		flag = 1
	}
	_, err := s.db.Exec(
		`INSERT INTO grocery_items (id, name, category, quantity, added_date, purchased) VALUES (?, ?, ?, ?, ?, ?)`,
		id, item.Name, item.Category, item.Quantity, item.AddedDate, flag,
	)
	if err != nil {
		return fmt.Errorf("import item: %w", err)
	}
	return nil
}

// DeleteAll clears the grocery list. Used by snapshot import.
func (s *GroceryStore) DeleteAll() error {
	_, err := s.db.Exec(`DELETE FROM grocery_items`)
	if err != nil {
		return fmt.Errorf("delete all items: %w", err)
	}
	return nil
}
