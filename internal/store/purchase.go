package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tfields/pantrymate/internal/lexicon"
	"github.com/tfields/pantrymate/internal/model"
)

type PurchaseStore struct {
	db *sql.DB
}

func NewPurchaseStore(db *sql.DB) *PurchaseStore {
	return &PurchaseStore{db: db}
}

// Commit moves the given grocery items into a single immutable purchase
// record dated date ("YYYY-MM-DD"). Each item's expired_date is fixed
// here, once, from the shelf-life table; items with no matching entry
// get an empty expired_date. Item ids that no longer exist are ignored.
// Returns nil if none of the ids matched a list row.
func (s *PurchaseStore) Commit(itemIDs []int64, date string) (*model.PurchaseRecord, error) {
	purchaseDate, err := time.Parse(model.DateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("parse purchase date: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin commit: %w", err)
	}
	defer tx.Rollback()

	var items []model.PurchasedItem
	var foundIDs []int64
	for _, id := range itemIDs {
		row := tx.QueryRow(`SELECT `+itemCols+` FROM grocery_items WHERE id = ?`, id)
		item, err := scanItem(row)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load item %d: %w", id, err)
		}

		expiredDate := ""
		if life, ok := lexicon.FindShelfLife(item.Name, lexicon.ShelfLife); ok {
			expiredDate = purchaseDate.AddDate(0, 0, life).Format(model.DateLayout)
		}

		items = append(items, model.PurchasedItem{
			Name:        item.Name,
			Category:    item.Category,
			Quantity:    item.Quantity,
			AddedDate:   item.AddedDate,
			ExpiredDate: expiredDate,
		})
		foundIDs = append(foundIDs, id)
	}
	if len(items) == 0 {
		return nil, nil
	}

	result, err := tx.Exec(`INSERT INTO purchase_records (purchase_date) VALUES (?)`, date)
	if err != nil {
		return nil, fmt.Errorf("insert record: %w", err)
	}
	recordID, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("record id: %w", err)
	}

	for _, item := range items {
		_, err := tx.Exec(
			`INSERT INTO purchase_items (record_id, name, category, quantity, added_date, expired_date) VALUES (?, ?, ?, ?, ?, ?)`,
			recordID, item.Name, item.Category, item.Quantity, item.AddedDate, item.ExpiredDate,
		)
		if err != nil {
			return nil, fmt.Errorf("insert purchase item: %w", err)
		}
	}

	for _, id := range foundIDs {
		if _, err := tx.Exec(`DELETE FROM grocery_items WHERE id = ?`, id); err != nil {
			return nil, fmt.Errorf("remove purchased item %d: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit purchase: %w", err)
	}

	return &model.PurchaseRecord{ID: recordID, Date: date, Items: items}, nil
}

// CreateRecord inserts a purchase record verbatim, without touching the
// grocery list. Used by snapshot import.
func (s *PurchaseStore) CreateRecord(record model.PurchaseRecord) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin create record: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`INSERT INTO purchase_records (purchase_date) VALUES (?)`, record.Date)
	if err != nil {
		return fmt.Errorf("insert record: %w", err)
	}
	recordID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("record id: %w", err)
	}

	for _, item := range record.Items {
		_, err := tx.Exec(
			`INSERT INTO purchase_items (record_id, name, category, quantity, added_date, expired_date) VALUES (?, ?, ?, ?, ?, ?)`,
			recordID, item.Name, item.Category, item.Quantity, item.AddedDate, item.ExpiredDate,
		)
		if err != nil {
			return fmt.Errorf("insert purchase item: %w", err)
		}
	}

	return tx.Commit()
}

// ListRecords returns the purchase history, newest record first; items
// within a record keep their insert order.
func (s *PurchaseStore) ListRecords() ([]model.PurchaseRecord, error) {
	rows, err := s.db.Query(`SELECT id, purchase_date FROM purchase_records ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []model.PurchaseRecord
	for rows.Next() {
		var r model.PurchaseRecord
		if err := rows.Scan(&r.ID, &r.Date); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range records {
		items, err := s.listRecordItems(records[i].ID)
		if err != nil {
			return nil, err
		}
		records[i].Items = items
	}
	return records, nil
}

func (s *PurchaseStore) listRecordItems(recordID int64) ([]model.PurchasedItem, error) {
	rows, err := s.db.Query(
		`SELECT name, category, quantity, added_date, expired_date FROM purchase_items WHERE record_id = ? ORDER BY id ASC`,
		recordID,
	)
	if err != nil {
		return nil, fmt.Errorf("list record items: %w", err)
	}
	defer rows.Close()

	var items []model.PurchasedItem
	for rows.Next() {
		var item model.PurchasedItem
		if err := rows.Scan(&item.Name, &item.Category, &item.Quantity, &item.AddedDate, &item.ExpiredDate); err != nil {
			return nil, fmt.Errorf("scan purchase item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// DeleteAll clears the purchase history. Used by snapshot import.
func (s *PurchaseStore) DeleteAll() error {
	if _, err := s.db.Exec(`DELETE FROM purchase_items`); err != nil {
		return fmt.Errorf("delete purchase items: %w", err)
	}
	if _, err := s.db.Exec(`DELETE FROM purchase_records`); err != nil {
		return fmt.Errorf("delete purchase records: %w", err)
	}
	return nil
}
