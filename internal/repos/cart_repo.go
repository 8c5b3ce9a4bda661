package repos

import (
	"github.com/jmoiron/sqlx"
)

type CartRepo struct{ db *sqlx.DB }

func NewCartRepo(db *sqlx.DB) *CartRepo { return &CartRepo{db: db} }

// CartItemRow joins a bag entry with its product. Price comes from the
// products row on every read, never from a copy taken at add time.
type CartItemRow struct {
	ProductID string  `db:"product_id"`
	Title     string  `db:"title"`
	Brand     string  `db:"brand"`
	Size      string  `db:"size"`
	Condition string  `db:"condition"`
	Price     float64 `db:"price"`
	Image     string  `db:"image"`
}

// Add inserts unless the product is already in the bag.
func (r *CartRepo) Add(sessionID, productID string) error {
	_, err := r.db.Exec(`
	  INSERT INTO cart_items(session_id, product_id, created_at)
	  VALUES(?, ?, CURRENT_TIMESTAMP)
	  ON CONFLICT(session_id, product_id) DO NOTHING
	`, sessionID, productID)
	return err
}

// Remove deletes the entry if present; absent ids are a no-op.
func (r *CartRepo) Remove(sessionID, productID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE session_id=? AND product_id=?`, sessionID, productID)
	return err
}

func (r *CartRepo) Clear(sessionID string) error {
	_, err := r.db.Exec(`DELETE FROM cart_items WHERE session_id=?`, sessionID)
	return err
}

func (r *CartRepo) Items(sessionID string) ([]CartItemRow, error) {
	rows := []CartItemRow{}
	err := r.db.Select(&rows, `
	  SELECT p.id AS product_id, p.title, p.brand, p.size, p.condition, p.price, p.image
	  FROM cart_items ci JOIN products p ON p.id = ci.product_id
	  WHERE ci.session_id = ?
	  ORDER BY ci.created_at, p.id
	`, sessionID)
	return rows, err
}

func (r *CartRepo) Count(sessionID string) (int, error) {
	var n int
	err := r.db.Get(&n, `SELECT COUNT(*) FROM cart_items WHERE session_id=?`, sessionID)
	return n, err
}
