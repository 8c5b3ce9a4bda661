package repos

import (
	"pickl/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, title, brand, size, price, original_price, image, description,
  category, condition, liked, pos, COALESCE(created_at,'') AS created_at`

// List returns the catalog most-recent-listing-first: new items are
// inserted at min(pos)-1, the seed catalog keeps positions 1..6.
func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY pos ASC`)
	return out, err
}

func (r *ProductRepo) Get(id string) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

// Liked returns the products the user has hearted, in feed order.
func (r *ProductRepo) Liked() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products WHERE liked = 1 ORDER BY pos ASC`)
	return out, err
}

// ToggleLiked flips the liked flag in place. A missing id is a safe
// no-op; found reports whether a row changed.
func (r *ProductRepo) ToggleLiked(id string) (found bool, err error) {
	res, err := r.db.Exec(`UPDATE products SET liked = NOT liked WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// Insert prepends a listing to the catalog. The id must be fresh; a
// collision surfaces as a unique-constraint error.
func (r *ProductRepo) Insert(p domain.Product) error {
	_, err := r.db.Exec(`
	  INSERT INTO products(id,title,brand,size,price,original_price,image,description,category,condition,liked,pos)
	  VALUES(?,?,?,?,?,?,?,?,?,?,?,
	    (SELECT COALESCE(MIN(pos),1)-1 FROM products))
	`, p.ID, p.Title, p.Brand, p.Size, p.Price, p.OriginalPrice, p.Image, p.Description, p.Category, p.Condition, p.Liked)
	return err
}
