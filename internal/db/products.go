package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/marcus/shopdesk/internal/models"
)

// ListProductsOptions controls filtering and ordering for ListProducts
type ListProductsOptions struct {
	Status   []models.ProductStatus
	Search   string // substring match on sku, name, description
	SortBy   string // "name", "price", "stock", "updated" (default "name")
	SortDesc bool
}

// CreateProduct inserts a new product, assigning an ID and timestamps
func (db *DB) CreateProduct(p *models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("product name is required")
	}
	if p.SKU == "" {
		return fmt.Errorf("product sku is required")
	}
	if p.Status == "" {
		p.Status = models.ProductActive
	}
	if !models.IsValidProductStatus(p.Status) {
		return fmt.Errorf("invalid product status: %s", p.Status)
	}

	id, err := generateProductID()
	if err != nil {
		return fmt.Errorf("generate id: %w", err)
	}
	p.ID = id

	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	return db.withWriteLock(func() error {
		_, err := db.conn.Exec(`
			INSERT INTO products (id, sku, name, description, price_cents, stock, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.SKU, p.Name, p.Description, p.PriceCents, p.Stock, string(p.Status), p.CreatedAt, p.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		return nil
	})
}

// GetProduct fetches a product by ID
func (db *DB) GetProduct(id string) (*models.Product, error) {
	row := db.conn.QueryRow(`
		SELECT id, sku, name, description, price_cents, stock, status, created_at, updated_at
		FROM products WHERE id = ?`, NormalizeProductID(id))
	return scanProduct(row)
}

// UpdateProduct persists changes to an existing product
func (db *DB) UpdateProduct(p *models.Product) error {
	if p.ID == "" {
		return fmt.Errorf("product id is required")
	}
	if !models.IsValidProductStatus(p.Status) {
		return fmt.Errorf("invalid product status: %s", p.Status)
	}
	p.UpdatedAt = time.Now().UTC()

	return db.withWriteLock(func() error {
		res, err := db.conn.Exec(`
			UPDATE products
			SET sku = ?, name = ?, description = ?, price_cents = ?, stock = ?, status = ?, updated_at = ?
			WHERE id = ?`,
			p.SKU, p.Name, p.Description, p.PriceCents, p.Stock, string(p.Status), p.UpdatedAt, p.ID)
		if err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		return requireRow(res, "product", p.ID)
	})
}

// SetProductStatus transitions a product to the given status
func (db *DB) SetProductStatus(id string, status models.ProductStatus) error {
	if !models.IsValidProductStatus(status) {
		return fmt.Errorf("invalid product status: %s", status)
	}
	return db.withWriteLock(func() error {
		res, err := db.conn.Exec(`
			UPDATE products SET status = ?, updated_at = ? WHERE id = ?`,
			string(status), time.Now().UTC(), NormalizeProductID(id))
		if err != nil {
			return fmt.Errorf("set product status: %w", err)
		}
		return requireRow(res, "product", id)
	})
}

// AdjustStock changes a product's stock level by delta. Stock never goes
// negative; an adjustment below zero clamps to zero.
func (db *DB) AdjustStock(id string, delta int) (int, error) {
	id = NormalizeProductID(id)
	var newStock int
	err := db.withWriteLock(func() error {
		res, err := db.conn.Exec(`
			UPDATE products SET stock = MAX(0, stock + ?), updated_at = ? WHERE id = ?`,
			delta, time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("adjust stock: %w", err)
		}
		if err := requireRow(res, "product", id); err != nil {
			return err
		}
		return db.conn.QueryRow(`SELECT stock FROM products WHERE id = ?`, id).Scan(&newStock)
	})
	return newStock, err
}

// ListProducts returns products matching the options
func (db *DB) ListProducts(opts ListProductsOptions) ([]models.Product, error) {
	query := `
		SELECT id, sku, name, description, price_cents, stock, status, created_at, updated_at
		FROM products WHERE 1=1`
	var args []any

	if len(opts.Status) > 0 {
		query += " AND status IN (" + placeholders(len(opts.Status)) + ")"
		for _, s := range opts.Status {
			args = append(args, string(s))
		}
	}
	if opts.Search != "" {
		query += " AND (sku LIKE ? OR name LIKE ? OR description LIKE ?)"
		like := "%" + opts.Search + "%"
		args = append(args, like, like, like)
	}

	query += " ORDER BY " + productSortColumn(opts.SortBy)
	if opts.SortDesc {
		query += " DESC"
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProductRows(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// DeleteProduct removes a product and its reviews
func (db *DB) DeleteProduct(id string) error {
	id = NormalizeProductID(id)
	return db.withWriteLock(func() error {
		if _, err := db.conn.Exec(`DELETE FROM reviews WHERE product_id = ?`, id); err != nil {
			return fmt.Errorf("delete product reviews: %w", err)
		}
		res, err := db.conn.Exec(`DELETE FROM products WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		return requireRow(res, "product", id)
	})
}

func productSortColumn(sortBy string) string {
	switch sortBy {
	case "price":
		return "price_cents"
	case "stock":
		return "stock"
	case "updated":
		return "updated_at"
	default:
		return "name COLLATE NOCASE"
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row *sql.Row) (*models.Product, error) {
	p, err := scanProductRows(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("product not found")
	}
	return p, err
}

func scanProductRows(row rowScanner) (*models.Product, error) {
	var p models.Product
	var status string
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.PriceCents, &p.Stock, &status, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Status = models.ProductStatus(status)
	return &p, nil
}

// requireRow converts a zero-row update/delete into a not-found error
func requireRow(res sql.Result, entity, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s not found: %s", entity, id)
	}
	return nil
}

// placeholders returns n comma-separated SQL placeholders
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	s := "?"
	for i := 1; i < n; i++ {
		s += ", ?"
	}
	return s
}
