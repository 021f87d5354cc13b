package repository

import (
	"context"
	"strings"
	"time"

	"sifted_back_end/internal/database"
	"sifted_back_end/internal/models"

	"github.com/gocql/gocql"
)

// ProductRepository is the storage boundary for the catalog. The handlers
// only see this interface so tests can swap in an in-memory fake.
type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, category string) ([]models.Product, error)
	GetByID(ctx context.Context, id gocql.UUID) (models.Product, error)
	Search(ctx context.Context, query string) ([]models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p models.Product) error
	Delete(ctx context.Context, id gocql.UUID) error
}

type ScyllaProductRepository struct{}

func NewScyllaProductRepository() *ScyllaProductRepository {
	return &ScyllaProductRepository{}
}

const productColumns = `product_id, name, price, description, category, image_url, created_at, updated_at`

func scanProducts(iter *gocql.Iter) ([]models.Product, error) {
	var products []models.Product
	var p models.Product

	for iter.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Category, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{} // reset for the next row
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ScyllaProductRepository) List(ctx context.Context) ([]models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return nil, err
	}

	iter := session.Query(`SELECT ` + productColumns + ` FROM products`).WithContext(ctx).Iter()
	return scanProducts(iter)
}

// ListByCategory filters in memory. The menu is a few dozen rows, a scan is
// cheaper than maintaining a products_by_category table for it.
func (r *ScyllaProductRepository) ListByCategory(ctx context.Context, category string) ([]models.Product, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	for _, p := range all {
		if p.Category == category {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *ScyllaProductRepository) GetByID(ctx context.Context, id gocql.UUID) (models.Product, error) {
	session, err := database.GetProductsSession()
	if err != nil {
		return models.Product{}, err
	}

	var p models.Product
	err = session.Query(`SELECT `+productColumns+` FROM products WHERE product_id = ?`, id).
		WithContext(ctx).
		Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Category, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return models.Product{}, err
	}
	return p, nil
}

// Search is the database fallback used when Elasticsearch is empty or down.
func (r *ScyllaProductRepository) Search(ctx context.Context, query string) ([]models.Product, error) {
	all, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(query)
	var products []models.Product
	for _, p := range all {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			products = append(products, p)
		}
	}
	return products, nil
}

func (r *ScyllaProductRepository) Create(ctx context.Context, p *models.Product) error {
	session, err := database.GetProductsSession()
	if err != nil {
		return err
	}

	p.ID = gocql.TimeUUID()
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	return session.Query(`INSERT INTO products (`+productColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Price, p.Description, p.Category, p.ImageURL, p.CreatedAt, p.UpdatedAt).
		WithContext(ctx).Exec()
}

func (r *ScyllaProductRepository) Update(ctx context.Context, p models.Product) error {
	session, err := database.GetProductsSession()
	if err != nil {
		return err
	}

	return session.Query(`UPDATE products SET name = ?, price = ?, description = ?, category = ?, image_url = ?, updated_at = ? WHERE product_id = ?`,
		p.Name, p.Price, p.Description, p.Category, p.ImageURL, time.Now(), p.ID).
		WithContext(ctx).Exec()
}

func (r *ScyllaProductRepository) Delete(ctx context.Context, id gocql.UUID) error {
	session, err := database.GetProductsSession()
	if err != nil {
		return err
	}

	return session.Query(`DELETE FROM products WHERE product_id = ?`, id).WithContext(ctx).Exec()
}
