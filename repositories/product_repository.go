package repositories

import (
	"context"
	"time"

	"farmconnect/config"
	"farmconnect/models"
)

type ProductRepository struct{}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{}
}

func (r *ProductRepository) Create(product *models.Product) error {
	query := `
		INSERT INTO products (farmer_id, name, description, price, image_url, unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`
	now := time.Now()
	return config.DB.QueryRow(context.Background(), query,
		product.FarmerID,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		product.Unit,
		now,
		now,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *ProductRepository) FindAll(page, limit int) ([]models.Product, int, error) {
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(context.Background(), `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, farmer_id, name, description, price, image_url, unit, created_at, updated_at
	          FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`

	rows, err := config.DB.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.FarmerID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Unit, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, 0, err
		}
		products = append(products, p)
	}
	return products, total, nil
}

func (r *ProductRepository) FindByID(id int) (*models.Product, error) {
	query := `SELECT id, farmer_id, name, description, price, image_url, unit, created_at, updated_at
	          FROM products WHERE id = $1`

	var p models.Product
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.FarmerID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Unit, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindByFarmer(farmerID int) ([]models.Product, error) {
	query := `SELECT id, farmer_id, name, description, price, image_url, unit, created_at, updated_at
	          FROM products WHERE farmer_id = $1 ORDER BY created_at DESC`

	rows, err := config.DB.Query(context.Background(), query, farmerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.FarmerID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Unit, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *ProductRepository) Update(product *models.Product) error {
	query := `UPDATE products SET name = $1, description = $2, price = $3, image_url = $4,
	          unit = $5, updated_at = $6 WHERE id = $7`
	_, err := config.DB.Exec(context.Background(), query,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		product.Unit,
		time.Now(),
		product.ID,
	)
	return err
}

func (r *ProductRepository) Delete(id int) error {
	_, err := config.DB.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	return err
}

// CountOwnedByFarmer reports how many of the given product ids belong to the
// farmer. Used to enforce that post-attached products are the poster's own.
func (r *ProductRepository) CountOwnedByFarmer(farmerID int, productIDs []int) (int, error) {
	var count int
	err := config.DB.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM products WHERE farmer_id = $1 AND id = ANY($2)`,
		farmerID, productIDs,
	).Scan(&count)
	return count, err
}
