package repositories

import (
	"context"
	"time"

	"farmconnect/config"
	"farmconnect/models"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func (r *CartRepository) FindByUser(userID int) ([]models.CartItem, error) {
	query := `
		SELECT
			ci.id, ci.user_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at,
			p.id, p.farmer_id, p.name, p.description, p.price, p.image_url, p.unit, p.created_at, p.updated_at
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at
	`

	rows, err := config.DB.Query(context.Background(), query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		var product models.Product
		err := rows.Scan(
			&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
			&product.ID, &product.FarmerID, &product.Name, &product.Description, &product.Price,
			&product.ImageURL, &product.Unit, &product.CreatedAt, &product.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		item.Product = &product
		items = append(items, item)
	}
	return items, nil
}

// Upsert adds the quantity delta to the user's cart line for the product,
// relying on the unique (user_id, product_id) constraint so repeated adds
// accumulate in a single row. A resulting quantity below 1 removes the line
// and returns nil.
func (r *CartRepository) Upsert(userID, productID, delta int) (*models.CartItem, error) {
	ctx := context.Background()
	now := time.Now()

	item := &models.CartItem{}
	err := config.DB.QueryRow(ctx, `
		INSERT INTO cart_items (user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = $4
		RETURNING id, user_id, product_id, quantity, created_at, updated_at
	`, userID, productID, delta, now).Scan(
		&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if item.Quantity < 1 {
		if _, err := config.DB.Exec(ctx, `DELETE FROM cart_items WHERE id = $1`, item.ID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return item, nil
}

func (r *CartRepository) Delete(id, userID int) (bool, error) {
	tag, err := config.DB.Exec(context.Background(),
		`DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
