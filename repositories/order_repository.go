package repositories

import (
	"context"
	"errors"
	"time"

	"farmconnect/config"
	"farmconnect/models"
)

var ErrEmptyCart = errors.New("cart is empty")

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Checkout converts the user's cart into an order inside one transaction:
// cart lines are locked, order and order_items are written with the price at
// purchase time, and the cart is cleared. Nothing is committed on error.
func (r *OrderRepository) Checkout(userID int) (*models.Order, error) {
	ctx := context.Background()

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `
		SELECT ci.product_id, ci.quantity, p.price
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.user_id = $1
		FOR UPDATE
	`, userID)
	if err != nil {
		return nil, err
	}

	type line struct {
		productID int
		quantity  int
		price     float64
	}

	lines := []line{}
	for rows.Next() {
		var l line
		if err := rows.Scan(&l.productID, &l.quantity, &l.price); err != nil {
			rows.Close()
			return nil, err
		}
		lines = append(lines, l)
	}
	rows.Close()

	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	total := 0.0
	for _, l := range lines {
		total += l.price * float64(l.quantity)
	}

	now := time.Now()
	order := &models.Order{UserID: userID, Status: models.OrderStatusPending, TotalAmount: total}
	err = tx.QueryRow(ctx, `
		INSERT INTO orders (user_id, status, total_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING id, created_at, updated_at
	`, userID, order.Status, total, now).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}

	for _, l := range lines {
		item := models.OrderItem{OrderID: order.ID, ProductID: l.productID, Quantity: l.quantity, Price: l.price}
		err = tx.QueryRow(ctx, `
			INSERT INTO order_items (order_id, product_id, quantity, price)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`, item.OrderID, item.ProductID, item.Quantity, item.Price).Scan(&item.ID)
		if err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) FindByUser(userID, page, limit int) ([]models.Order, int, error) {
	ctx := context.Background()
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(ctx, `
		SELECT id, user_id, status, total_amount, created_at, updated_at
		FROM orders WHERE user_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}

func (r *OrderRepository) FindByID(id int) (*models.Order, error) {
	ctx := context.Background()

	var o models.Order
	err := config.DB.QueryRow(ctx, `
		SELECT id, user_id, status, total_amount, created_at, updated_at
		FROM orders WHERE id = $1
	`, id).Scan(&o.ID, &o.UserID, &o.Status, &o.TotalAmount, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := config.DB.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.price,
		       p.id, p.farmer_id, p.name, p.description, p.price, p.image_url, p.unit, p.created_at, p.updated_at
		FROM order_items oi
		JOIN products p ON oi.product_id = p.id
		WHERE oi.order_id = $1
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item models.OrderItem
		var product models.Product
		err := rows.Scan(
			&item.ID, &item.OrderID, &item.ProductID, &item.Quantity, &item.Price,
			&product.ID, &product.FarmerID, &product.Name, &product.Description, &product.Price,
			&product.ImageURL, &product.Unit, &product.CreatedAt, &product.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		item.Product = &product
		o.Items = append(o.Items, item)
	}
	return &o, nil
}

func (r *OrderRepository) UpdateStatus(id int, status string) error {
	_, err := config.DB.Exec(context.Background(),
		`UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3`,
		status, time.Now(), id)
	return err
}
