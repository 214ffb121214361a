package repositories

import (
	"context"
	"time"

	"farmconnect/config"
	"farmconnect/models"
)

type PostRepository struct{}

func NewPostRepository() *PostRepository {
	return &PostRepository{}
}

func (r *PostRepository) Create(post *models.Post, productIDs []int) error {
	ctx := context.Background()

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO posts (farmer_id, title, content, image_url, likes, comments, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, 0, $5, $6)
		RETURNING id, likes, comments, created_at, updated_at
	`,
		post.FarmerID,
		post.Title,
		post.Content,
		post.ImageURL,
		now,
		now,
	).Scan(&post.ID, &post.Likes, &post.Comments, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return err
	}

	for _, productID := range productIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO post_products (post_id, product_id) VALUES ($1, $2)`,
			post.ID, productID,
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostRepository) FindByID(id int) (*models.Post, error) {
	query := `SELECT id, farmer_id, title, content, image_url, likes, comments, created_at, updated_at
	          FROM posts WHERE id = $1`

	var p models.Post
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&p.ID, &p.FarmerID, &p.Title, &p.Content, &p.ImageURL, &p.Likes, &p.Comments, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// FindPaginated returns posts ordered by creation time descending with the
// farmer block and attached products embedded, plus the total post count.
func (r *PostRepository) FindPaginated(page, limit int) ([]models.PostWithFarmer, int, error) {
	ctx := context.Background()
	offset := (page - 1) * limit

	var total int
	if err := config.DB.QueryRow(ctx, `SELECT COUNT(*) FROM posts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT
			p.id, p.farmer_id, p.title, p.content, p.image_url, p.likes, p.comments,
			p.created_at, p.updated_at,
			u.name, u.avatar_url, fp.farm_name
		FROM posts p
		JOIN farmer_profiles fp ON p.farmer_id = fp.id
		JOIN users u ON fp.user_id = u.id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := config.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	posts := []models.PostWithFarmer{}
	postIDs := []int{}
	for rows.Next() {
		var p models.PostWithFarmer
		err := rows.Scan(
			&p.ID, &p.FarmerID, &p.Title, &p.Content, &p.ImageURL, &p.Likes, &p.Comments,
			&p.CreatedAt, &p.UpdatedAt,
			&p.Farmer.Name, &p.Farmer.AvatarURL, &p.Farmer.FarmName,
		)
		if err != nil {
			return nil, 0, err
		}
		p.Products = []models.Product{}
		posts = append(posts, p)
		postIDs = append(postIDs, p.ID)
	}
	rows.Close()

	if len(postIDs) > 0 {
		if err := r.attachProducts(ctx, posts, postIDs); err != nil {
			return nil, 0, err
		}
	}

	return posts, total, nil
}

func (r *PostRepository) attachProducts(ctx context.Context, posts []models.PostWithFarmer, postIDs []int) error {
	query := `
		SELECT pp.post_id, pr.id, pr.farmer_id, pr.name, pr.description, pr.price, pr.image_url, pr.unit,
		       pr.created_at, pr.updated_at
		FROM post_products pp
		JOIN products pr ON pp.product_id = pr.id
		WHERE pp.post_id = ANY($1)
	`

	rows, err := config.DB.Query(ctx, query, postIDs)
	if err != nil {
		return err
	}
	defer rows.Close()

	byPost := map[int][]models.Product{}
	for rows.Next() {
		var postID int
		var pr models.Product
		err := rows.Scan(&postID, &pr.ID, &pr.FarmerID, &pr.Name, &pr.Description, &pr.Price, &pr.ImageURL, &pr.Unit, &pr.CreatedAt, &pr.UpdatedAt)
		if err != nil {
			return err
		}
		byPost[postID] = append(byPost[postID], pr)
	}

	for i := range posts {
		if products, ok := byPost[posts[i].ID]; ok {
			posts[i].Products = products
		}
	}
	return nil
}

// IncrementLikes adds one like unconditionally. There is no per-user
// deduplication; two calls increment the counter twice.
func (r *PostRepository) IncrementLikes(id int) (*models.Post, error) {
	query := `UPDATE posts SET likes = likes + 1, updated_at = $1 WHERE id = $2
	          RETURNING id, farmer_id, title, content, image_url, likes, comments, created_at, updated_at`

	var p models.Post
	err := config.DB.QueryRow(context.Background(), query, time.Now(), id).Scan(
		&p.ID, &p.FarmerID, &p.Title, &p.Content, &p.ImageURL, &p.Likes, &p.Comments, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostRepository) Delete(id, farmerID int) (bool, error) {
	ctx := context.Background()

	tx, err := config.DB.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM post_products WHERE post_id = $1`, id); err != nil {
		return false, err
	}

	tag, err := tx.Exec(ctx, `DELETE FROM posts WHERE id = $1 AND farmer_id = $2`, id, farmerID)
	if err != nil {
		return false, err
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	return true, tx.Commit(ctx)
}
