package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ds124wfegd/car-rental/internal/entity"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const blogColumns = `id, title, tag, date, reading_time, author, image, excerpt, content, created_at, updated_at`

// blogRow carries the paragraphs as a postgres text array.
type blogRow struct {
	entity.BlogPost
	Content pq.StringArray `db:"content"`
}

func toBlogRow(p *entity.BlogPost) blogRow {
	return blogRow{BlogPost: *p, Content: pq.StringArray(p.Content)}
}

func (row blogRow) post() entity.BlogPost {
	p := row.BlogPost
	p.Content = []string(row.Content)
	if p.Content == nil {
		p.Content = []string{}
	}
	return p
}

type BlogRepository struct {
	db *sqlx.DB
}

func NewBlogRepository(db *sqlx.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) Create(ctx context.Context, post *entity.BlogPost) error {
	now := time.Now().UTC()
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
		INSERT INTO blog_posts (` + blogColumns + `)
		VALUES (:id, :title, :tag, :date, :reading_time, :author, :image, :excerpt, :content,
			:created_at, :updated_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, toBlogRow(post)); err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id string) (*entity.BlogPost, error) {
	var row blogRow
	err := r.db.GetContext(ctx, &row, `SELECT `+blogColumns+` FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return nil, notFound(err, entity.ErrBlogPostNotFound)
	}
	post := row.post()
	return &post, nil
}

func (r *BlogRepository) List(ctx context.Context) ([]entity.BlogPost, error) {
	var rows []blogRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT `+blogColumns+` FROM blog_posts ORDER BY created_at DESC`); err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	posts := make([]entity.BlogPost, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, row.post())
	}
	return posts, nil
}

func (r *BlogRepository) Update(ctx context.Context, post *entity.BlogPost) error {
	post.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE blog_posts SET
			title = :title, tag = :tag, date = :date, reading_time = :reading_time, author = :author,
			image = :image, excerpt = :excerpt, content = :content, updated_at = :updated_at
		WHERE id = :id
	`
	res, err := r.db.NamedExecContext(ctx, query, toBlogRow(post))
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	return checkAffected(res, entity.ErrBlogPostNotFound)
}

func (r *BlogRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	return checkAffected(res, entity.ErrBlogPostNotFound)
}
