package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"commentsview/internal/domain/entities"
	"commentsview/internal/ports/output"
)

var _ output.CommentRepository = (*CommentRepository)(nil)

// querier is the subset of *pgxpool.Pool the repository needs.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const (
	selectCommentsByThread = `SELECT id, thread_id, message, author_username, created_at
FROM comments
WHERE thread_id = $1
ORDER BY created_at DESC`

	insertComment = `INSERT INTO comments (id, thread_id, message, author_username, created_at)
VALUES ($1, $2, $3, $4, $5)`
)

// CommentRepository implements output.CommentRepository using pgx.
type CommentRepository struct {
	db querier
}

// NewCommentRepository creates a CommentRepository.
func NewCommentRepository(db querier) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) FindByThreadID(ctx context.Context, threadID string) ([]entities.Comment, error) {
	rows, err := r.db.Query(ctx, selectCommentsByThread, threadID)
	if err != nil {
		return nil, fmt.Errorf("get comments by thread id: %w", err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[commentRow])
	if err != nil {
		return nil, fmt.Errorf("scan comments: %w", err)
	}
	out := make([]entities.Comment, len(records))
	for i := range records {
		out[i] = commentToDomain(records[i])
	}
	return out, nil
}

// Create inserts comment, assigning an ID and creation time when they are unset.
func (r *CommentRepository) Create(ctx context.Context, threadID string, comment *entities.Comment) error {
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.Exec(ctx, insertComment,
		pgtype.UUID{Bytes: [16]byte(comment.ID), Valid: true},
		threadID,
		comment.Message,
		comment.Author.Username,
		pgtype.Timestamptz{Time: comment.CreatedAt, Valid: true},
	)
	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}
