package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/smartfarm/internal/db"
	"github.com/alexanderramin/smartfarm/internal/domain"
)

// SQLiteChatHistoryRepo implements ChatHistoryRepo. Ordering uses the
// autoincrement seq column, so messages with identical timestamps keep
// their insertion order.
type SQLiteChatHistoryRepo struct {
	db db.DBTX
}

// NewSQLiteChatHistoryRepo creates a new SQLiteChatHistoryRepo.
func NewSQLiteChatHistoryRepo(conn db.DBTX) *SQLiteChatHistoryRepo {
	return &SQLiteChatHistoryRepo{db: conn}
}

func (r *SQLiteChatHistoryRepo) Append(ctx context.Context, m *domain.ChatMessage) error {
	query := `INSERT INTO chat_messages (id, sender, text, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		string(m.Sender),
		m.Text,
		formatTime(m.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting chat message: %w", err)
	}
	return nil
}

func (r *SQLiteChatHistoryRepo) ListRecent(ctx context.Context, limit int) ([]*domain.ChatMessage, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	query := `SELECT id, sender, text, created_at FROM (
			SELECT seq, id, sender, text, created_at
			FROM chat_messages ORDER BY seq DESC LIMIT ?
		) ORDER BY seq ASC`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing chat messages: %w", err)
	}
	defer rows.Close()
	return r.scanMessages(rows)
}

func (r *SQLiteChatHistoryRepo) Trim(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	query := `DELETE FROM chat_messages WHERE seq NOT IN (
		SELECT seq FROM chat_messages ORDER BY seq DESC LIMIT ?
	)`
	res, err := r.db.ExecContext(ctx, query, keep)
	if err != nil {
		return 0, fmt.Errorf("trimming chat messages: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting trimmed chat messages: %w", err)
	}
	return n, nil
}

func (r *SQLiteChatHistoryRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM chat_messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting chat messages: %w", err)
	}
	return n, nil
}

func (r *SQLiteChatHistoryRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM chat_messages`); err != nil {
		return fmt.Errorf("clearing chat messages: %w", err)
	}
	return nil
}

func (r *SQLiteChatHistoryRepo) scanMessages(rows *sql.Rows) ([]*domain.ChatMessage, error) {
	var out []*domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		var sender, createdAt string
		if err := rows.Scan(&m.ID, &sender, &m.Text, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning chat message: %w", err)
		}
		m.Sender = domain.Sender(sender)
		m.CreatedAt = parseTime(createdAt)
		out = append(out, &m)
	}
	return out, rows.Err()
}
