package persistence

import (
	"context"
	"strconv"
	"time"

	"style_server/core/domain"
	"style_server/core/port/out"

	"github.com/jmoiron/sqlx"
)

// ChatHistoryAdapter implements out.ChatHistoryRepository
type ChatHistoryAdapter struct {
	db *sqlx.DB
}

func NewChatHistoryAdapter(db *sqlx.DB) *ChatHistoryAdapter {
	return &ChatHistoryAdapter{db: db}
}

var _ out.ChatHistoryRepository = (*ChatHistoryAdapter)(nil)

type chatRow struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Message   string    `db:"message"`
	Response  string    `db:"response"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *chatRow) toDomain() domain.ChatExchange {
	return domain.ChatExchange{
		ID:        strconv.FormatInt(r.ID, 10),
		UserID:    r.UserID,
		Message:   r.Message,
		Response:  r.Response,
		Timestamp: r.CreatedAt,
	}
}

// Append stores the exchange and fills its ID (and Timestamp if unset).
func (a *ChatHistoryAdapter) Append(ctx context.Context, exchange *domain.ChatExchange) error {
	if exchange.Timestamp.IsZero() {
		exchange.Timestamp = time.Now().UTC()
	}

	id, err := insertReturningID(ctx, a.db, `
		INSERT INTO chat_history (user_id, message, response, created_at)
		VALUES (?, ?, ?, ?)`,
		exchange.UserID, exchange.Message, exchange.Response, exchange.Timestamp,
	)
	if err != nil {
		return err
	}

	exchange.ID = strconv.FormatInt(id, 10)
	return nil
}

// ListByUser returns the newest exchanges first. id breaks timestamp ties.
func (a *ChatHistoryAdapter) ListByUser(ctx context.Context, userID int64, limit int) ([]domain.ChatExchange, error) {
	query := a.db.Rebind(`
		SELECT id, user_id, message, response, created_at
		FROM chat_history
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?`)

	var rows []chatRow
	if err := a.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, err
	}

	exchanges := make([]domain.ChatExchange, len(rows))
	for i := range rows {
		exchanges[i] = rows[i].toDomain()
	}
	return exchanges, nil
}
