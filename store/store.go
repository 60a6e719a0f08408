// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/danielhkuo/ratemyanything/aggregate"
	"github.com/danielhkuo/ratemyanything/auth"
	"github.com/danielhkuo/ratemyanything/judgement"
	"github.com/danielhkuo/ratemyanything/metrics"
	"github.com/danielhkuo/ratemyanything/models"
)

// maxAggregateRetries bounds how often a review mutation is retried after
// losing the item version check to another writer.
const maxAggregateRetries = 5

// errVersionMismatch means the item row changed between read and update.
var errVersionMismatch = errors.New("item version changed")

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Store persists items and reviews and keeps every item's aggregate in step
// with its reviews.
type Store struct {
	db    *sql.DB
	locks *aggregate.Locks
	now   func() time.Time
}

func New(db *sql.DB) *Store {
	return &Store{
		db:    db,
		locks: aggregate.NewLocks(),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Ping checks the database connection.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// CreateItem stores a new item with no reviews.
func (s *Store) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	item := models.Item{
		ID:          auth.NewID(),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		CreatedAt:   s.now(),
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO item (id, name, name_folded, category, description, review_count, version, created_at)
		VALUES ($1, $2, $3, $4, $5, 0, 0, $6)
	`, item.ID, item.Name, foldName(item.Name), item.Category, item.Description, item.CreatedAt)
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to insert item: %w", err)
	}
	return item, nil
}

// ListItems returns item summaries sorted by name. A non-empty query keeps
// only items whose name contains it, compared under Unicode case folding.
func (s *Store) ListItems(ctx context.Context, query string) ([]models.Item, error) {
	q := `
		SELECT id, name, category, description, average_rating, review_count, created_at
		FROM item
	`
	var args []any
	if query = strings.TrimSpace(query); query != "" {
		q += ` WHERE name_folded LIKE $1 ESCAPE '\'`
		args = append(args, "%"+escapeLike(foldName(query))+"%")
	}
	q += ` ORDER BY name, id`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	items := []models.Item{}
	for rows.Next() {
		var item models.Item
		var avg sql.NullFloat64
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Description,
			&avg, &item.ReviewCount, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		if avg.Valid {
			item.AverageRating = &avg.Float64
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// GetItem returns the item with its reviews in insertion order.
func (s *Store) GetItem(ctx context.Context, id string) (models.Item, error) {
	item, _, err := loadItem(ctx, s.db, id)
	return item, err
}

// AddReview stores review under the item and updates the item's average in
// the same transaction. It returns the updated item.
func (s *Store) AddReview(ctx context.Context, itemID string, review models.Review) (models.Item, error) {
	review.ItemID = itemID
	if review.ID == "" {
		review.ID = auth.NewID()
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = s.now()
	}

	item, err := s.mutate(ctx, itemID, func(ctx context.Context, tx *sql.Tx, item *models.Item, version int64) error {
		if err := insertReview(ctx, tx, review, version+1); err != nil {
			return err
		}
		aggregate.AddReview(item, review)
		return nil
	})
	if err != nil {
		return models.Item{}, err
	}

	metrics.ReviewsTotal.WithLabelValues(metrics.OpAdd).Inc()
	metrics.JudgementsTotal.WithLabelValues(string(review.Judgement.Category)).Inc()
	slog.Info("review added",
		"item_id", itemID,
		"review_id", review.ID,
		"category", review.Judgement.Category,
		"review_count", item.ReviewCount,
	)
	return item, nil
}

// DeleteReview removes a review when requester wrote it and updates the
// item's average in the same transaction.
func (s *Store) DeleteReview(ctx context.Context, itemID, reviewID, requester string) (models.Item, error) {
	item, err := s.mutate(ctx, itemID, func(ctx context.Context, tx *sql.Tx, item *models.Item, _ int64) error {
		if _, err := aggregate.RemoveReview(item, reviewID, requester); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM review WHERE id = $1 AND item_id = $2`, reviewID, itemID); err != nil {
			return fmt.Errorf("failed to delete review: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.Item{}, err
	}

	metrics.ReviewsTotal.WithLabelValues(metrics.OpDelete).Inc()
	slog.Info("review deleted", "item_id", itemID, "review_id", reviewID, "review_count", item.ReviewCount)
	return item, nil
}

// mutate runs change against a freshly loaded item inside a transaction,
// then writes the item's new aggregate guarded by its version. A lost
// version check rolls everything back and starts over.
func (s *Store) mutate(ctx context.Context, itemID string,
	change func(ctx context.Context, tx *sql.Tx, item *models.Item, version int64) error,
) (models.Item, error) {
	unlock := s.locks.Lock(itemID)
	defer unlock()

	for attempt := 1; attempt <= maxAggregateRetries; attempt++ {
		item, err := s.mutateOnce(ctx, itemID, change)
		if errors.Is(err, errVersionMismatch) {
			metrics.AggregateConflicts.Inc()
			slog.Warn("item changed concurrently, retrying", "item_id", itemID, "attempt", attempt)
			continue
		}
		return item, err
	}
	return models.Item{}, aggregate.ErrConflict
}

func (s *Store) mutateOnce(ctx context.Context, itemID string,
	change func(ctx context.Context, tx *sql.Tx, item *models.Item, version int64) error,
) (models.Item, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	item, version, err := loadItem(ctx, tx, itemID)
	if err != nil {
		return models.Item{}, err
	}

	if err := change(ctx, tx, &item, version); err != nil {
		return models.Item{}, err
	}

	var avg any
	if item.AverageRating != nil {
		avg = *item.AverageRating
	}
	res, err := tx.ExecContext(ctx, `
		UPDATE item
		SET average_rating = $1, review_count = $2, version = version + 1
		WHERE id = $3 AND version = $4
	`, avg, item.ReviewCount, itemID, version)
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to update item aggregate: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models.Item{}, fmt.Errorf("failed to update item aggregate: %w", err)
	}
	if n == 0 {
		return models.Item{}, errVersionMismatch
	}

	if err := tx.Commit(); err != nil {
		return models.Item{}, fmt.Errorf("failed to commit: %w", err)
	}
	return item, nil
}

// RecentReviews returns the newest reviews across all items.
func (s *Store) RecentReviews(ctx context.Context, limit int) ([]models.RecentReview, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+reviewColumns("r")+`, i.name
		FROM review r
		JOIN item i ON i.id = r.item_id
		ORDER BY r.created_at DESC, r.seq DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent reviews: %w", err)
	}
	defer rows.Close()

	reviews := []models.RecentReview{}
	for rows.Next() {
		var rr models.RecentReview
		if err := scanReview(rows, &rr.Review, &rr.ItemName); err != nil {
			return nil, err
		}
		reviews = append(reviews, rr)
	}
	return reviews, rows.Err()
}

// loadItem reads an item, its reviews and its current version.
func loadItem(ctx context.Context, q queryer, id string) (models.Item, int64, error) {
	var item models.Item
	var avg sql.NullFloat64
	var version int64

	err := q.QueryRowContext(ctx, `
		SELECT id, name, category, description, average_rating, review_count, version, created_at
		FROM item
		WHERE id = $1
	`, id).Scan(&item.ID, &item.Name, &item.Category, &item.Description,
		&avg, &item.ReviewCount, &version, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Item{}, 0, aggregate.ErrItemNotFound
	}
	if err != nil {
		return models.Item{}, 0, fmt.Errorf("failed to query item: %w", err)
	}
	if avg.Valid {
		item.AverageRating = &avg.Float64
	}

	rows, err := q.QueryContext(ctx, `
		SELECT `+reviewColumns("review")+`
		FROM review
		WHERE item_id = $1
		ORDER BY seq
	`, id)
	if err != nil {
		return models.Item{}, 0, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	item.Reviews = []models.Review{}
	for rows.Next() {
		var r models.Review
		if err := scanReview(rows, &r); err != nil {
			return models.Item{}, 0, err
		}
		item.Reviews = append(item.Reviews, r)
	}
	if err := rows.Err(); err != nil {
		return models.Item{}, 0, fmt.Errorf("failed to read reviews: %w", err)
	}

	return item, version, nil
}

func insertReview(ctx context.Context, tx *sql.Tx, r models.Review, seq int64) error {
	tags, err := json.Marshal(r.Judgement.JudgementTags)
	if err != nil {
		return fmt.Errorf("failed to encode judgement tags: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO review (
			id, item_id, seq, username, star_rating, review_text,
			category, judgement_text, judgement_tags, sentiment_score, contradiction_detected,
			word_count, char_count, emoji_count, exaggeration_count,
			ip_hash, user_agent, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`, r.ID, r.ItemID, seq, r.Username, r.StarRating, r.ReviewText,
		string(r.Judgement.Category), r.Judgement.JudgementText, string(tags),
		r.Judgement.SentimentScore, r.Judgement.ContradictionDetected,
		r.Judgement.Stats.WordCount, r.Judgement.Stats.CharCount,
		r.Judgement.Stats.EmojiCount, r.Judgement.Stats.ExaggerationCount,
		r.IPHash, r.UserAgent, r.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert review: %w", err)
	}
	return nil
}

// reviewColumns lists the columns scanReview expects, qualified by alias.
func reviewColumns(alias string) string {
	cols := []string{
		"id", "item_id", "username", "star_rating", "review_text",
		"category", "judgement_text", "judgement_tags", "sentiment_score", "contradiction_detected",
		"word_count", "char_count", "emoji_count", "exaggeration_count",
		"ip_hash", "user_agent", "created_at",
	}
	for i, c := range cols {
		cols[i] = alias + "." + c
	}
	return strings.Join(cols, ", ")
}

func scanReview(rows *sql.Rows, r *models.Review, extra ...any) error {
	var category, tags string
	var ipHash, userAgent sql.NullString

	dest := []any{
		&r.ID, &r.ItemID, &r.Username, &r.StarRating, &r.ReviewText,
		&category, &r.Judgement.JudgementText, &tags, &r.Judgement.SentimentScore, &r.Judgement.ContradictionDetected,
		&r.Judgement.Stats.WordCount, &r.Judgement.Stats.CharCount,
		&r.Judgement.Stats.EmojiCount, &r.Judgement.Stats.ExaggerationCount,
		&ipHash, &userAgent, &r.CreatedAt,
	}
	if err := rows.Scan(append(dest, extra...)...); err != nil {
		return fmt.Errorf("failed to scan review: %w", err)
	}

	r.Judgement.Category = judgement.Category(category)
	if err := json.Unmarshal([]byte(tags), &r.Judgement.JudgementTags); err != nil {
		return fmt.Errorf("failed to decode judgement tags: %w", err)
	}
	if ipHash.Valid {
		r.IPHash = &ipHash.String
	}
	if userAgent.Valid {
		r.UserAgent = &userAgent.String
	}
	return nil
}

// foldName is the form item names are searched in. SQLite's LOWER and LIKE
// only fold ASCII, so folding happens here for both sides of the match.
func foldName(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// escapeLike escapes LIKE wildcards so the query matches literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
