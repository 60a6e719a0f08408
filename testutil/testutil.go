// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/danielhkuo/ratemyanything/auth"
	"github.com/danielhkuo/ratemyanything/cliparse"
	"github.com/danielhkuo/ratemyanything/db"
	"github.com/danielhkuo/ratemyanything/judgement"
	"github.com/danielhkuo/ratemyanything/models"
	"github.com/danielhkuo/ratemyanything/store"
)

// TestJWTSecret signs bearer tokens in tests
const TestJWTSecret = "test-jwt-secret"

// SetupTestDB creates a fresh SQLite database with the full schema.
// It is closed automatically when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	conn, err := db.Open(ctx, cliparse.DatabaseSQLite, path)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.Migrate(ctx, conn, cliparse.DatabaseSQLite); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		DatabaseURL:     "file:test.db",
		DatabaseType:    cliparse.DatabaseSQLite,
		JWTSecret:       TestJWTSecret,
		ReviewRateLimit: 0,
		AllowedOrigin:   "*",
	}
}

// CreateTestItem inserts an item with no reviews and returns its ID
func CreateTestItem(t *testing.T, s *store.Store, name string) string {
	t.Helper()

	item, err := s.CreateItem(context.Background(), models.CreateItemRequest{
		Name:        name,
		Category:    "test",
		Description: "A test item",
	})
	if err != nil {
		t.Fatalf("Failed to create test item: %v", err)
	}
	return item.ID
}

// AddTestReview judges text and adds the review, returning the review ID
func AddTestReview(t *testing.T, s *store.Store, itemID, username string, stars int, text string) string {
	t.Helper()

	review := models.Review{
		ID:         auth.NewID(),
		Username:   username,
		StarRating: stars,
		ReviewText: text,
		Judgement:  judgement.NewEngine(nil, nil).Judge(text, stars),
	}
	if _, err := s.AddReview(context.Background(), itemID, review); err != nil {
		t.Fatalf("Failed to add test review: %v", err)
	}
	return review.ID
}

// BearerToken returns an Authorization header value for username
func BearerToken(t *testing.T, username string) string {
	t.Helper()

	token, err := auth.IssueToken(username, TestJWTSecret, time.Hour)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}
	return "Bearer " + token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
