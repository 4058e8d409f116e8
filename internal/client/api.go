package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client talks to the quiz API over HTTP and keeps the bearer token issued
// at login or registration.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type AuthUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type authResponse struct {
	Token string   `json:"token"`
	User  AuthUser `json:"user"`
}

type SubmitResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Message string `json:"message"`
}

type HistoryEntry struct {
	ID             string    `json:"id"`
	Category       string    `json:"category"`
	Difficulty     string    `json:"difficulty"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	Percentage     int       `json:"percentage"`
	TimeTaken      *int      `json:"time_taken,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

type LeaderboardRow struct {
	UserID              string     `json:"user_id"`
	Name                string     `json:"name"`
	TotalQuizzes        int64      `json:"total_quizzes"`
	AverageScore        float64    `json:"average_score"`
	TotalCorrectAnswers int64      `json:"total_correct_answers"`
	LastActivity        *time.Time `json:"last_activity,omitempty"`
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*AuthUser, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/register", map[string]string{
		"name": name, "email": email, "password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.User, nil
}

func (c *Client) Login(ctx context.Context, email, password string) (*AuthUser, error) {
	var resp authResponse
	err := c.do(ctx, http.MethodPost, "/api/login", map[string]string{
		"email": email, "password": password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.token = resp.Token
	return &resp.User, nil
}

func (c *Client) Questions(ctx context.Context, category, difficulty string, limit int) ([]Question, error) {
	q := url.Values{}
	if category != "" {
		q.Set("category", category)
	}
	if difficulty != "" {
		q.Set("difficulty", difficulty)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/questions"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var questions []Question
	if err := c.do(ctx, http.MethodGet, path, nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (c *Client) SubmitResult(ctx context.Context, sub ResultSubmission) (*SubmitResponse, error) {
	var resp SubmitResponse
	if err := c.do(ctx, http.MethodPost, "/api/results", sub, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) History(ctx context.Context) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	if err := c.do(ctx, http.MethodGet, "/api/results/history", nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) Leaderboard(ctx context.Context) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	if err := c.do(ctx, http.MethodGet, "/api/leaderboard", nil, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.do(ctx, http.MethodGet, "/api/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, apiErr.Error)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
