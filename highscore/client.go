package highscore

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ddesignmedia/catchthenumba/game/quiz"
)

// Client is the HTTP implementation of Service.
type Client struct {
	base string
	http *http.Client
}

type response struct {
	Status     string      `json:"status"`
	Highscores []wireEntry `json:"highscores"`
	Message    string      `json:"message"`
}

// NewClient returns a client for the backend rooted at base. A nil hc gets a
// client with a 10 second timeout.
func NewClient(base string, hc *http.Client) *Client {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{base: base, http: hc}
}

// Fetch returns the list for mode in the order the server sends it.
func (c *Client) Fetch(ctx context.Context, mode quiz.Mode) ([]Entry, error) {
	u := c.base + "get_highscores.php?game_id=" + url.QueryEscape(string(mode))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", mode, err)
	}
	res, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", mode, err)
	}

	entries := make([]Entry, 0, len(res.Highscores))
	for _, w := range res.Highscores {
		e, err := w.entry()
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", mode, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Submit posts one final score.
func (c *Client) Submit(ctx context.Context, mode quiz.Mode, e Entry) error {
	form := url.Values{}
	form.Set("playerName", e.Name)
	form.Set("score", strconv.Itoa(e.Score))
	form.Set("game_id", string(mode))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"save_score.php", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("submit %s: %w", mode, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if _, err := c.do(req); err != nil {
		return fmt.Errorf("submit %s: %w", mode, err)
	}
	return nil
}

func (c *Client) do(req *http.Request) (*response, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode}
	}
	var res response
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if res.Status != "success" {
		return nil, &ServiceError{Message: res.Message}
	}
	return &res, nil
}
