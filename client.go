package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// BoxHeroClient pagina GET /v1/items. El contrato de respuesta es
// explícito (nada de adivinar claves):
//
//	{"items": [...], "has_more": bool, "next_cursor": "..."}
type BoxHeroClient struct {
	baseURL   string
	token     string
	limit     int
	pageDelay time.Duration
	http      *http.Client
}

func NewBoxHeroClient(cfg Config) *BoxHeroClient {
	return &BoxHeroClient{
		baseURL:   cfg.APIBaseURL,
		token:     cfg.APIToken,
		limit:     cfg.PageLimit,
		pageDelay: cfg.PageDelay,
		http:      &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

type itemsPage struct {
	Items      []Item `json:"items"`
	HasMore    bool   `json:"has_more"`
	NextCursor string `json:"next_cursor"`
}

// FetchAllItems trae todas las páginas y materializa la lista completa
// antes de devolver. Sin reintentos: un fallo de página tumba el fetch.
func (c *BoxHeroClient) FetchAllItems(ctx context.Context, locationIDs []int64) ([]Item, error) {
	var all []Item
	cursor := ""
	for page := 1; ; page++ {
		p, err := c.fetchPage(ctx, cursor, locationIDs)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", page, err)
		}
		all = append(all, p.Items...)
		log.Debug().Int("page", page).Int("items", len(p.Items)).
			Bool("has_more", p.HasMore).Msg("fetched items page")

		if !p.HasMore || p.NextCursor == "" {
			break
		}
		cursor = p.NextCursor

		// pausa cortés entre páginas
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pageDelay):
		}
	}
	return all, nil
}

func (c *BoxHeroClient) fetchPage(ctx context.Context, cursor string, locationIDs []int64) (*itemsPage, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(c.limit))
	if cursor != "" {
		q.Set("cursor", cursor)
	}
	for _, id := range locationIDs {
		q.Add("location_ids", strconv.FormatInt(id, 10))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/items?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("items: status %d: %s", resp.StatusCode, body)
	}

	var p itemsPage
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("items: decode: %w", err)
	}
	return &p, nil
}
