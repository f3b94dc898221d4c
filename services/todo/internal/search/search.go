package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/burakmt/todo-platform/services/todo/internal/models"
)

const indexName = "todos"

// Index mirrors todos into Elasticsearch for fuzzy search. A nil *Index
// is a no-op so the service runs without a cluster configured.
type Index struct {
	es *elasticsearch.Client
}

func New(addr string) (*Index, error) {
	if addr == "" {
		return nil, nil
	}
	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{addr}})
	if err != nil {
		return nil, fmt.Errorf("search: new client: %w", err)
	}
	return &Index{es: es}, nil
}

func (i *Index) Enabled() bool { return i != nil }

func (i *Index) Put(ctx context.Context, t *models.Todo) error {
	if i == nil {
		return nil
	}

	body, err := json.Marshal(t)
	if err != nil {
		return err
	}

	res, err := i.es.Index(
		indexName,
		bytes.NewReader(body),
		i.es.Index.WithDocumentID(strconv.FormatInt(t.ID, 10)),
		i.es.Index.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: index todo %d: %w", t.ID, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("search: index todo %d: %s", t.ID, res.Status())
	}
	return nil
}

func (i *Index) Remove(ctx context.Context, id int64) error {
	if i == nil {
		return nil
	}

	res, err := i.es.Delete(
		indexName,
		strconv.FormatInt(id, 10),
		i.es.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("search: delete todo %d: %w", id, err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("search: delete todo %d: %s", id, res.Status())
	}
	return nil
}

func (i *Index) Search(ctx context.Context, userID int64, query string, from, size int) (int64, []models.Todo, error) {
	if i == nil {
		return 0, nil, nil
	}

	body := map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":     query,
						"fields":    []string{"title^2", "description"},
						"fuzziness": "AUTO",
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"userId": userID},
				},
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, err
	}

	res, err := i.es.Search(
		i.es.Search.WithContext(ctx),
		i.es.Search.WithIndex(indexName),
		i.es.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search: query: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search: query: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Todo `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, err
	}

	todos := make([]models.Todo, len(r.Hits.Hits))
	for n, hit := range r.Hits.Hits {
		todos[n] = hit.Source
	}
	return r.Hits.Total.Value, todos, nil
}
