// Package docs holds the in-memory documentation corpus the chat tools
// query: docs articles, Cortex sub-product articles, and the Web3 Data API
// endpoint catalog. Catalogs are embedded at build time and read-only after
// startup.
package docs

import (
	"embed"
	"fmt"

	"github.com/moralisweb3/docschat/pkg/utils/json"
)

//go:embed data/*.json
var dataFS embed.FS

// Article is a single documentation article.
type Article struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Subject string `json:"subject"`
	Summary string `json:"summary"`
	Content string `json:"content"`
	URL     string `json:"url"`
}

// ArticleSummary is the listing view of an article (no body).
type ArticleSummary struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Subject string `json:"subject"`
	Summary string `json:"summary"`
}

// EndpointParam describes one parameter of an API endpoint.
type EndpointParam struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Required    bool   `json:"required"`
	Description string `json:"description"`
}

// Endpoint is one entry in the API endpoint catalog.
type Endpoint struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Group       string          `json:"group"`
	Method      string          `json:"method"`
	Path        string          `json:"path"`
	Description string          `json:"description"`
	Params      []EndpointParam `json:"params"`
}

// EndpointSummary is the listing view of an endpoint.
type EndpointSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Group string `json:"group"`
}

// Store is the loaded corpus. Lookups are pure; a miss yields an empty
// result, never an error.
type Store struct {
	articles       []*Article
	cortexArticles []*Article
	endpoints      []*Endpoint

	articleByID       map[string]*Article
	cortexArticleByID map[string]*Article
	endpointByID      map[string]*Endpoint
}

// NewStore loads the embedded catalogs.
func NewStore() (*Store, error) {
	s := &Store{
		articleByID:       make(map[string]*Article),
		cortexArticleByID: make(map[string]*Article),
		endpointByID:      make(map[string]*Endpoint),
	}

	if err := loadCatalog(dataFS, "data/articles.json", &s.articles); err != nil {
		return nil, err
	}
	if err := loadCatalog(dataFS, "data/cortex_articles.json", &s.cortexArticles); err != nil {
		return nil, err
	}
	if err := loadCatalog(dataFS, "data/api_endpoints.json", &s.endpoints); err != nil {
		return nil, err
	}

	for _, a := range s.articles {
		s.articleByID[a.ID] = a
	}
	for _, a := range s.cortexArticles {
		s.cortexArticleByID[a.ID] = a
	}
	for _, e := range s.endpoints {
		s.endpointByID[e.ID] = e
	}

	return s, nil
}

func loadCatalog(fsys embed.FS, path string, out interface{}) error {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read catalog %q: %w", path, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse catalog %q: %w", path, err)
	}
	return nil
}

// ArticleSummaries lists all docs articles.
func (s *Store) ArticleSummaries() []ArticleSummary {
	return summarize(s.articles)
}

// ArticlesByIDs fetches docs articles by identifier set. Unknown ids are
// skipped.
func (s *Store) ArticlesByIDs(ids []string) []*Article {
	return pick(s.articleByID, ids)
}

// CortexArticleSummaries lists all Cortex articles.
func (s *Store) CortexArticleSummaries() []ArticleSummary {
	return summarize(s.cortexArticles)
}

// CortexArticlesByIDs fetches Cortex articles by identifier set.
func (s *Store) CortexArticlesByIDs(ids []string) []*Article {
	return pick(s.cortexArticleByID, ids)
}

// EndpointSummaries lists the API endpoint catalog.
func (s *Store) EndpointSummaries() []EndpointSummary {
	out := make([]EndpointSummary, 0, len(s.endpoints))
	for _, e := range s.endpoints {
		out = append(out, EndpointSummary{ID: e.ID, Name: e.Name, Group: e.Group})
	}
	return out
}

// EndpointsByIDs fetches endpoint detail records by identifier set.
func (s *Store) EndpointsByIDs(ids []string) []*Endpoint {
	return pick(s.endpointByID, ids)
}

func summarize(articles []*Article) []ArticleSummary {
	out := make([]ArticleSummary, 0, len(articles))
	for _, a := range articles {
		out = append(out, ArticleSummary{
			ID:      a.ID,
			Title:   a.Title,
			Subject: a.Subject,
			Summary: a.Summary,
		})
	}
	return out
}

func pick[T any](index map[string]*T, ids []string) []*T {
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		if v, ok := index[id]; ok {
			out = append(out, v)
		}
	}
	return out
}
