package search

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/meilisearch/meilisearch-go"

	"github.com/hadithdb/hadith-api/internal/config"
)

// Service talks to Meilisearch. The connection handle is established once at
// startup and shared; Connect is safe to call again after a failure and only
// re-establishes the handle.
type Service struct {
	cfg config.Meilisearch

	mu     sync.RWMutex
	client *meilisearch.Client
	index  *meilisearch.Index
}

// NewService creates an unconnected search service. Call Connect before use.
func NewService(cfg config.Meilisearch) *Service {
	return &Service{cfg: cfg}
}

// Connect establishes (or re-establishes) the Meilisearch client and checks
// server health. Returns false when the server is unreachable; the service
// stays usable and callers degrade per their own policy.
func (s *Service) Connect() bool {
	client := meilisearch.NewClient(meilisearch.ClientConfig{
		Host:   s.cfg.URL,
		APIKey: s.cfg.APIKey,
	})

	if _, err := client.Health(); err != nil {
		log.Printf("Failed to connect to Meilisearch at %s: %v", s.cfg.URL, err)
		s.mu.Lock()
		s.client = nil
		s.index = nil
		s.mu.Unlock()
		return false
	}

	s.mu.Lock()
	s.client = client
	s.index = client.Index(s.cfg.Index)
	s.mu.Unlock()
	return true
}

// IsConnected reports whether the index is currently reachable.
func (s *Service) IsConnected() bool {
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()
	if client == nil {
		return false
	}
	return client.IsHealthy()
}

func (s *Service) handle() (*meilisearch.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.index == nil {
		return nil, fmt.Errorf("not connected to Meilisearch")
	}
	return s.index, nil
}

// CreateIndex creates and configures the hadiths index: searchable,
// filterable and sortable attributes plus ranking rules.
func (s *Service) CreateIndex() error {
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()
	if client == nil {
		return fmt.Errorf("not connected to Meilisearch")
	}

	task, err := client.CreateIndex(&meilisearch.IndexConfig{
		Uid:        s.cfg.Index,
		PrimaryKey: "id",
	})
	if err != nil {
		return fmt.Errorf("create index: %w", err)
	}
	if _, err := client.WaitForTask(task.TaskUID); err != nil {
		return fmt.Errorf("wait for index creation: %w", err)
	}

	index := client.Index(s.cfg.Index)

	if _, err := index.UpdateSearchableAttributes(&[]string{
		"text_ar", "text_ar_normalized", "text_en", "narrator_en",
	}); err != nil {
		return fmt.Errorf("update searchable attributes: %w", err)
	}
	if _, err := index.UpdateFilterableAttributes(&[]string{
		"book_slug", "grades",
	}); err != nil {
		return fmt.Errorf("update filterable attributes: %w", err)
	}
	if _, err := index.UpdateSortableAttributes(&[]string{
		"hadith_number", "book_slug",
	}); err != nil {
		return fmt.Errorf("update sortable attributes: %w", err)
	}
	if _, err := index.UpdateRankingRules(&[]string{
		"words", "typo", "proximity", "attribute", "sort", "exactness",
	}); err != nil {
		return fmt.Errorf("update ranking rules: %w", err)
	}

	s.mu.Lock()
	s.index = index
	s.mu.Unlock()
	return nil
}

// DeleteIndex drops the hadiths index. Used before a full rebuild.
func (s *Service) DeleteIndex() error {
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()
	if client == nil {
		return fmt.Errorf("not connected to Meilisearch")
	}
	_, err := client.DeleteIndex(s.cfg.Index)
	return err
}

// IndexDocuments adds a batch of hadith documents to the index.
func (s *Service) IndexDocuments(docs []Document) error {
	index, err := s.handle()
	if err != nil {
		return err
	}
	if _, err := index.AddDocuments(docs); err != nil {
		return fmt.Errorf("add documents: %w", err)
	}
	return nil
}

// Search runs a shaped full-text request against the index.
func (s *Service) Search(req Request) (*Result, error) {
	return s.query(req, &meilisearch.SearchRequest{
		Limit:                 req.Limit,
		Offset:                req.Offset,
		Filter:                filterOrNil(req.Filter),
		AttributesToHighlight: req.HighlightFields,
		HighlightPreTag:       HighlightPreTag,
		HighlightPostTag:      HighlightPostTag,
	})
}

// Autocomplete runs a shaped suggestion request against the index.
func (s *Service) Autocomplete(req Request) (*Result, error) {
	return s.query(req, &meilisearch.SearchRequest{
		Limit:                req.Limit,
		AttributesToRetrieve: req.RetrieveFields,
	})
}

func (s *Service) query(req Request, searchReq *meilisearch.SearchRequest) (*Result, error) {
	index, err := s.handle()
	if err != nil {
		return nil, err
	}

	res, err := index.Search(req.Query, searchReq)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	hits, err := decodeHits(res.Hits)
	if err != nil {
		return nil, err
	}

	return &Result{
		Hits:             hits,
		EstimatedTotal:   res.EstimatedTotalHits,
		ProcessingTimeMs: res.ProcessingTimeMs,
	}, nil
}

// decodeHits converts raw index hits into typed hits, lifting the
// _formatted highlight payload into Hit.Highlight.
func decodeHits(raw []interface{}) ([]Hit, error) {
	hits := make([]Hit, 0, len(raw))
	for _, item := range raw {
		buf, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("encode hit: %w", err)
		}
		var decoded struct {
			Hit
			Formatted map[string]any `json:"_formatted"`
		}
		if err := json.Unmarshal(buf, &decoded); err != nil {
			return nil, fmt.Errorf("decode hit: %w", err)
		}
		decoded.Hit.Highlight = decoded.Formatted
		hits = append(hits, decoded.Hit)
	}
	return hits, nil
}

func filterOrNil(filter string) interface{} {
	if filter == "" {
		return nil
	}
	return filter
}
