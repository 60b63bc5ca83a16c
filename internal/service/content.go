package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/dustin/go-humanize"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"backendservice/internal/model"
	"backendservice/internal/randomcontent"
	"backendservice/internal/repository"
	"backendservice/internal/storage"
)

const (
	defaultMaxRandomBytes = 64 << 20
	defaultExportExpiry   = 15 * time.Minute
)

// CreatedResource is returned by create operations.
type CreatedResource struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ExportResult points at a stored copy of a content document.
type ExportResult struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ContentService defines the use cases of the contents resource.
type ContentService interface {
	// Create stores a JSON document under a new id and returns the id with its resource URL.
	Create(ctx context.Context, data []byte) (*CreatedResource, error)

	// List returns every content in insertion order.
	List(ctx context.Context) ([]model.Content, error)

	// Get returns a content by id. A content stored without a body has nil Data.
	Get(ctx context.Context, id string) (*model.Content, error)

	Update(ctx context.Context, id string, data []byte) error
	Delete(ctx context.Context, id string) error

	// Random generates a document of the requested size without storing it.
	Random(ctx context.Context, size string) ([]byte, error)

	// CreateRandom generates a document of the requested size and stores it.
	CreateRandom(ctx context.Context, size string) (*CreatedResource, error)

	// Export copies a content to object storage and returns a presigned download URL.
	Export(ctx context.Context, id string) (*ExportResult, error)
}

// ContentOptions configures a ContentService.
type ContentOptions struct {
	// PublicBaseURL prefixes the URLs handed back by create operations.
	PublicBaseURL string
	// MaxRandomBytes bounds generated documents. Zero means the default of 64 MiB.
	MaxRandomBytes int
	// ExportExpiry is the lifetime of export URLs. Zero means 15 minutes.
	ExportExpiry time.Duration
	Generator    *randomcontent.Generator
	Logger       *slog.Logger
}

type contentService struct {
	store storage.Storage
	repo  repository.ContentRepository
	opts  ContentOptions
}

// NewContentService constructs a ContentService. store may be nil, which disables Export.
func NewContentService(store storage.Storage, repo repository.ContentRepository, opts ContentOptions) ContentService {
	if opts.MaxRandomBytes <= 0 {
		opts.MaxRandomBytes = defaultMaxRandomBytes
	}
	if opts.ExportExpiry <= 0 {
		opts.ExportExpiry = defaultExportExpiry
	}
	if opts.Generator == nil {
		opts.Generator = randomcontent.Default
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &contentService{store: store, repo: repo, opts: opts}
}

func (s *contentService) Create(ctx context.Context, data []byte) (*CreatedResource, error) {
	if !validJSON(data) {
		return nil, ErrInvalidPayload
	}
	return s.create(ctx, data)
}

func (s *contentService) List(ctx context.Context) ([]model.Content, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Content{}
	}
	return items, nil
}

func (s *contentService) Get(ctx context.Context, id string) (*model.Content, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return c, nil
}

func (s *contentService) Update(ctx context.Context, id string, data []byte) error {
	if id == "" {
		return ErrIDRequired
	}
	if !validJSON(data) {
		return ErrInvalidPayload
	}
	return translate(s.repo.Update(ctx, id, json.RawMessage(data)))
}

// Delete removes the record, then drops any exported copy. Export cleanup is best effort.
func (s *contentService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate(err)
	}
	if s.store != nil {
		if err := s.store.Delete(ctx, exportKey(id)); err != nil {
			s.opts.Logger.WarnContext(ctx, "content_export_cleanup_failed",
				"content_id", id,
				"error_message", err.Error(),
			)
		}
	}
	return nil
}

func (s *contentService) Random(ctx context.Context, size string) ([]byte, error) {
	return s.generate(ctx, size)
}

func (s *contentService) CreateRandom(ctx context.Context, size string) (*CreatedResource, error) {
	doc, err := s.generate(ctx, size)
	if err != nil {
		return nil, err
	}
	return s.create(ctx, doc)
}

func (s *contentService) Export(ctx context.Context, id string) (*ExportResult, error) {
	if s.store == nil {
		return nil, ErrExportDisabled
	}
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	body := []byte(c.Data)
	if body == nil {
		body = []byte("null")
	}
	key := exportKey(id)
	if _, err := s.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata:    map[string]string{"content-id": id},
	}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	u, err := s.store.PresignGet(ctx, key, s.opts.ExportExpiry)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}
	return &ExportResult{
		ID:        id,
		URL:       u,
		ExpiresAt: time.Now().UTC().Add(s.opts.ExportExpiry),
	}, nil
}

func (s *contentService) create(ctx context.Context, data []byte) (*CreatedResource, error) {
	stored, err := s.repo.Create(ctx, &model.Content{Data: json.RawMessage(data)})
	if err != nil {
		return nil, translate(err)
	}
	u, err := s.resourceURL(stored.ID)
	if err != nil {
		return nil, err
	}
	return &CreatedResource{ID: stored.ID, URL: u}, nil
}

// generate validates size before doing any work.
func (s *contentService) generate(ctx context.Context, size string) ([]byte, error) {
	n, err := randomcontent.ParseSize(size)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSize, size)
	}
	if n > s.opts.MaxRandomBytes {
		return nil, &SizeLimitError{Size: n, Limit: s.opts.MaxRandomBytes}
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.String("content.size_spec", size),
		attribute.Int("content.size_bytes", n),
	)

	doc, err := s.opts.Generator.GenerateBytes(n)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}
	s.opts.Logger.InfoContext(ctx, "random_content_generated",
		"size_spec", size,
		"size", humanize.IBytes(uint64(n)),
	)
	return doc, nil
}

func (s *contentService) resourceURL(id string) (string, error) {
	u, err := url.JoinPath(s.opts.PublicBaseURL, "v1", "contents", url.PathEscape(id))
	if err != nil {
		return "", fmt.Errorf("build content url: %w", err)
	}
	return u, nil
}

// validJSON also requires UTF-8 so every store backend accepts the document as text.
func validJSON(b []byte) bool {
	return utf8.Valid(b) && json.Valid(b)
}

func exportKey(id string) string {
	return "contents/" + id + ".json"
}
