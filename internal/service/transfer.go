package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"backendservice/internal/model"
	"backendservice/internal/repository"
	"backendservice/internal/resolver"
)

// TransferService defines the use cases of the transfers resource.
//
// A transfer is created with its asset resolved and no contents, moves to "contents populated"
// through UpdateContents and ends when deleted. Nothing transitions on its own.
type TransferService interface {
	// Accept parses a transfer request, resolves its asset and stores the transfer.
	// Returns the transfer id, caller-supplied or assigned.
	Accept(ctx context.Context, raw []byte) (string, error)

	// GetAsset returns the stored asset document. A missing transfer and a transfer without
	// an asset are both ErrNotFound.
	GetAsset(ctx context.Context, id string) (json.RawMessage, error)

	// GetContents is GetAsset for the contents field.
	GetContents(ctx context.Context, id string) (json.RawMessage, error)

	// RefreshAsset resolves the stored request again and overwrites the asset.
	RefreshAsset(ctx context.Context, id string) (json.RawMessage, error)

	UpdateContents(ctx context.Context, id string, raw []byte) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Transfer, error)
}

type transferService struct {
	resolver resolver.AssetResolver
	repo     repository.TransferRepository
	validate *validator.Validate
	log      *slog.Logger
}

// NewTransferService constructs a TransferService.
func NewTransferService(res resolver.AssetResolver, repo repository.TransferRepository, log *slog.Logger) TransferService {
	if log == nil {
		log = slog.Default()
	}
	return &transferService{
		resolver: res,
		repo:     repo,
		validate: validator.New(),
		log:      log,
	}
}

// Accept resolves before it writes, so a failed resolution leaves nothing behind.
func (s *transferService) Accept(ctx context.Context, raw []byte) (string, error) {
	if !validJSON(raw) {
		s.log.InfoContext(ctx, "transfer_rejected", "reason", "decode")
		return "", ErrInvalidPayload
	}
	var req model.TransferRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		s.log.InfoContext(ctx, "transfer_rejected", "reason", "shape", "error_message", err.Error())
		return "", fmt.Errorf("%w: %v", ErrInvalidTransfer, err)
	}
	if err := s.validate.Struct(req); err != nil {
		s.log.InfoContext(ctx, "transfer_rejected", "reason", "validation", "error_message", err.Error())
		return "", fmt.Errorf("%w: %v", ErrInvalidTransfer, err)
	}

	asset, err := s.resolve(ctx, req)
	if err != nil {
		return "", err
	}

	stored, err := s.repo.Create(ctx, &model.Transfer{
		ID:       req.ID,
		Document: append(json.RawMessage(nil), raw...),
		Asset:    asset,
	})
	if err != nil {
		return "", translate(err)
	}
	return stored.ID, nil
}

func (s *transferService) GetAsset(ctx context.Context, id string) (json.RawMessage, error) {
	t, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.document(ctx, id, "asset", t.Asset)
}

func (s *transferService) GetContents(ctx context.Context, id string) (json.RawMessage, error) {
	t, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.document(ctx, id, "contents", t.Contents)
}

func (s *transferService) RefreshAsset(ctx context.Context, id string) (json.RawMessage, error) {
	t, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}
	var req model.TransferRequest
	if err := json.Unmarshal(t.Document, &req); err != nil {
		s.log.ErrorContext(ctx, "transfer_document_corrupt", "transfer_id", id, "field", "document")
		return nil, fmt.Errorf("%w: transfer %s document", ErrCorruptDocument, id)
	}
	req.ID = id

	asset, err := s.resolve(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateAsset(ctx, id, asset); err != nil {
		return nil, translate(err)
	}
	return asset, nil
}

// resolve returns the asset URL encoded as a JSON string.
func (s *transferService) resolve(ctx context.Context, req model.TransferRequest) (json.RawMessage, error) {
	assetURL, err := s.resolver.Resolve(ctx, req)
	if err != nil {
		s.log.InfoContext(ctx, "transfer_rejected",
			"reason", "resolution",
			"transfer_id", req.ID,
			"error_message", err.Error(),
		)
		return nil, ErrAssetUnresolved
	}
	asset, err := json.Marshal(assetURL)
	if err != nil {
		return nil, fmt.Errorf("encode asset: %w", err)
	}
	return asset, nil
}

func (s *transferService) UpdateContents(ctx context.Context, id string, raw []byte) error {
	if id == "" {
		return ErrIDRequired
	}
	if !validJSON(raw) {
		return ErrInvalidPayload
	}
	return translate(s.repo.UpdateContents(ctx, id, json.RawMessage(raw)))
}

func (s *transferService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrIDRequired
	}
	return translate(s.repo.Delete(ctx, id))
}

func (s *transferService) List(ctx context.Context) ([]model.Transfer, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []model.Transfer{}
	}
	return items, nil
}

func (s *transferService) find(ctx context.Context, id string) (*model.Transfer, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err)
	}
	return t, nil
}

func (s *transferService) document(ctx context.Context, id, field string, doc json.RawMessage) (json.RawMessage, error) {
	if doc == nil {
		return nil, ErrNotFound
	}
	if !json.Valid(doc) {
		s.log.ErrorContext(ctx, "transfer_document_corrupt", "transfer_id", id, "field", field)
		return nil, fmt.Errorf("%w: transfer %s %s", ErrCorruptDocument, id, field)
	}
	return doc, nil
}
