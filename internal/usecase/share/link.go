package share

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-actions/internal/domain/entities"
	"github.com/johnquangdev/meeting-actions/internal/domain/repositories"
	ucerrors "github.com/johnquangdev/meeting-actions/internal/usecase/errors"
)

// Link is a created share link
type Link struct {
	ID  uuid.UUID
	URL string
}

// LinkService publishes action item snapshots under share links
type LinkService struct {
	repo    repositories.ShareRepository
	baseURL string
	ttl     time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

// NewLinkService creates a link service. A zero ttl keeps links forever.
func NewLinkService(repo repositories.ShareRepository, baseURL string, ttl time.Duration, logger *zap.Logger) *LinkService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LinkService{
		repo:    repo,
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
	}
}

// Create stores actions and returns their link
func (s *LinkService) Create(ctx context.Context, actions []entities.ActionItem) (*Link, error) {
	if len(actions) == 0 {
		return nil, ucerrors.ErrNoActions
	}

	result := entities.NewSharedResult(actions, s.ttl)
	if err := s.repo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to store shared result: %w", err)
	}

	s.logger.Info("share.link_created",
		zap.String("share_id", result.ID.String()),
		zap.Int("actions", len(actions)),
	)

	return &Link{
		ID:  result.ID,
		URL: s.baseURL + "/api/share/" + result.ID.String(),
	}, nil
}

// Get returns the shared result for id. Malformed, unknown and expired ids
// all yield entities.ErrShareNotFound.
func (s *LinkService) Get(ctx context.Context, id string) (*entities.SharedResult, error) {
	shareID, err := uuid.Parse(id)
	if err != nil {
		return nil, entities.ErrShareNotFound
	}

	result, err := s.repo.FindByID(ctx, shareID)
	if err != nil {
		if errors.Is(err, entities.ErrShareNotFound) {
			return nil, entities.ErrShareNotFound
		}
		return nil, fmt.Errorf("failed to load shared result: %w", err)
	}

	if result.IsExpired(s.now()) {
		s.logger.Debug("share.link_expired", zap.String("share_id", id))
		return nil, entities.ErrShareNotFound
	}
	return result, nil
}
