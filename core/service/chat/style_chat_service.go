package chat

import (
	"context"
	"strings"
	"time"

	"style_server/core/domain"
	"style_server/core/port/in"
	"style_server/core/port/out"
	"style_server/pkg/apperr"
	"style_server/pkg/logger"
)

// Config tunes the chat service.
type Config struct {
	AssistantName string
	HistoryLimit  int
	AppendTimeout time.Duration
}

// Service implements in.ChatService.
type Service struct {
	profiles  in.ProfileService
	generator out.TextGenerator
	history   out.ChatHistoryRepository
	cfg       Config
}

// NewService creates a Service.
func NewService(profiles in.ProfileService, generator out.TextGenerator, history out.ChatHistoryRepository, cfg Config) *Service {
	if cfg.AssistantName == "" {
		cfg.AssistantName = "Glambot"
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = 50
	}
	if cfg.AppendTimeout <= 0 {
		cfg.AppendTimeout = 5 * time.Second
	}
	return &Service{
		profiles:  profiles,
		generator: generator,
		history:   history,
		cfg:       cfg,
	}
}

// SendMessage builds a prompt from the user's stored preferences, asks the
// generator and records the exchange.
func (s *Service) SendMessage(ctx context.Context, userID int64, message string) (*domain.ChatReply, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperr.ValidationFailed("Message is required")
	}

	chatCtx := domain.ChatContext{
		PreferredStyles: s.preferredStyles(ctx, userID),
		PreferredColors: s.preferredColors(ctx, userID),
	}
	prompt := BuildPrompt(s.cfg.AssistantName, message, chatCtx.PreferredStyles, chatCtx.PreferredColors)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		logger.WithContext(ctx).WithError(apperr.GenerationUnavailable(err)).
			WithField("user_id", userID).Warn("chat generation failed, sending fallback")
		return &domain.ChatReply{Response: FallbackResponse, Context: chatCtx}, nil
	}

	s.record(ctx, &domain.ChatExchange{
		UserID:    userID,
		Message:   message,
		Response:  text,
		Timestamp: time.Now().UTC(),
	})

	return &domain.ChatReply{Response: text, Context: chatCtx}, nil
}

// History returns the user's latest exchanges, newest first.
func (s *Service) History(ctx context.Context, userID int64, limit int) ([]domain.ChatExchange, error) {
	if limit <= 0 || limit > s.cfg.HistoryLimit {
		limit = s.cfg.HistoryLimit
	}
	exchanges, err := s.history.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperr.PersistenceFailure("Failed to get chat history", err)
	}
	return exchanges, nil
}

// SaveExchange stores an exchange the client already holds, e.g. one
// produced before the user signed in.
func (s *Service) SaveExchange(ctx context.Context, exchange *domain.ChatExchange) error {
	exchange.Message = strings.TrimSpace(exchange.Message)
	exchange.Response = strings.TrimSpace(exchange.Response)
	switch {
	case exchange.UserID <= 0:
		return apperr.BadRequest("Invalid user_id")
	case exchange.Message == "":
		return apperr.MissingField("message")
	case exchange.Response == "":
		return apperr.MissingField("response")
	}

	exchange.Timestamp = time.Now().UTC()
	if err := s.history.Append(ctx, exchange); err != nil {
		return apperr.PersistenceFailure("Failed to save chat history", err)
	}
	return nil
}

// record appends the exchange on a context that outlives the request.
// The reply is already computed, so a failure here is only logged.
func (s *Service) record(ctx context.Context, exchange *domain.ChatExchange) {
	appendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.AppendTimeout)
	defer cancel()

	if err := s.history.Append(appendCtx, exchange); err != nil {
		logger.WithContext(ctx).WithError(err).
			WithField("user_id", exchange.UserID).Error("failed to save chat exchange")
	}
}

func (s *Service) preferredStyles(ctx context.Context, userID int64) string {
	prefs, err := s.profiles.GetStyleProfile(ctx, userID)
	if err != nil {
		logger.WithContext(ctx).WithError(err).Warn("chat: style profile unavailable for user %d", userID)
		return notSpecified
	}
	names := make([]string, len(prefs))
	for i, p := range prefs {
		names[i] = p.StyleName
	}
	return joinOrNotSpecified(names)
}

func (s *Service) preferredColors(ctx context.Context, userID int64) string {
	palette, err := s.profiles.GetColorPalette(ctx, userID)
	if err != nil {
		if !apperr.IsCode(err, apperr.CodeNotFound) {
			logger.WithContext(ctx).WithError(err).Warn("chat: color palette unavailable for user %d", userID)
		}
		return notSpecified
	}
	return joinOrNotSpecified(palette.ColorNames())
}
