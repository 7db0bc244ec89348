package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"teamhealth/internal/crypto"
	"teamhealth/internal/domain"
	"teamhealth/internal/storage"
)

// Service реализует domain.SyncService и domain.EvaluationService
// используя storage.TxManager и клиентов внешних сервисов
type Service struct {
	txmgr   storage.TxManager
	github  domain.SourceControlClient
	scoring domain.ScoringClient
	cipher  *crypto.Cipher
}

// Проверка что Service реализует оба доменных интерфейса
var (
	_ domain.SyncService       = (*Service)(nil)
	_ domain.EvaluationService = (*Service)(nil)
)

// New создаёт новый Service с зависимостями
func New(txmgr storage.TxManager, github domain.SourceControlClient, scoring domain.ScoringClient, cipher *crypto.Cipher) *Service {
	return &Service{
		txmgr:   txmgr,
		github:  github,
		scoring: scoring,
		cipher:  cipher,
	}
}

// formatError преобразует ошибки storage слоя в доменные ошибки с правильными HTTP кодами
func (s *Service) formatError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		// Определяем тип ресурса по имени операции для точного сообщения об ошибке
		if strings.Contains(op, "Issue") || strings.Contains(op, "Evaluate") {
			return domain.ErrIssueNotFound
		}
		return domain.ErrRepositoryNotFound
	case errors.Is(err, storage.ErrAlreadyExists):
		if op == "service.RegisterRepository" {
			return domain.ErrRepositoryExists
		}
		return domain.ErrInternal
	case domain.IsDomainError(err):
		return err
	case errors.Is(err, ctx.Err()):
		return ctx.Err()
	default:
		log.Error().Err(err).Str("operation", op).Msg("operation failed")
		return domain.ErrInternal
	}
}
