package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"teamhealth/internal/domain"
	"teamhealth/internal/logger"
	"teamhealth/internal/metrics"
	"teamhealth/internal/scoring"
	"teamhealth/internal/storage"
)

// RegisterRepository регистрирует репозиторий с конфигурацией спринтов.
// Токен доступа шифруется перед записью; существование репозитория
// проверяется запросом к GitHub до открытия транзакции.
func (s *Service) RegisterRepository(outerCtx context.Context, input *domain.RegisterRepositoryInput) (*domain.Repository, error) {
	const op = "service.RegisterRepository"
	requestID := logger.GetRequestID(outerCtx)

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("owner", input.Owner).
		Str("name", input.Name).
		Msg("registering repository")

	if input.Owner == "" || input.Name == "" {
		return nil, domain.NewValidationError(errors.New("owner and name are required"))
	}
	if input.TrackingStartDate.IsZero() {
		return nil, domain.NewValidationError(errors.New("tracking start date is required"))
	}

	// Конфигурация спринтов валидируется теми же правилами, по которым
	// она потом применяется к датам issues
	if _, err := scoring.NewSprintConfig(input.SprintStartDayOfWeek, input.SprintDurationWeeks, input.TrackingStartDate); err != nil {
		return nil, domain.NewValidationError(err)
	}

	if _, err := s.github.GetRepositoryInfo(outerCtx, input.Owner, input.Name); err != nil {
		return nil, domain.WrapError(err, domain.ErrGitHubFetch.Status, domain.ErrorCodeGitHubFetchFailed,
			fmt.Sprintf("repository %s/%s is not reachable on GitHub", input.Owner, input.Name))
	}

	encryptedToken, err := s.cipher.Encrypt(input.AccessToken)
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	repo := &domain.Repository{
		ID:                   uuid.New().String(),
		Owner:                input.Owner,
		Name:                 input.Name,
		AccessToken:          encryptedToken,
		TrackingStartDate:    input.TrackingStartDate,
		SprintStartDayOfWeek: input.SprintStartDayOfWeek,
		SprintDurationWeeks:  input.SprintDurationWeeks,
	}

	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		return tx.RepositoryRepo().Create(ctx, repo)
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("repository_id", repo.ID).
		Msg("successfully registered repository")

	// Наружу токен отдаётся в исходном виде
	repo.AccessToken = input.AccessToken
	return repo, nil
}

// GetRepository возвращает репозиторий по owner и name с расшифрованным токеном
func (s *Service) GetRepository(outerCtx context.Context, owner, name string) (*domain.Repository, error) {
	const op = "service.GetRepository"
	var repo *domain.Repository

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		repo, err = tx.RepositoryRepo().GetByOwnerAndName(ctx, owner, name)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	token, err := s.cipher.Decrypt(repo.AccessToken)
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}
	repo.AccessToken = token

	return repo, nil
}

// RegisterCollaborators регистрирует новых коллабораторов репозитория.
// Источники пробуются по цепочке collaborators -> contributors -> авторы issues:
// каждый следующий требует меньше прав токена, чем предыдущий.
func (s *Service) RegisterCollaborators(outerCtx context.Context, input *domain.RegisterCollaboratorsInput) (*domain.RegisterCollaboratorsResult, error) {
	const op = "service.RegisterCollaborators"
	requestID := logger.GetRequestID(outerCtx)
	var repo *domain.Repository

	err := s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		var err error
		repo, err = tx.RepositoryRepo().GetByID(ctx, input.RepositoryID)
		return err
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	remoteUsers, source, err := s.fetchCollaborators(outerCtx, repo.Owner, repo.Name)
	if err != nil {
		return nil, domain.WrapError(err, domain.ErrGitHubFetch.Status, domain.ErrorCodeGitHubFetchFailed,
			"all collaborator sources failed")
	}

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("repository_id", repo.ID).
		Str("source", source).
		Int("fetched_count", len(remoteUsers)).
		Msg("fetched collaborators from GitHub")

	if len(input.AllowedLogins) > 0 {
		remoteUsers = filterByLogins(remoteUsers, input.AllowedLogins)
	}

	result := &domain.RegisterCollaboratorsResult{}

	err = s.txmgr.Do(outerCtx, func(ctx context.Context, tx storage.Tx) error {
		existing, err := tx.CollaboratorRepo().ListByRepository(ctx, repo.ID)
		if err != nil {
			return err
		}

		known := make(map[string]bool, len(existing))
		for _, c := range existing {
			known[c.GitHubUserName] = true
		}

		var fresh []domain.Collaborator
		for _, u := range remoteUsers {
			if known[u.Login] {
				continue
			}
			fresh = append(fresh, domain.Collaborator{
				ID:             uuid.New().String(),
				RepositoryID:   repo.ID,
				GitHubUserName: u.Login,
				Name:           u.Name,
			})
		}

		if len(fresh) > 0 {
			if err := tx.CollaboratorRepo().CreateBatch(ctx, fresh); err != nil {
				return err
			}
		}

		all, err := tx.CollaboratorRepo().ListByRepository(ctx, repo.ID)
		if err != nil {
			return err
		}

		result.Collaborators = all
		result.AddedCount = len(fresh)
		return nil
	})
	if err != nil {
		return nil, s.formatError(outerCtx, op, err)
	}

	metrics.CollaboratorsRegisteredTotal.Add(float64(result.AddedCount))

	log.Info().
		Str("request_id", requestID).
		Str("layer", "service").
		Str("repository_id", repo.ID).
		Int("added_count", result.AddedCount).
		Msg("successfully registered collaborators")

	return result, nil
}

// fetchCollaborators пробует источники участников по цепочке и возвращает
// первый непустой результат вместе с именем сработавшего источника
func (s *Service) fetchCollaborators(ctx context.Context, owner, name string) ([]domain.RemoteUser, string, error) {
	users, err := s.github.GetCollaborators(ctx, owner, name)
	if err == nil && len(users) > 0 {
		return users, "collaborators", nil
	}
	lastErr := err

	users, err = s.github.GetContributors(ctx, owner, name)
	if err == nil && len(users) > 0 {
		return users, "contributors", nil
	}
	if err != nil {
		lastErr = err
	}

	users, err = s.github.GetIssueAuthors(ctx, owner, name)
	if err == nil && len(users) > 0 {
		return users, "issue_authors", nil
	}
	if err != nil {
		lastErr = err
	}

	if lastErr == nil {
		lastErr = errors.New("no collaborators found in any source")
	}
	return nil, "", lastErr
}

func filterByLogins(users []domain.RemoteUser, allowed []string) []domain.RemoteUser {
	allowedSet := make(map[string]bool, len(allowed))
	for _, login := range allowed {
		allowedSet[login] = true
	}

	var filtered []domain.RemoteUser
	for _, u := range users {
		if allowedSet[u.Login] {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// collaboratorLoginIndex строит отображение логин -> ID коллаборатора
// для разрешения слабых ссылок автора и исполнителя
func collaboratorLoginIndex(collaborators []domain.Collaborator) map[string]string {
	index := make(map[string]string, len(collaborators))
	for _, c := range collaborators {
		index[c.GitHubUserName] = c.ID
	}
	return index
}

// resolveLogin возвращает указатель на ID коллаборатора или nil если логин неизвестен
func resolveLogin(index map[string]string, login string) *string {
	if login == "" {
		return nil
	}
	id, ok := index[login]
	if !ok {
		return nil
	}
	return &id
}

// syncInstant фиксирует момент начала синхронизации для watermark:
// он берётся до обращения к GitHub, чтобы изменения во время выборки
// попали в следующий инкремент
func syncInstant() time.Time {
	return time.Now().UTC()
}
