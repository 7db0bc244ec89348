package github

import (
	"context"
	"net/http"
	"sort"
	"time"

	gogithub "github.com/google/go-github/v57/github"
	"github.com/rs/zerolog/log"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"

	"teamhealth/internal/domain"
)

// Размер страницы постраничной выборки GitHub API
const pageSize = 100

// Client - клиент GitHub REST и GraphQL API, реализует domain.SourceControlClient.
// Пагинация строго последовательная: курсор следующей страницы зависит от ответа предыдущей.
type Client struct {
	rest    *gogithub.Client
	graphql *githubv4.Client

	// Таймаут одного HTTP-вызова; истечение отдаётся наверх как транспортная ошибка
	timeout time.Duration
}

// Проверка что Client реализует интерфейс domain.SourceControlClient
var _ domain.SourceControlClient = (*Client)(nil)

// NewClient создаёт клиент GitHub; пустой токен даёт неавторизованный доступ
// с урезанными лимитами
func NewClient(token string, timeout time.Duration) *Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	return &Client{
		rest:    gogithub.NewClient(httpClient),
		graphql: githubv4.NewClient(httpClient),
		timeout: timeout,
	}
}

// callCtx ограничивает один сетевой вызов таймаутом клиента
func (c *Client) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.timeout)
}

// GetRepositoryInfo возвращает метаданные репозитория
func (c *Client) GetRepositoryInfo(ctx context.Context, owner, repo string) (*domain.RemoteRepository, error) {
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()

	remote, _, err := c.rest.Repositories.Get(callCtx, owner, repo)
	if err != nil {
		return nil, err
	}

	return &domain.RemoteRepository{
		Owner:         remote.GetOwner().GetLogin(),
		Name:          remote.GetName(),
		DefaultBranch: remote.GetDefaultBranch(),
		Private:       remote.GetPrivate(),
	}, nil
}

// GetCollaborators возвращает коллабораторов репозитория; требует токена
// с правами на репозиторий, иначе GitHub отвечает 403
func (c *Client) GetCollaborators(ctx context.Context, owner, repo string) ([]domain.RemoteUser, error) {
	var users []domain.RemoteUser
	opts := &gogithub.ListCollaboratorsOptions{
		ListOptions: gogithub.ListOptions{PerPage: pageSize},
	}

	for {
		callCtx, cancel := c.callCtx(ctx)
		collaborators, resp, err := c.rest.Repositories.ListCollaborators(callCtx, owner, repo, opts)
		cancel()
		if err != nil {
			return nil, err
		}

		for _, u := range collaborators {
			users = append(users, convertUser(u))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return users, nil
}

// GetContributors возвращает контрибьюторов репозитория
func (c *Client) GetContributors(ctx context.Context, owner, repo string) ([]domain.RemoteUser, error) {
	var users []domain.RemoteUser
	opts := &gogithub.ListContributorsOptions{
		ListOptions: gogithub.ListOptions{PerPage: pageSize},
	}

	for {
		callCtx, cancel := c.callCtx(ctx)
		contributors, resp, err := c.rest.Repositories.ListContributors(callCtx, owner, repo, opts)
		cancel()
		if err != nil {
			return nil, err
		}

		for _, contributor := range contributors {
			users = append(users, domain.RemoteUser{
				Login: contributor.GetLogin(),
				Name:  contributor.GetLogin(),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return users, nil
}

// GetIssueAuthors возвращает уникальных авторов issues - последний fallback
// регистрации коллабораторов, работает даже с токеном только на чтение issues
func (c *Client) GetIssueAuthors(ctx context.Context, owner, repo string) ([]domain.RemoteUser, error) {
	issues, err := c.GetIssues(ctx, owner, repo, nil)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var users []domain.RemoteUser
	for _, issue := range issues {
		if issue.AuthorLogin == "" || seen[issue.AuthorLogin] {
			continue
		}
		seen[issue.AuthorLogin] = true
		users = append(users, domain.RemoteUser{
			Login: issue.AuthorLogin,
			Name:  issue.AuthorLogin,
		})
	}

	sort.Slice(users, func(i, j int) bool { return users[i].Login < users[j].Login })
	return users, nil
}

// GetIssues возвращает issues, обновлённые после since (nil - все).
// Эндпоинт issues отдаёт и pull request'ы - они отфильтровываются по флагу.
func (c *Client) GetIssues(ctx context.Context, owner, repo string, since *time.Time) ([]domain.RemoteIssue, error) {
	var issues []domain.RemoteIssue
	opts := &gogithub.IssueListByRepoOptions{
		State:       "all",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gogithub.ListOptions{PerPage: pageSize},
	}
	if since != nil {
		opts.Since = *since
	}

	for {
		callCtx, cancel := c.callCtx(ctx)
		page, resp, err := c.rest.Issues.ListByRepo(callCtx, owner, repo, opts)
		cancel()
		if err != nil {
			return nil, err
		}

		for _, issue := range page {
			issues = append(issues, convertIssue(issue))
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return issues, nil
}

// GetPullRequests возвращает pull request'ы, обновлённые после since (nil - все).
// У REST-эндпоинта списка PR нет параметра since - фильтрация по updated_at
// выполняется на стороне клиента; сортировка по updated desc позволяет
// остановить пагинацию на первой целиком устаревшей странице.
func (c *Client) GetPullRequests(ctx context.Context, owner, repo string, since *time.Time) ([]domain.RemotePullRequest, error) {
	var pullRequests []domain.RemotePullRequest
	opts := &gogithub.PullRequestListOptions{
		State:       "all",
		Sort:        "updated",
		Direction:   "desc",
		ListOptions: gogithub.ListOptions{PerPage: pageSize},
	}

	for {
		callCtx, cancel := c.callCtx(ctx)
		page, resp, err := c.rest.PullRequests.List(callCtx, owner, repo, opts)
		cancel()
		if err != nil {
			return nil, err
		}

		pageExhausted := false
		for _, pr := range page {
			if since != nil && pr.GetUpdatedAt().Time.Before(*since) {
				pageExhausted = true
				break
			}
			pullRequests = append(pullRequests, convertPullRequest(pr))
		}

		if pageExhausted || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	// Списочный эндпоинт не отдаёт статистику изменений -
	// добираем её отдельным запросом на каждый PR
	for i := range pullRequests {
		if err := c.fillChangeStats(ctx, owner, repo, &pullRequests[i]); err != nil {
			log.Warn().
				Err(err).
				Str("owner", owner).
				Str("repo", repo).
				Int("pr_number", pullRequests[i].Number).
				Msg("failed to fetch pull request change stats")
		}
	}

	return pullRequests, nil
}

// fillChangeStats дозапрашивает additions/deletions/changed_files одного PR
func (c *Client) fillChangeStats(ctx context.Context, owner, repo string, pr *domain.RemotePullRequest) error {
	callCtx, cancel := c.callCtx(ctx)
	defer cancel()

	detailed, _, err := c.rest.PullRequests.Get(callCtx, owner, repo, pr.Number)
	if err != nil {
		return err
	}

	pr.Additions = detailed.GetAdditions()
	pr.Deletions = detailed.GetDeletions()
	pr.ChangedFiles = detailed.GetChangedFiles()
	return nil
}

// GetLinkedIssuesForPR возвращает номера issues, которые закрывает данный PR.
// Связь "closing issues" доступна только через GraphQL API.
func (c *Client) GetLinkedIssuesForPR(ctx context.Context, owner, repo string, prNumber int) ([]int, error) {
	var query struct {
		Repository struct {
			PullRequest struct {
				ClosingIssuesReferences struct {
					Nodes []struct {
						Number githubv4.Int
					}
				} `graphql:"closingIssuesReferences(first: 20)"`
			} `graphql:"pullRequest(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]interface{}{
		"owner":  githubv4.String(owner),
		"name":   githubv4.String(repo),
		"number": githubv4.Int(prNumber),
	}

	callCtx, cancel := c.callCtx(ctx)
	defer cancel()

	if err := c.graphql.Query(callCtx, &query, variables); err != nil {
		return nil, err
	}

	numbers := make([]int, 0, len(query.Repository.PullRequest.ClosingIssuesReferences.Nodes))
	for _, node := range query.Repository.PullRequest.ClosingIssuesReferences.Nodes {
		numbers = append(numbers, int(node.Number))
	}

	return numbers, nil
}

func convertUser(user *gogithub.User) domain.RemoteUser {
	name := user.GetName()
	if name == "" {
		name = user.GetLogin()
	}
	return domain.RemoteUser{
		Login: user.GetLogin(),
		Name:  name,
	}
}

func convertIssue(issue *gogithub.Issue) domain.RemoteIssue {
	var closedAt *time.Time
	if issue.ClosedAt != nil {
		t := issue.ClosedAt.Time
		closedAt = &t
	}

	return domain.RemoteIssue{
		Number:        issue.GetNumber(),
		Title:         issue.GetTitle(),
		Body:          issue.GetBody(),
		State:         issue.GetState(),
		AuthorLogin:   issue.GetUser().GetLogin(),
		AssigneeLogin: issue.GetAssignee().GetLogin(),
		IsPullRequest: issue.IsPullRequest(),
		CreatedAt:     issue.GetCreatedAt().Time,
		UpdatedAt:     issue.GetUpdatedAt().Time,
		ClosedAt:      closedAt,
	}
}

func convertPullRequest(pr *gogithub.PullRequest) domain.RemotePullRequest {
	var mergedAt *time.Time
	if pr.MergedAt != nil {
		t := pr.MergedAt.Time
		mergedAt = &t
	}

	return domain.RemotePullRequest{
		Number:      pr.GetNumber(),
		Title:       pr.GetTitle(),
		Body:        pr.GetBody(),
		State:       pr.GetState(),
		AuthorLogin: pr.GetUser().GetLogin(),
		CreatedAt:   pr.GetCreatedAt().Time,
		UpdatedAt:   pr.GetUpdatedAt().Time,
		MergedAt:    mergedAt,
	}
}
