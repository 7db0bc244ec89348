package handlers

import (
	"teamhealth/internal/api"
	"teamhealth/internal/domain"
)

// mapRepositoryToAPI преобразует доменный репозиторий в API представление;
// токен доступа в ответ не попадает
func mapRepositoryToAPI(repo *domain.Repository) api.Repository {
	return api.Repository{
		ID:                   repo.ID,
		Owner:                repo.Owner,
		Name:                 repo.Name,
		TrackingStartDate:    repo.TrackingStartDate,
		SprintStartDayOfWeek: repo.SprintStartDayOfWeek,
		SprintDurationWeeks:  repo.SprintDurationWeeks,
		CreatedAt:            repo.CreatedAt,
	}
}

// mapCollaboratorsToAPI преобразует список коллабораторов в API представление
func mapCollaboratorsToAPI(collaborators []domain.Collaborator) []api.Collaborator {
	result := make([]api.Collaborator, len(collaborators))
	for i, c := range collaborators {
		result[i] = api.Collaborator{
			ID:             c.ID,
			GitHubUserName: c.GitHubUserName,
			Name:           c.Name,
		}
	}
	return result
}

// mapEvaluationToAPI преобразует запись оценок в API представление
// с раздельными nullable слотами
func mapEvaluationToAPI(evaluation *domain.Evaluation) api.Evaluation {
	result := api.Evaluation{IssueID: evaluation.IssueID}

	if evaluation.SpeedScore != nil && evaluation.SpeedGrade != nil && evaluation.SpeedCalculatedAt != nil {
		result.Speed = &api.EvaluationSlot{
			Score:        *evaluation.SpeedScore,
			Grade:        *evaluation.SpeedGrade,
			CalculatedAt: *evaluation.SpeedCalculatedAt,
		}
	}

	if evaluation.QualityScore != nil && evaluation.QualityGrade != nil && evaluation.QualityCalculatedAt != nil {
		result.Quality = &api.EvaluationSlot{
			Score:        *evaluation.QualityScore,
			Grade:        *evaluation.QualityGrade,
			Detail:       evaluation.QualityDetail,
			CalculatedAt: *evaluation.QualityCalculatedAt,
		}
	}

	if evaluation.ConsistencyScore != nil && evaluation.ConsistencyGrade != nil && evaluation.ConsistencyCalculatedAt != nil {
		result.Consistency = &api.EvaluationSlot{
			Score:        *evaluation.ConsistencyScore,
			Grade:        *evaluation.ConsistencyGrade,
			Detail:       evaluation.ConsistencyDetail,
			CalculatedAt: *evaluation.ConsistencyCalculatedAt,
		}
	}

	return result
}

// mapBatchItemsToAPI преобразует поштучные исходы батча в API представление
func mapBatchItemsToAPI(items []domain.BatchItemResult) []api.BatchItem {
	result := make([]api.BatchItem, len(items))
	for i, item := range items {
		result[i] = api.BatchItem{
			IssueID:      item.IssueID,
			GitHubNumber: item.GitHubNumber,
			Kind:         string(item.Kind),
			Outcome:      string(item.Outcome),
			Reason:       item.Reason,
		}
	}
	return result
}
