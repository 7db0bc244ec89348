package scoring

// RubricCategory - фиксированная категория рубрики с весом и подсказкой для оценки
type RubricCategory struct {
	Name     string
	Weight   int
	Guidance string
}

// Рубрика качества описания issue: 4 категории, веса в сумме дают 100
var QualityRubric = []RubricCategory{
	{
		Name:     "clarity",
		Weight:   25,
		Guidance: "Is the problem or task stated unambiguously, with a clear title matching the body?",
	},
	{
		Name:     "completion_criteria",
		Weight:   25,
		Guidance: "Does the issue define what 'done' means: acceptance criteria, expected behavior or checklists?",
	},
	{
		Name:     "context",
		Weight:   30,
		Guidance: "Does the body give enough background: motivation, reproduction steps, links, screenshots?",
	},
	{
		Name:     "actionability",
		Weight:   20,
		Guidance: "Can the assignee start working without asking clarifying questions?",
	},
}

// Рубрика согласованности issue и связанных pull request: 5 категорий, веса в сумме 100
var ConsistencyRubric = []RubricCategory{
	{
		Name:     "purpose_alignment",
		Weight:   20,
		Guidance: "Do the pull requests address the goal stated in the issue?",
	},
	{
		Name:     "implementation_coverage",
		Weight:   30,
		Guidance: "Do the changes cover everything the issue asks for, without unrelated work?",
	},
	{
		Name:     "scope_consistency",
		Weight:   20,
		Guidance: "Is the size of the change (files, additions, deletions) proportional to the issue scope?",
	},
	{
		Name:     "description_accuracy",
		Weight:   20,
		Guidance: "Do the pull request descriptions accurately reflect the actual changes?",
	},
	{
		Name:     "traceability",
		Weight:   10,
		Guidance: "Is the link between the issue and the pull requests explicit and easy to follow?",
	},
}

// Weights возвращает веса категорий рубрики в порядке объявления
func Weights(rubric []RubricCategory) []int {
	weights := make([]int, len(rubric))
	for i, c := range rubric {
		weights[i] = c.Weight
	}
	return weights
}
