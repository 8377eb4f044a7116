package advice

import "github.com/certlab/examgrade/internal/llm"

// StudyPlanSchema constrains the model's study-plan output.
var StudyPlanSchema = &llm.Schema{
	Name:        "study-plan",
	Description: "A short personalized study plan built from weak knowledge areas",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two or three encouraging sentences summarizing the result",
			},
			"focus_areas": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"area": map[string]any{
							"type":        "string",
							"description": "Knowledge area name, exactly as given in the prompt",
						},
						"suggestion": map[string]any{
							"type":        "string",
							"description": "One concrete study activity for this area (2-3 sentences)",
						},
					},
					"required":             []any{"area", "suggestion"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"summary", "focus_areas"},
		"additionalProperties": false,
	},
}
