package entities

// SchemaShapes describes the expected document shape of each
// collection for the /schema endpoint. The store itself is schemaless
// and never enforces any of this.
func SchemaShapes() map[string]any {
	return map[string]any{
		CollectionLesson: map[string]any{
			"type":     "object",
			"required": []string{"language", "title", "level", "content"},
			"properties": map[string]any{
				"language": prop("string", "Language code or name (e.g., 'Spanish')"),
				"title":    prop("string", "Lesson title"),
				"level": map[string]any{
					"type":        "string",
					"description": "Difficulty level: A1, A2, B1, B2, C1, C2",
					"enum":        []Level{LevelA1, LevelA2, LevelB1, LevelB2, LevelC1, LevelC2},
				},
				"content": prop("string", "Rich text/markdown lesson content"),
				"objectives": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "What you will learn",
					"default":     []string{},
				},
			},
		},
		CollectionQuiz: map[string]any{
			"type":     "object",
			"required": []string{"lesson_id"},
			"properties": map[string]any{
				"lesson_id": prop("string", "Related lesson id as string"),
				"questions": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "object"},
					"description": "List of questions: {id, prompt, options, answer, type}",
					"default":     []map[string]any{},
				},
			},
		},
		CollectionFlashcard: map[string]any{
			"type":     "object",
			"required": []string{"language", "term", "definition"},
			"properties": map[string]any{
				"language":   prop("string", "Language code or name"),
				"term":       prop("string", "Front of the card"),
				"definition": prop("string", "Back of the card"),
				"example":    prop("string", "Usage example"),
			},
		},
		CollectionProgress: map[string]any{
			"type":     "object",
			"required": []string{"user_id"},
			"properties": map[string]any{
				"user_id":    prop("string", "Client-generated anonymous user id"),
				"lesson_id":  prop("string", "Related lesson id"),
				"quiz_score": prop("number", "Score percentage 0-100"),
				"completed": map[string]any{
					"type":        "boolean",
					"description": "Lesson completed",
					"default":     false,
				},
				"streak_days": map[string]any{
					"type":        "integer",
					"description": "Learning streak days",
					"default":     0,
				},
				"studied_flashcards": map[string]any{
					"type":        "integer",
					"description": "Count of studied cards today",
					"default":     0,
				},
			},
		},
	}
}

func prop(typ, description string) map[string]any {
	return map[string]any{"type": typ, "description": description}
}
