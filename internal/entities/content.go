package entities

// Collection names in the document store. Singular, matching what
// API consumers already depend on.
const (
	CollectionLesson    = "lesson"
	CollectionQuiz      = "quiz"
	CollectionFlashcard = "flashcard"
	CollectionProgress  = "progress"
)

// Level is a CEFR proficiency level.
type Level string

const (
	LevelA1 Level = "A1"
	LevelA2 Level = "A2"
	LevelB1 Level = "B1"
	LevelB2 Level = "B2"
	LevelC1 Level = "C1"
	LevelC2 Level = "C2"
)

// Lesson is a unit of study material in one language.
type Lesson struct {
	Language   string   `json:"language" binding:"required"`
	Title      string   `json:"title" binding:"required"`
	Level      Level    `json:"level" binding:"required,oneof=A1 A2 B1 B2 C1 C2"`
	Content    string   `json:"content" binding:"required"`
	Objectives []string `json:"objectives"`
}

// Document returns the stored form of the lesson. Objectives are
// always present, as an empty list when the caller sent none.
func (l Lesson) Document() map[string]any {
	objectives := l.Objectives
	if objectives == nil {
		objectives = []string{}
	}
	return map[string]any{
		"language":   l.Language,
		"title":      l.Title,
		"level":      string(l.Level),
		"content":    l.Content,
		"objectives": objectives,
	}
}

// Quiz ties a set of questions to a lesson. Questions are free-form
// documents whose shape is owned by the client, typically
// {id, prompt, options, answer, type}.
type Quiz struct {
	LessonID  string           `json:"lesson_id" binding:"required"`
	Questions []map[string]any `json:"questions"`
}

func (q Quiz) Document() map[string]any {
	questions := q.Questions
	if questions == nil {
		questions = []map[string]any{}
	}
	return map[string]any{
		"lesson_id": q.LessonID,
		"questions": questions,
	}
}

// Flashcard is a single term/definition pair.
type Flashcard struct {
	Language   string `json:"language" binding:"required"`
	Term       string `json:"term" binding:"required"`
	Definition string `json:"definition" binding:"required"`
	Example    string `json:"example"`
}

// Document returns the stored form of the card. The usage example is
// omitted when empty rather than stored as an empty string.
func (f Flashcard) Document() map[string]any {
	doc := map[string]any{
		"language":   f.Language,
		"term":       f.Term,
		"definition": f.Definition,
	}
	if f.Example != "" {
		doc["example"] = f.Example
	}
	return doc
}
