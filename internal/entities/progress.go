package entities

// ProgressUpdate is the payload for recording a progress snapshot.
// Everything except user_id is optional; omitted fields must not
// appear in the stored document, hence the pointers.
type ProgressUpdate struct {
	UserID            string   `json:"user_id" binding:"required"`
	LessonID          *string  `json:"lesson_id"`
	QuizScore         *float64 `json:"quiz_score" binding:"omitempty,gte=0,lte=100"`
	Completed         *bool    `json:"completed"`
	StreakDays        *int     `json:"streak_days" binding:"omitempty,gte=0"`
	StudiedFlashcards *int     `json:"studied_flashcards" binding:"omitempty,gte=0"`
}

// Document returns the stored snapshot with omitted fields stripped.
func (p ProgressUpdate) Document() map[string]any {
	doc := map[string]any{
		"user_id": p.UserID,
	}
	if p.LessonID != nil {
		doc["lesson_id"] = *p.LessonID
	}
	if p.QuizScore != nil {
		doc["quiz_score"] = *p.QuizScore
	}
	if p.Completed != nil {
		doc["completed"] = *p.Completed
	}
	if p.StreakDays != nil {
		doc["streak_days"] = *p.StreakDays
	}
	if p.StudiedFlashcards != nil {
		doc["studied_flashcards"] = *p.StudiedFlashcards
	}
	return doc
}

// DefaultProgress is the snapshot reported for a user with no
// recorded progress yet.
func DefaultProgress(userID string) map[string]any {
	return map[string]any{
		"user_id":     userID,
		"streak_days": 0,
		"completed":   false,
	}
}
