// Package testutil provides database and evaluation fixtures for PrepMimo tests.
package testutil

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/prepmimo/backend/internal/config"
	"github.com/prepmimo/backend/internal/database"
	"github.com/prepmimo/backend/internal/model"
	"gorm.io/gorm"
)

// NewTestDB opens a migrated sqlite database in a temp directory with foreign keys enforced.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db") + "?_foreign_keys=on"
	db, err := database.Connect(&config.DBConfig{Driver: database.DriverSQLite, DSN: dsn}, false)
	if err != nil {
		t.Fatalf("connecting test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// SeedUser inserts a user with the given id.
func SeedUser(t *testing.T, db *gorm.DB, id string) *model.User {
	t.Helper()

	user := &model.User{
		ID:    id,
		Name:  "Candidate " + id,
		Email: fmt.Sprintf("%s@example.com", id),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seeding user %s: %v", id, err)
	}
	return user
}

// SeedInterview inserts an interview owned by userID.
func SeedInterview(t *testing.T, db *gorm.DB, userID string) *model.Interview {
	t.Helper()

	interview := &model.Interview{
		ID:        uuid.New(),
		Level:     "senior",
		Amount:    2,
		Role:      "Backend Engineer",
		Type:      "mixed",
		Techstack: []string{"Go", "PostgreSQL"},
		Questions: []string{"Tell me about a challenge you faced.", "How do you design an API?"},
		UserID:    userID,
	}
	if err := db.Create(interview).Error; err != nil {
		t.Fatalf("seeding interview for %s: %v", userID, err)
	}
	return interview
}

func category(score float64, subject string) model.CategoryAssessment {
	return model.CategoryAssessment{
		Score:               score,
		Strengths:           []string{subject + " fundamentals"},
		Weaknesses:          []string{subject + " depth under pressure"},
		AreasForImprovement: []string{"practice " + subject},
		SpecificFeedback:    "The candidate showed reasonable " + subject + ".",
	}
}

// ValidEvaluation returns an evaluation that satisfies every schema rule.
func ValidEvaluation() *model.Evaluation {
	return &model.Evaluation{
		OverallScore:    7,
		OverallRating:   model.RatingGood,
		TechnicalSkills: category(78, "system design"),
		CommunicationSkills: model.CommunicationSkills{
			CategoryAssessment: category(81, "communication"),
			Clarity:            8,
			Articulation:       7,
			ListeningSkills:    8,
		},
		ProblemSolving: model.ProblemSolving{
			CategoryAssessment: category(74, "problem solving"),
			AnalyticalThinking: 7,
			Creativity:         6,
			ApproachToProblems: 7,
		},
		BehavioralCompetencies: model.BehavioralCompetencies{
			CategoryAssessment: category(80, "leadership"),
			Leadership:         8,
			Teamwork:           8,
			Adaptability:       7,
			TimeManagement:     6,
			ConflictResolution: 7,
		},
		KeyStrengths:                []string{"Led a migration project", "Clear structure", "Ownership"},
		KeyWeaknesses:               []string{"Few metrics", "Short answers", "Limited trade-offs"},
		CriticalAreasForImprovement: []string{"Quantify impact", "Discuss alternatives", "Expand on testing"},
		DetailedFeedback:            "The candidate described leading a migration project with a clear narrative and took ownership of the outcome.",
		PositiveHighlights:          []string{"Concrete example"},
		DevelopmentAreas:            []string{"Metrics"},
		Recommendations: model.Recommendations{
			NextSteps:               []string{"Practice STAR answers"},
			ResourcesSuggested:      []string{"Designing Data-Intensive Applications"},
			SkillsToFocus:           []string{"Trade-off analysis"},
			TrainingRecommendations: []string{"Mock system design sessions"},
		},
		ResponseQuality: model.ResponseQuality{Completeness: 7, Relevance: 8, Depth: 6, Examples: 7},
		QuestionResponses: []model.QuestionResponse{
			{
				QuestionID:   "q1",
				QuestionText: "Tell me about a challenge you faced.",
				Response:     "Led a database migration under a tight deadline.",
				Score:        78,
				Feedback:     "Good example, add measurable results.",
				Strengths:    []string{"Ownership"},
				Improvements: []string{"Quantify impact"},
			},
		},
	}
}

// ValidEvaluationJSON is ValidEvaluation encoded the way a model is asked to reply.
func ValidEvaluationJSON() string {
	data, err := json.Marshal(ValidEvaluation())
	if err != nil {
		panic(err)
	}
	return string(data)
}

// EvaluationJSONWith returns ValidEvaluationJSON with one top-level field replaced.
func EvaluationJSONWith(field string, value any) string {
	var doc map[string]any
	if err := json.Unmarshal([]byte(ValidEvaluationJSON()), &doc); err != nil {
		panic(err)
	}
	if value == nil {
		delete(doc, field)
	} else {
		doc[field] = value
	}
	data, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return string(data)
}
