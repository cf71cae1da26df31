package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Feedback is a stored Evaluation linked to one interview and one user.
// Rows are inserted once and never updated.
type Feedback struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	InterviewID uuid.UUID  `gorm:"type:uuid;not null;index:idx_feedback_interview_user" json:"interviewId"`
	Interview   *Interview `gorm:"foreignKey:InterviewID" json:"-"`
	UserID      string     `gorm:"type:text;not null;index:idx_feedback_interview_user" json:"userId"`
	User        *User      `gorm:"foreignKey:UserID" json:"-"`

	OverallScore  int    `gorm:"not null" json:"overallScore"`
	OverallRating Rating `gorm:"type:varchar(20);not null" json:"overallRating"`

	TechnicalSkills        datatypes.JSONType[CategoryAssessment]     `json:"technicalSkills"`
	CommunicationSkills    datatypes.JSONType[CommunicationSkills]    `json:"communicationSkills"`
	ProblemSolving         datatypes.JSONType[ProblemSolving]         `json:"problemSolving"`
	BehavioralCompetencies datatypes.JSONType[BehavioralCompetencies] `json:"behavioralCompetencies"`

	KeyStrengths                datatypes.JSONSlice[string] `gorm:"not null" json:"keyStrengths"`
	KeyWeaknesses               datatypes.JSONSlice[string] `gorm:"not null" json:"keyWeaknesses"`
	CriticalAreasForImprovement datatypes.JSONSlice[string] `gorm:"not null" json:"criticalAreasForImprovement"`
	DetailedFeedback            string                      `gorm:"type:text" json:"detailedFeedback"`
	PositiveHighlights          datatypes.JSONSlice[string] `json:"positiveHighlights"`
	DevelopmentAreas            datatypes.JSONSlice[string] `json:"developmentAreas"`

	Recommendations   datatypes.JSONType[Recommendations]   `json:"recommendations"`
	ResponseQuality   datatypes.JSONType[ResponseQuality]   `json:"responseQuality"`
	QuestionResponses datatypes.JSONSlice[QuestionResponse] `json:"questionResponses"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Feedback) TableName() string {
	return "feedback"
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func NewFeedback(interviewID uuid.UUID, userID string, e *Evaluation) *Feedback {
	return &Feedback{
		InterviewID:                 interviewID,
		UserID:                      userID,
		OverallScore:                e.OverallScore,
		OverallRating:               e.OverallRating,
		TechnicalSkills:             datatypes.NewJSONType(e.TechnicalSkills),
		CommunicationSkills:         datatypes.NewJSONType(e.CommunicationSkills),
		ProblemSolving:              datatypes.NewJSONType(e.ProblemSolving),
		BehavioralCompetencies:      datatypes.NewJSONType(e.BehavioralCompetencies),
		KeyStrengths:                e.KeyStrengths,
		KeyWeaknesses:               e.KeyWeaknesses,
		CriticalAreasForImprovement: e.CriticalAreasForImprovement,
		DetailedFeedback:            e.DetailedFeedback,
		PositiveHighlights:          e.PositiveHighlights,
		DevelopmentAreas:            e.DevelopmentAreas,
		Recommendations:             datatypes.NewJSONType(e.Recommendations),
		ResponseQuality:             datatypes.NewJSONType(e.ResponseQuality),
		QuestionResponses:           e.QuestionResponses,
	}
}

// Evaluation rebuilds the assessment stored in this row.
func (f *Feedback) Evaluation() *Evaluation {
	return &Evaluation{
		OverallScore:                f.OverallScore,
		OverallRating:               f.OverallRating,
		TechnicalSkills:             f.TechnicalSkills.Data(),
		CommunicationSkills:         f.CommunicationSkills.Data(),
		ProblemSolving:              f.ProblemSolving.Data(),
		BehavioralCompetencies:      f.BehavioralCompetencies.Data(),
		KeyStrengths:                f.KeyStrengths,
		KeyWeaknesses:               f.KeyWeaknesses,
		CriticalAreasForImprovement: f.CriticalAreasForImprovement,
		DetailedFeedback:            f.DetailedFeedback,
		PositiveHighlights:          f.PositiveHighlights,
		DevelopmentAreas:            f.DevelopmentAreas,
		Recommendations:             f.Recommendations.Data(),
		ResponseQuality:             f.ResponseQuality.Data(),
		QuestionResponses:           f.QuestionResponses,
	}
}
