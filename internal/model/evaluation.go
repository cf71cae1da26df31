package model

// Role of a transcript speaker.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

// Utterance is one line of an interview transcript.
type Utterance struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Rating string

const (
	RatingExcellent Rating = "excellent"
	RatingGood      Rating = "good"
	RatingAverage   Rating = "average"
	RatingPoor      Rating = "poor"
)

// CategoryAssessment is shared by every feedback category. Score is on a 0-100 scale.
type CategoryAssessment struct {
	Score               float64  `json:"score"`
	Strengths           []string `json:"strengths"`
	Weaknesses          []string `json:"weaknesses"`
	AreasForImprovement []string `json:"areasForImprovement"`
	SpecificFeedback    string   `json:"specificFeedback"`
}

// Sub-metrics below are on a 1-10 scale.

type CommunicationSkills struct {
	CategoryAssessment
	Clarity         float64 `json:"clarity"`
	Articulation    float64 `json:"articulation"`
	ListeningSkills float64 `json:"listeningSkills"`
}

type ProblemSolving struct {
	CategoryAssessment
	AnalyticalThinking float64 `json:"analyticalThinking"`
	Creativity         float64 `json:"creativity"`
	ApproachToProblems float64 `json:"approachToProblems"`
}

type BehavioralCompetencies struct {
	CategoryAssessment
	Leadership         float64 `json:"leadership"`
	Teamwork           float64 `json:"teamwork"`
	Adaptability       float64 `json:"adaptability"`
	TimeManagement     float64 `json:"timeManagement"`
	ConflictResolution float64 `json:"conflictResolution"`
}

type Recommendations struct {
	NextSteps               []string `json:"nextSteps"`
	ResourcesSuggested      []string `json:"resourcesSuggested"`
	SkillsToFocus           []string `json:"skillsToFocus"`
	TrainingRecommendations []string `json:"trainingRecommendations"`
}

type ResponseQuality struct {
	Completeness float64 `json:"completeness"`
	Relevance    float64 `json:"relevance"`
	Depth        float64 `json:"depth"`
	Examples     float64 `json:"examples"`
}

type QuestionResponse struct {
	QuestionID   string   `json:"questionId"`
	QuestionText string   `json:"questionText"`
	Response     string   `json:"response"`
	Score        float64  `json:"score"`
	Feedback     string   `json:"feedback"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// Evaluation is the structured assessment produced from one transcript.
type Evaluation struct {
	OverallScore  int    `json:"overallScore"`
	OverallRating Rating `json:"overallRating"`

	TechnicalSkills        CategoryAssessment     `json:"technicalSkills"`
	CommunicationSkills    CommunicationSkills    `json:"communicationSkills"`
	ProblemSolving         ProblemSolving         `json:"problemSolving"`
	BehavioralCompetencies BehavioralCompetencies `json:"behavioralCompetencies"`

	KeyStrengths                []string `json:"keyStrengths"`
	KeyWeaknesses               []string `json:"keyWeaknesses"`
	CriticalAreasForImprovement []string `json:"criticalAreasForImprovement"`
	DetailedFeedback            string   `json:"detailedFeedback"`
	PositiveHighlights          []string `json:"positiveHighlights"`
	DevelopmentAreas            []string `json:"developmentAreas"`

	Recommendations   Recommendations    `json:"recommendations"`
	ResponseQuality   ResponseQuality    `json:"responseQuality"`
	QuestionResponses []QuestionResponse `json:"questionResponses"`
}
