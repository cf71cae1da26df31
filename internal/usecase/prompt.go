package usecase

import (
	"fmt"
	"strings"

	"github.com/prepmimo/backend/internal/model"
)

const feedbackSystemInstruction = "You are a professional interview assessor. Provide detailed feedback analysis in JSON format based on the interview transcript."

const evaluationShape = `{
  "overallScore": integer (1-10),
  "overallRating": "excellent" | "good" | "average" | "poor",
  "technicalSkills": {
    "score": number (0-100),
    "strengths": [string], "weaknesses": [string], "areasForImprovement": [string],
    "specificFeedback": string
  },
  "communicationSkills": {
    "score": number (0-100),
    "clarity": number (1-10), "articulation": number (1-10), "listeningSkills": number (1-10),
    "strengths": [string], "weaknesses": [string], "areasForImprovement": [string],
    "specificFeedback": string
  },
  "problemSolving": {
    "score": number (0-100),
    "analyticalThinking": number (1-10), "creativity": number (1-10), "approachToProblems": number (1-10),
    "strengths": [string], "weaknesses": [string], "areasForImprovement": [string],
    "specificFeedback": string
  },
  "behavioralCompetencies": {
    "score": number (0-100),
    "leadership": number (1-10), "teamwork": number (1-10), "adaptability": number (1-10),
    "timeManagement": number (1-10), "conflictResolution": number (1-10),
    "strengths": [string], "weaknesses": [string], "areasForImprovement": [string],
    "specificFeedback": string
  },
  "keyStrengths": [string] (at least 3),
  "keyWeaknesses": [string] (at least 3),
  "criticalAreasForImprovement": [string] (at least 3),
  "detailedFeedback": string (at least 200 words),
  "positiveHighlights": [string],
  "developmentAreas": [string],
  "recommendations": {
    "nextSteps": [string], "resourcesSuggested": [string],
    "skillsToFocus": [string], "trainingRecommendations": [string]
  },
  "responseQuality": {
    "completeness": number (1-10), "relevance": number (1-10),
    "depth": number (1-10), "examples": number (1-10)
  },
  "questionResponses": [
    {
      "questionId": string, "questionText": string, "response": string,
      "score": number (0-100), "feedback": string,
      "strengths": [string], "improvements": [string]
    }
  ]
}`

// formatTranscript renders one "- role: content" line per utterance, in order.
func formatTranscript(transcript []model.Utterance) string {
	var b strings.Builder
	for _, u := range transcript {
		fmt.Fprintf(&b, "- %s: %s\n", u.Role, u.Content)
	}
	return b.String()
}

func buildFeedbackPrompt(formattedTranscript string) string {
	return fmt.Sprintf(`Analyze the following mock interview transcript and assess the candidate.

Interview transcript:
%s
Reply with a single JSON object of exactly this shape:
%s

Rules:
- Reply with the JSON object only. No markdown, no code fences, no text before or after it.
- Keep every score inside its stated range.
- Be rigorous and honest, and cite concrete moments from the transcript.
- Give one questionResponses entry per question the interviewer asked, in order.`, formattedTranscript, evaluationShape)
}

func buildQuestionsPrompt(req *QuestionParams) string {
	return fmt.Sprintf(`Prepare questions for a job interview.
The job role is %s.
The job experience level is %s.
The tech stack used in the job is: %s.
The focus between behavioural and technical questions should lean towards: %s.
The amount of questions required is: %d.
Return only the questions, without any additional text.
The questions will be read aloud by a voice assistant, so do not use "/", "*" or other special characters.
Return the questions as a JSON array of strings, like this:
["Question 1", "Question 2", "Question 3"]`,
		req.Role, req.Level, strings.Join(req.Techstack, ", "), req.Type, req.Amount)
}
