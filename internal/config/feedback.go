package config

import "sync"

type FeedbackConfig struct {
	// MaxTranscriptChars caps the formatted transcript sent to the model. Zero disables the cap.
	MaxTranscriptChars int
}

var (
	feedbackConfig *FeedbackConfig
	feedbackOnce   sync.Once
)

func LoadFeedbackConfig() *FeedbackConfig {
	feedbackOnce.Do(func() {
		feedbackConfig = &FeedbackConfig{
			MaxTranscriptChars: source().GetInt("feedback_max_transcript_chars"),
		}
	})
	return feedbackConfig
}
