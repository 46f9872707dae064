package domain

// ViewKind identifies which runner state a View describes.
type ViewKind string

const (
	ViewText   ViewKind = "text"   // A text beat awaiting Advance
	ViewChoice ViewKind = "choice" // A choice awaiting SelectChoice
	ViewEnded  ViewKind = "ended"  // Terminal: nothing more to show
)

// View is the presentation data for the node a Runner currently points at.
// It carries no layout, color or animation concepts; the host decides how to draw it.
type View struct {
	Kind   ViewKind `json:"kind"`
	NodeID string   `json:"node_id,omitempty"`

	// Speaker is resolved from the tree, nil for narration or unknown speakers.
	Speaker *Speaker `json:"speaker,omitempty"`
	Text    string   `json:"text,omitempty"`

	Prompt  string   `json:"prompt,omitempty"`
	Choices []string `json:"choices,omitempty"`
}

// SpeakerName returns the display name of the speaker, or an empty string.
func (v View) SpeakerName() string {
	if v.Speaker == nil {
		return ""
	}
	return v.Speaker.DisplayName
}

// Ended reports whether the view is terminal.
func (v View) Ended() bool {
	return v.Kind == ViewEnded
}
