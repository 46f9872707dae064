package dto

// DialogueDocument is the on-disk form of a dialogue, written in YAML or JSON.
// The first node is the start node, as with dialogues built by plugin scripts.
type DialogueDocument struct {
	Title    string            `yaml:"title" json:"title"`
	Speakers []SpeakerDocument `yaml:"speakers" json:"speakers"`
	Nodes    []NodeDocument    `yaml:"nodes" json:"nodes"`
}

// SpeakerDocument declares one participant.
type SpeakerDocument struct {
	ID   string `yaml:"id" json:"id"`
	Name string `yaml:"name" json:"name"`
}

// NodeDocument is one node. Type is "text", "choice" or "end"; an empty type is inferred.
type NodeDocument struct {
	ID      string           `yaml:"id" json:"id"`
	Type    string           `yaml:"type,omitempty" json:"type,omitempty"`
	Speaker string           `yaml:"speaker,omitempty" json:"speaker,omitempty"`
	Text    string           `yaml:"text,omitempty" json:"text,omitempty"`
	Next    string           `yaml:"next,omitempty" json:"next,omitempty"`
	Prompt  string           `yaml:"prompt,omitempty" json:"prompt,omitempty"`
	Choices []OptionDocument `yaml:"choices,omitempty" json:"choices,omitempty"`
}

// OptionDocument is one answer of a choice node.
type OptionDocument struct {
	Text      string         `yaml:"text" json:"text"`
	Next      string         `yaml:"next" json:"next"`
	Affection int            `yaml:"affection,omitempty" json:"affection,omitempty"`
	Vars      map[string]int `yaml:"vars,omitempty" json:"vars,omitempty"`
}
