package domo

// BuzzMessage is posted to a Buzz channel webhook.
type BuzzMessage struct {
	Title *string `json:"title,omitempty" yaml:"title,omitempty"`
	Text  string  `json:"text"            yaml:"text"`
}

// NewDataSetJSONTemplate returns the placeholder row posted to a dataset webhook.
func NewDataSetJSONTemplate() map[string]interface{} {
	return map[string]interface{}{
		"a": "Column A Value",
		"b": 43,
		"c": "Column C Value",
	}
}
