package provider

// ElementTypeScenario marks elements that count toward scenario and step summaries.
const ElementTypeScenario = "scenario"

// Run is a parsed cucumber JSON result document.
type Run struct {
	Source   string    `json:"-"`
	Features []Feature `json:"features"`
}

// Feature mirrors a feature record in cucumber JSON output.
type Feature struct {
	ID          string    `json:"id"`
	URI         string    `json:"uri"`
	Keyword     string    `json:"keyword"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Line        int       `json:"line"`
	Tags        []Tag     `json:"tags"`
	Elements    []Element `json:"elements"`
}

// Tag is a single tag attached to a feature or element.
type Tag struct {
	Name string `json:"name"`
	Line int    `json:"line"`
}

// Element is a scenario, background or other child of a feature.
type Element struct {
	ID          string `json:"id"`
	Keyword     string `json:"keyword"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Line        int    `json:"line"`
	Type        string `json:"type"`
	Tags        []Tag  `json:"tags"`
	Steps       []Step `json:"steps"`
}

// IsScenario reports whether the element contributes to scenario summaries.
func (e Element) IsScenario() bool {
	return e.Type == ElementTypeScenario
}

// Step is an executed step with its result and attachments.
type Step struct {
	Keyword    string      `json:"keyword"`
	Name       string      `json:"name"`
	Line       int         `json:"line"`
	Result     Result      `json:"result"`
	Embeddings []Embedding `json:"embeddings"`
}

// Result holds a step outcome. Duration is in nanoseconds and nil when absent.
type Result struct {
	Status       string `json:"status"`
	Duration     *int64 `json:"duration"`
	ErrorMessage string `json:"error_message"`
}

// Embedding is a base64 payload attached to a step.
type Embedding struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}
