package visualizer

import (
	"cotviz-api/pkg/prompt"
)

// defaultPromptTemplate instructs the model to narrate its reasoning in the
// stage vocabulary and to terminate with the answer marker the splitter
// looks for.
const defaultPromptTemplate = `Think step by step about this query and explain your reasoning process:

Query: {{.Query}}

Walk through your reasoning one sentence at a time. Be explicit about your
reasoning stages - analysis, planning, research, synthesis, evaluation and
problem solving - as they apply.

When you are done, state your conclusion on a line that begins with the
literal marker "Final answer:".
`

// PromptInputs feeds the visualizer prompt template.
type PromptInputs struct {
	Query string
}

// newPromptTemplate returns the template at path, or the embedded default
// when path is empty.
func newPromptTemplate(path string) (*prompt.Template, error) {
	if path == "" {
		return prompt.NewTemplateFromString("visualizer", defaultPromptTemplate, nil)
	}
	return prompt.NewTemplate(path, nil)
}
