package port

import "context"

// Generator abstracts the LLM used for summarization and Q&A over extracted
// document text. Callers bound the text they submit; the generator does not
// truncate.
type Generator interface {
	Summarize(ctx context.Context, text string) (string, error)
	Answer(ctx context.Context, text, question string) (string, error)
}
