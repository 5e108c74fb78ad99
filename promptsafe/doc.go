// Package promptsafe filters user-authored text before it enters an LLM
// prompt.
//
// Sanitize strips recognizable prompt-injection phrasings and chat-template
// delimiters, escapes quotes, collapses whitespace, and caps length. The
// filter is best effort by design: a hard reject of anything suspicious
// would also reject legitimate notes that happen to contain words like
// "ignore". Residual risk is handled on the response side by llmvalidate.
package promptsafe
