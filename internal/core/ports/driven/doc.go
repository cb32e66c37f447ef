// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the vault to function:
//
//   - Loader / LoaderRegistry: Extracts text from supported file formats
//   - Splitter: Cuts document text into overlapping chunks
//   - VectorStore: Persists and searches (chunk, embedding) entries
//   - EmbeddingService: Generates vector embeddings
//   - LLMService: Generates grounded answers
//   - HistoryStore: Persists the conversation memory
//   - ConfigStore: Application configuration
//   - PromptStore: User-customisable prompt templates
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or loader package
package driven
