// Package domain contains the core forum entities, questions and answers,
// together with the field rules they must satisfy. It has no knowledge of
// HTTP or of how entities are persisted.
package domain
