// Package docmap provides expression-based access into hierarchical
// documents built from ordered key/value maps and lists.
//
// Values are addressed with dot notation ("a.b.2.c") instead of manual
// container navigation. Reads resolve an expression against a Document
// and return the addressed value; writes materialize the container
// chain described by the expression and store a value at the terminal
// position, applying the configured array index mode. A thin Map
// facade copies a value from one document to another in a single call.
//
// The engine is format agnostic: FromJSON/FromYAML build Documents
// from wire bytes, but any code that assembles Document and List
// values directly gets the same behavior.
package docmap
