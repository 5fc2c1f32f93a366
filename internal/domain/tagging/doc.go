// Package tagging contains the Tagging bounded context.
// This context is responsible for deciding which building-model elements
// receive an annotation tag in which drawing views, and for describing the
// host-document surface those decisions are executed against: categories,
// placed elements, views, existing tags and tag placement requests.
package tagging
