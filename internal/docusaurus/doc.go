// Package docusaurus turns the evaluated site record into the configuration
// module Docusaurus loads at build time.
//
// Document builds an ordered value tree using the Docusaurus field names.
// Render serializes that tree as a TypeScript module, JSON or YAML.
package docusaurus
