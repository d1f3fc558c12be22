// Package naming derives the identifiers used by generated components from a
// single free-text name: the raw (normalized) name, the file stem, the
// hyphenated tag name, the capitalized type name, and the relative import
// prefix that reaches the shared base module from the component directory.
package naming
