// Package model holds the records of the TheTVDB catalog and the rules that
// populate them from service XML.
//
// Each record type owns a static table from element name to field assignment.
// Deserialize walks the immediate children of a node once, matches names
// case-insensitively and ignores anything it does not know. A field only
// changes when its element carries usable text, so absent or malformed
// elements leave the sentinel defaults set by the New* constructors:
// -1 for numbers, the zero time for dates and "" for text.
package model
