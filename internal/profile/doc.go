// Package profile holds the BusinessProfile: the single input record that a
// generated site is rendered from.
//
// Profiles are built from a flat field-name to string mapping, the shape
// produced by the collector package, an HTTP request body or a YAML file.
// Multi-line fields are split here: services one per line, testimonials as
// "Author | Comment" and FAQ entries as "Question ? Answer". Lines missing
// their delimiter are dropped and counted in ParseStats.
package profile
