// Package prompt collects model values interactively, one prompt per field in
// declaration order. Answers are parsed per field kind and checked with the
// field's descriptor before they are accepted.
package prompt
