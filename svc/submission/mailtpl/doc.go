// Package mailtpl renders the emails sent for every submission.
//
// HTML bodies are templ components built with templ.ComponentFunc; every
// submitted value goes through templ.EscapeString. A plain text body with
// the same content is rendered next to each HTML body. Subjects are
// collapsed to one line so user input cannot inject headers.
package mailtpl
