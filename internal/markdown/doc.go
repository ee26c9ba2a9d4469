// Package markdown turns sitemark markdown into HTML.
//
// ToHTML and ToHTMLNode assemble the output from the blocks, inline and
// htmlnode packages and never log. Service wraps a MarkdownParser (the native
// dialect, goldmark or gomarkdown) with source normalisation, front matter,
// logging and go-errors classification.
package markdown
