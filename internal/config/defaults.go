package config

// Built-in naming patterns and body templates, used only when the
// corresponding new_<layout> / new_<layout>_template configuration keys
// are absent. Only the post and page layouts carry built-ins; any other
// layout must be configured explicitly.
const (
	// DefaultNewPostFile is the built-in post file-path pattern.
	DefaultNewPostFile = "_posts/{{year}}-{{month}}-{{day}}-{{name}}.{{format}}"

	// DefaultNewPageFile is the built-in page file-path pattern.
	DefaultNewPageFile = "{{name}}.{{format}}"
)

// DefaultNewPostTemplate is the built-in post body template.
const DefaultNewPostTemplate = `---
layout: post
title: '{{title}}'
date: '{{date}}'
published: true
---

`

// DefaultNewPageTemplate is the built-in page body template.
const DefaultNewPageTemplate = `---
layout: page
title: '{{title}}'
date: '{{date}}'
---

`
