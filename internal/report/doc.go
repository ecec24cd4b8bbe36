// Package report composes the language-neutral report model for one
// analyzed plan and renders it. The composer is a pure function over the
// plan, graph, metrics, and schedule; renderers (metrics CSV, Markdown,
// HTML) are pure transforms of the model into bytes and are looked up
// through a small format registry.
package report
