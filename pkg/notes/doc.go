// Package notes implements the template resolution core: context
// construction, course-type classification, variant resolution, multi-level
// validation, and variable transformations. Everything in this package is a
// bounded in-memory computation over already-loaded configuration; rendering
// lives in pkg/render and orchestration in pkg/orchestrator.
package notes
