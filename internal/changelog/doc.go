// Package changelog splits a markdown changelog into one file per release.
//
// This package implements:
//   - Segmenting a document into chunks at "## " heading lines
//   - Parsing "version (date)" headings into entries with a slug and creation time
//   - Rendering entries with front-matter for a documentation site
//   - Writing the rendered entries into an output directory
//
// A heading such as "## 6.6.1 (Dec 20, 2024)" becomes 6-6-1-dec-20-2024.md:
//
//	---
//	title: "6.6.1"
//	createdAt: "Fri Dec 20 2024 00:00:00 GMT+0000 (UTC)"
//	slug: "6-6-1-dec-20-2024"
//	hidden: false
//	---
//
//	- Fixed a bug
package changelog
