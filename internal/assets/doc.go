// Package assets provides the CSS styles and page templates used by the
// HTML preview of a converted post.
//
// # Loaders
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - built-in styles and templates (go:embed)
//	    ├── FilesystemLoader  - styles and templates from a directory on disk
//	    └── AssetResolver     - custom directory first, embedded fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── {name}.css      # preview styles (e.g., default.css)
//	└── templates/
//	    └── {name}.html     # page templates (e.g., preview.html)
//
// A page template is an html/template document receiving a PreviewPage
// (see internal/pipeline). It must load MathJax itself.
//
// # Security
//
// Asset names are validated to prevent path traversal. FilesystemLoader
// resolves symlinks and verifies paths stay within basePath.
package assets
