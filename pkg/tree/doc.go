// Package tree renders the decision-tree visualization served by the API.
//
// A render is two steps. [ExportDOT] writes a Graphviz description of a
// [Classifier] with fixed feature and class labels, and a [Renderer] turns
// that description into a PNG. [Generator] ties both to the document store,
// always writing the same two artifact names so each render replaces the last.
//
// No trained model is wired into the service yet: with a nil classifier the
// export is a degenerate graph (styles only, no nodes) and the PNG is an
// empty canvas.
//
// Two renderers are provided:
//   - [ExecRenderer] runs the allow-listed "dot" command through a
//     [ports.CommandRunner];
//   - [GraphvizRenderer] renders in-process with [github.com/goccy/go-graphviz].
package tree
