/*
Package domain contains the core domain models of the nbserve notebook API.

It defines the normalized shape of a notebook as the API exposes it, the
artifacts produced by the tree renderer, and the sentinel errors that the
transport adapters translate into status codes. This package is kept pure and
free of I/O, following Hexagonal Architecture principles.

# Key Entities

  - Cell: One unit of a notebook, either code (with outputs) or text.
  - Output: A recorded result attached to a code cell (text, image, JSON or HTML).
  - RenderedTree: The fixed pair of files written by the tree renderer.
  - Invocation: A request to run an allow-listed external command.
*/
package domain
