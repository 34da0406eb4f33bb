/*
Package notebook decodes Jupyter notebook files and extracts their cells into
the normalized domain shape served by the API.

Decoding accepts nbformat 4 and upgrades nbformat 3 documents in memory, so the
extractor only ever sees the canonical v4 layout. Extraction is a pure walk
over the decoded cells:

  - markdown cells become text cells carrying their source;
  - code cells become code cells carrying their source and classified outputs;
  - every other cell type is skipped.

Outputs are classified by [ClassifyOutput] using a fixed priority: a top-level
"text" payload first, then the "image/png", "application/json" and "text/html"
entries of the "data" bundle. At most one payload is kept per output and
outputs with none of these keys are dropped.
*/
package notebook
