package domain

// RenderedTree names the artifacts left in the document store by a tree render.
// Both paths are fixed; each render overwrites the previous pair.
type RenderedTree struct {
	DOTFile   string `json:"dot"`
	ImageFile string `json:"imagen"`
}
