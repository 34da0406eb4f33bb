package domain

// NotebookExt is the file extension of notebooks served by the API.
const NotebookExt = ".ipynb"

// Fixed artifact names written by the tree renderer into the document store.
const (
	TreeDOTFile   = "android_malware.dot"
	TreeImageFile = "android_malware.png"
)
