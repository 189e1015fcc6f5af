package dto

type ExportOutput struct {
	Text  string
	Count int
	Dates []string
}

type WriteFileInput struct {
	Path       string
	CheckedIDs []string
}

type WriteFileOutput struct {
	Path  string
	Count int
}
