package out

import (
	"context"

	scheduledomain "timetable/internal/modules/schedule/domain"
)

type Clipboard interface {
	Copy(ctx context.Context, text string) error
}

type DatasetProvider interface {
	Dataset() *scheduledomain.Dataset
}

// NoteStore reads and writes the markdown note an export is merged into.
// Read reports found=false for a note that does not exist yet.
type NoteStore interface {
	Read(ctx context.Context, path string) (content string, found bool, err error)
	Write(ctx context.Context, path, content string) error
}
