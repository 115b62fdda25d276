package projection

import (
	"github.com/leengari/datatable/internal/domain/errors"
	"github.com/leengari/datatable/internal/domain/schema"
)

// Validate checks every projection label against the table's declared
// labels, in the order the caller gave them.
func Validate(t *schema.Table, labels []string) error {
	for _, label := range labels {
		if !t.HasLabel(label) {
			return errors.NewColumnNotFound(label, t.Labels)
		}
	}
	return nil
}
