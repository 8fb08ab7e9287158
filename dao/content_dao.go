// api/dao/content_dao.go
package dao

import (
	"context"

	"github.com/adaptivsec/vigil/api/db"
	"github.com/adaptivsec/vigil/api/model"
)

// ContentDAO reads microlearning content from the key-value store. The
// store is read-only from this service's point of view.
type ContentDAO struct{}

func NewContentDAO() *ContentDAO {
	return &ContentDAO{}
}

// GetMicrolearningContent returns (nil, nil) when the id is unknown.
func (d *ContentDAO) GetMicrolearningContent(ctx context.Context, microlearningID string) (model.MicrolearningContent, error) {
	return db.GetMicrolearningContent(ctx, microlearningID)
}
