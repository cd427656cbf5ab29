package mapper

import (
	"github.com/kral14/mobilsayt/internal/dto"
	"github.com/kral14/mobilsayt/internal/model"
)

// CustomerRow is the scan target for the customers query joined against
// customer_folders.
type CustomerRow struct {
	model.Customer

	FolderIDJoin   *int    `gorm:"column:folder_id_join"`
	FolderName     *string `gorm:"column:folder_name"`
	FolderParentID *int    `gorm:"column:folder_parent_id"`
}

func Customers(rows []CustomerRow) []dto.CustomerWithFolder {
	out := make([]dto.CustomerWithFolder, 0, len(rows))
	for _, row := range rows {
		c := row.Customer
		c.CreatedAt = UTC(c.CreatedAt)
		c.UpdatedAt = UTC(c.UpdatedAt)

		var folder *model.CustomerFolder
		if row.FolderIDJoin != nil {
			name := ""
			if row.FolderName != nil {
				name = *row.FolderName
			}
			folder = &model.CustomerFolder{
				ID:       *row.FolderIDJoin,
				Name:     name,
				ParentID: row.FolderParentID,
			}
		}
		out = append(out, dto.CustomerWithFolder{Customer: c, Folder: folder})
	}
	return out
}
