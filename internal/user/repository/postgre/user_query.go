package postgre

import (
	"fmt"
	"strings"

	repo "shareit/internal/user/repository"
)

const userColumns = `id, name, email`

func (r *implRepository) buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != 0 {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.Email != "" {
		conditions = append(conditions, fmt.Sprintf("LOWER(email) = LOWER($%d)", idx))
		args = append(args, opt.Email)
		idx++
	}
	if opt.ExcludeID != 0 {
		conditions = append(conditions, fmt.Sprintf("id <> $%d", idx))
		args = append(args, opt.ExcludeID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func (r *implRepository) buildListQuery(opt repo.ListUsersOptions) (string, []any) {
	var args []any
	where := ""
	if len(opt.IDs) > 0 {
		where = "WHERE id = ANY($1)"
		args = append(args, opt.IDs)
	}
	return strings.TrimSpace(where + " ORDER BY id ASC"), args
}
