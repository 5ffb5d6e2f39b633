package model

// All lists every table model in dependency order for migrations.
func All() []any {
	return []any{
		&UserModel{},
		&AuthenticationModel{},
		&BlogModel{},
		&CommentModel{},
	}
}
