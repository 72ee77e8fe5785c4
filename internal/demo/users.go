package demo

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/jask/fieldkit/datatable"
)

// User is one row of the demo table.
type User struct {
	Name    string `toml:"name"`
	Age     int    `toml:"age"`
	Address string `toml:"address"`
}

type usersFile struct {
	User []User `toml:"user"`
}

//go:embed users.toml
var defaultUsers string

// LoadUsers decodes the rows at path, or the built-in rows when path is empty.
func LoadUsers(path string) ([]User, error) {
	var f usersFile
	if path == "" {
		if _, err := toml.Decode(defaultUsers, &f); err != nil {
			return nil, fmt.Errorf("parse built-in users: %w", err)
		}
		return f.User, nil
	}
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return f.User, nil
}

// userColumns binds the table columns to User fields by name.
func userColumns() ([]datatable.Column[User], error) {
	defs := []struct {
		key, title, field string
		sortable          bool
	}{
		{"name", "Name", "Name", true},
		{"age", "Age", "Age", true},
		{"address", "Address", "Address", false},
	}
	cols := make([]datatable.Column[User], 0, len(defs))
	for _, s := range defs {
		c, err := datatable.FieldColumn[User](s.key, s.title, s.field, s.sortable)
		if err != nil {
			return nil, err
		}
		cols = append(cols, c)
	}
	return cols, nil
}
