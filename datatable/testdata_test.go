package datatable

type user struct {
	Name    string
	Age     int
	Address string
}

var (
	john = user{Name: "John Brown", Age: 32, Address: "New York No. 1 Lake Park"}
	jim  = user{Name: "Jim Green", Age: 45, Address: "London No. 1 Lake Park"}
	joe  = user{Name: "Joe Black", Age: 28, Address: "Sidney No. 1 Lake Park"}
)

func users() []user { return []user{john, jim, joe} }

func userColumns() []Column[user] {
	return []Column[user]{
		{Key: "name", Title: "Name", Field: func(u user) any { return u.Name }, Sortable: true},
		{Key: "age", Title: "Age", Field: func(u user) any { return u.Age }, Sortable: true},
		{Key: "address", Title: "Address", Field: func(u user) any { return u.Address }},
	}
}

func names(rows []user) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Name)
	}
	return out
}
