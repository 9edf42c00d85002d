package mutations

var registry = map[string]MutationHandler{
	"set_income":        &SetIncomeHandler{},
	"add_child":         &AddChildHandler{},
	"remove_child":      &RemoveChildHandler{},
	"move_municipality": &MoveMunicipalityHandler{},
	"set_housing":       &SetHousingHandler{},
}

func Get(name string) (MutationHandler, bool) {
	h, ok := registry[name]
	return h, ok
}
