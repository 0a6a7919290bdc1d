package item

// ValidateNew checks that a create payload carries every schema field and that
// each one is well formed. Identity is assigned by the store, never by the
// caller.
func ValidateNew(p Patch) (Item, error) {
	verr := newValidationError()

	if p.Name == nil {
		verr.Fields["name"] = "required"
	}
	if p.Category == nil {
		verr.Fields["category"] = "required"
	}
	if p.Price == nil {
		verr.Fields["price"] = "required"
	}
	if p.Quantity == nil {
		verr.Fields["quantity"] = "required"
	}
	if p.Ingredients == nil {
		verr.Fields["ingredients"] = "required"
	}
	if p.Image == nil {
		verr.Fields["image"] = "required"
	}
	if p.Rating == nil {
		verr.Fields["rating"] = "required"
	}
	if p.Reviews == nil {
		verr.Fields["reviews"] = "required"
	}
	if len(verr.Fields) > 0 {
		return Item{}, verr
	}

	it := p.apply(Item{})
	if err := Validate(it); err != nil {
		return Item{}, err
	}
	return it, nil
}

// Validate checks a complete item against the schema. Updates run it on the
// merged result so a bad patch can never leave a half-valid item stored.
func Validate(it Item) error {
	verr := newValidationError()

	if it.Name == "" {
		verr.Fields["name"] = "must not be empty"
	}
	if it.Category == "" {
		verr.Fields["category"] = "must not be empty"
	}
	if it.Price < 0 {
		verr.Fields["price"] = "must not be negative"
	}
	if it.Quantity < 1 {
		verr.Fields["quantity"] = "must be at least 1"
	}
	if it.Ingredients == nil {
		verr.Fields["ingredients"] = "required"
	}
	if it.Image == "" {
		verr.Fields["image"] = "must not be empty"
	}
	if it.Rating < 1 || it.Rating > 5 {
		verr.Fields["rating"] = "must be between 1 and 5"
	}
	if it.Reviews < 0 {
		verr.Fields["reviews"] = "must not be negative"
	}

	if len(verr.Fields) > 0 {
		return verr
	}
	return nil
}
