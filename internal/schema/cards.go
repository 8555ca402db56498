package schema

// RegisterCards registers the cards section definition.
func RegisterCards(reg *Registry) {
	if reg == nil {
		return
	}

	cardSchema := []FieldSchema{
		{Key: "title", Type: FieldText, Label: "Title", Default: "New card"},
		{Key: "description", Type: FieldRichText, Label: "Description"},
		{Key: "icon", Type: FieldImage, Label: "Icon"},
		{Key: "link", Type: FieldLink, Label: "Link"},
	}

	reg.MustRegister(SectionDefinition{
		Type:        "cards",
		Name:        "Cards",
		Description: "Grid or list of feature cards",
		Category:    "content",
		Icon:        "grid",
		Variants:    []string{"grid", "list"},
		Schema: []FieldSchema{
			{Key: "heading", Type: FieldText, Label: "Heading"},
			{Key: "intro", Type: FieldRichText, Label: "Intro"},
			{
				Key:        "cards",
				Type:       FieldRepeater,
				Label:      "Cards",
				ItemSchema: cardSchema,
				VariantSchemas: map[string][]FieldSchema{
					// List layout renders a wide row per card and
					// supports an extra image on the side.
					"list": {
						{Key: "title", Type: FieldText, Label: "Title", Default: "New card"},
						{Key: "description", Type: FieldRichText, Label: "Description"},
						{Key: "media.src", Type: FieldImage, Label: "Image"},
						{Key: "media.alt", Type: FieldText, Label: "Image alt text"},
						{Key: "link", Type: FieldLink, Label: "Link"},
					},
				},
				MaxItems: 12,
			},
		},
		StyleOptions: StyleOptions{
			Global: []StyleOption{
				{Key: "columns", Label: "Columns", Values: []string{"2", "3", "4"}, Default: "3"},
				{Key: "card_style", Label: "Card style", Values: []string{"flat", "outlined", "elevated"}, Default: "flat"},
			},
		},
	})
}
