package schema

// RegisterTestimonials registers the testimonials section definition.
//
// The section demonstrates data-driven item schemas: the shape of each
// repeater item depends on the value of the sibling "kind" field, so a logo
// wall and a quote list share one section type.
func RegisterTestimonials(reg *Registry) {
	if reg == nil {
		return
	}

	quoteSchema := []FieldSchema{
		{Key: "quote", Type: FieldRichText, Label: "Quote"},
		{Key: "name", Type: FieldText, Label: "Name"},
		{Key: "role", Type: FieldText, Label: "Role"},
		{Key: "avatar", Type: FieldImage, Label: "Avatar"},
	}

	reg.MustRegister(SectionDefinition{
		Type:        "testimonials",
		Name:        "Testimonials",
		Description: "Customer quotes, ratings or a logo wall",
		Category:    "social-proof",
		Icon:        "quote",
		Variants:    []string{"cards", "carousel", "compact"},
		Schema: []FieldSchema{
			{Key: "heading", Type: FieldText, Label: "Heading", Default: "What our customers say"},
			{
				Key:     "kind",
				Type:    FieldSelect,
				Label:   "Display as",
				Default: "quotes",
				Options: []SelectOption{
					{Value: "quotes", Label: "Quotes"},
					{Value: "ratings", Label: "Ratings"},
					{Value: "logos", Label: "Logo wall"},
				},
			},
			{
				Key:        "items",
				Type:       FieldRepeater,
				Label:      "Entries",
				ItemSchema: quoteSchema,
				UseCaseKey: "kind",
				UseCaseSchemas: map[string][]FieldSchema{
					"logos": {
						{Key: "name", Type: FieldText, Label: "Company"},
						{Key: "logo", Type: FieldImage, Label: "Logo"},
						{Key: "url", Type: FieldURL, Label: "Website"},
					},
					"ratings": {
						{Key: "name", Type: FieldText, Label: "Name"},
						{
							Key:     "stars",
							Type:    FieldSelect,
							Label:   "Stars",
							Default: "5",
							Options: []SelectOption{
								{Value: "3"}, {Value: "4"}, {Value: "5"},
							},
						},
						{Key: "quote", Type: FieldRichText, Label: "Review"},
					},
				},
				VariantSchemas: map[string][]FieldSchema{
					// Compact layout drops the avatar and role.
					"compact": {
						{Key: "quote", Type: FieldRichText, Label: "Quote"},
						{Key: "name", Type: FieldText, Label: "Name"},
					},
				},
				MaxItems: 24,
			},
		},
		StyleOptions: StyleOptions{
			Global: []StyleOption{
				{Key: "accent", Label: "Accent", Values: []string{"none", "brand", "muted"}, Default: "none"},
			},
			PerVariant: map[string][]StyleOption{
				"carousel": {
					{Key: "autoplay", Label: "Autoplay", Values: []string{"off", "slow", "fast"}, Default: "off"},
				},
			},
		},
	})
}
